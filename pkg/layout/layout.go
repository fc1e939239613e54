package layout

import (
	"github.com/matzehuels/rendertree/pkg/scene"
	"github.com/matzehuels/rendertree/pkg/tree"
)

// Layout is a composed, canvas-centered scene ready for rendering. Nodes is
// the root of the rectangles subtree and Lines the group holding the
// connectors; both live in Scene.
type Layout struct {
	Scene   *scene.Scene
	Nodes   scene.NodeID
	Lines   scene.NodeID
	Width   float64
	Height  float64
	SideLen float64
}

// Compose lays out t in a fresh scene, centers it on a width×height canvas
// and generates its connectors with an offset of half the side length.
//
// Each call owns its scene, so concurrent calls never share state.
func Compose(t *tree.Node, width, height float64, opts ...Option) Layout {
	o := resolve(opts)
	s := scene.New()

	root := scene.None
	if t != nil {
		root = o.build(s, t)
	}
	CenterOnCanvas(s, root, width, height, o.SideLen)
	lines := Connectors(s, root, o.SideLen/2, o.LineStyle)

	return Layout{
		Scene:   s,
		Nodes:   root,
		Lines:   lines,
		Width:   width,
		Height:  height,
		SideLen: o.SideLen,
	}
}

// NodeCount returns the number of rectangles.
func (l Layout) NodeCount() int {
	if l.Scene == nil {
		return 0
	}
	return l.Scene.Count(l.Nodes)
}

// LineCount returns the number of connector lines.
func (l Layout) LineCount() int {
	if l.Scene == nil || l.Lines == scene.None {
		return 0
	}
	return l.Scene.ChildCount(l.Lines)
}

// PlacedRect is a rectangle with its absolute geometry resolved.
type PlacedRect struct {
	ID     scene.NodeID
	Parent scene.NodeID // None for the root
	X, Y   float64
	Width  float64
	Height float64
	Leaf   bool
	Style  scene.Style
}

// Segment is a connector line with absolute endpoints.
type Segment struct {
	Start, End scene.Point
	Style      scene.Style
}

// Rects returns every rectangle under Nodes in pre-order.
func (l Layout) Rects() []PlacedRect {
	if l.Scene == nil {
		return nil
	}
	var out []PlacedRect
	l.Scene.Walk(l.Nodes, func(id scene.NodeID) bool {
		r, ok := l.Scene.Shape(id).(scene.Rect)
		if !ok {
			return true
		}
		parent := l.Scene.Parent(id)
		if id == l.Nodes {
			parent = scene.None
		}
		p := l.Scene.Position(id)
		out = append(out, PlacedRect{
			ID:     id,
			Parent: parent,
			X:      p.X,
			Y:      p.Y,
			Width:  r.Width,
			Height: r.Height,
			Leaf:   l.Scene.ChildCount(id) == 0,
			Style:  l.Scene.Style(id),
		})
		return true
	})
	return out
}

// Segments returns the connector lines in creation order.
func (l Layout) Segments() []Segment {
	if l.Scene == nil || l.Lines == scene.None {
		return nil
	}
	ids := l.Scene.Children(l.Lines)
	out := make([]Segment, 0, len(ids))
	for _, id := range ids {
		start, end, ok := l.Scene.Endpoints(id)
		if !ok {
			continue
		}
		out = append(out, Segment{Start: start, End: end, Style: l.Scene.Style(id)})
	}
	return out
}

// Extent returns the box covering the drawn rectangles, including their
// sides, as opposed to [BoundsOf] which only covers anchors.
func (l Layout) Extent() Bounds {
	if l.Scene == nil || l.Nodes == scene.None {
		return Bounds{}
	}
	b := BoundsOf(l.Scene, l.Nodes)
	b.Right += l.SideLen
	b.Bottom += l.SideLen
	return b
}
