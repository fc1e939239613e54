package sink

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/layout"
	"github.com/matzehuels/rendertree/pkg/scene"
)

type jsonOutput struct {
	Width   float64    `json:"width"`
	Height  float64    `json:"height"`
	SideLen float64    `json:"side_len"`
	Nodes   []jsonNode `json:"nodes"`
	Lines   []jsonLine `json:"lines"`
}

type jsonNode struct {
	ID     int     `json:"id"`
	Parent int     `json:"parent"` // -1 for the root
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Leaf   bool    `json:"leaf,omitempty"`
	Fill   string  `json:"fill"`
}

type jsonLine struct {
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Stroke string  `json:"stroke"`
	Width  float64 `json:"width"`
}

// RenderJSON exports the layout as a pretty-printed JSON document:
// rectangles in pre-order with their parent's index, connector lines and the
// canvas size. [ParseJSON] reads it back.
//
// Node ids in the document are positions in the nodes array, not scene ids.
func RenderJSON(l layout.Layout) ([]byte, error) {
	rects := l.Rects()
	index := make(map[scene.NodeID]int, len(rects))

	out := jsonOutput{
		Width:   l.Width,
		Height:  l.Height,
		SideLen: l.SideLen,
		Nodes:   make([]jsonNode, 0, len(rects)),
		Lines:   []jsonLine{},
	}

	for i, r := range rects {
		index[r.ID] = i
		parent := -1
		if r.Parent != scene.None {
			parent = index[r.Parent]
		}
		out.Nodes = append(out.Nodes, jsonNode{
			ID:     i,
			Parent: parent,
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
			Leaf:   r.Leaf,
			Fill:   hexColor(r.Style.Fill),
		})
	}

	for _, seg := range l.Segments() {
		out.Lines = append(out.Lines, jsonLine{
			X1:     seg.Start.X,
			Y1:     seg.Start.Y,
			X2:     seg.End.X,
			Y2:     seg.End.Y,
			Stroke: hexColor(seg.Style.Stroke),
			Width:  seg.Style.StrokeWidth,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}

// ParseJSON rebuilds a [layout.Layout] from a document written by
// [RenderJSON]. The result renders identically to the original without
// needing the tree.
//
// Every node must reference a parent that appears earlier in the array, and
// exactly the first node may be a root.
func ParseJSON(data []byte) (layout.Layout, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var in jsonOutput
	if err := dec.Decode(&in); err != nil {
		return layout.Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse layout json")
	}
	if in.Width <= 0 || in.Height <= 0 {
		return layout.Layout{}, errors.New(errors.ErrCodeInvalidInput, "layout canvas must be positive, got %vx%v", in.Width, in.Height)
	}

	s := scene.New()
	ids := make([]scene.NodeID, len(in.Nodes))
	root := scene.None

	for i, n := range in.Nodes {
		fill, err := parseColor(n.Fill)
		if err != nil {
			return layout.Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "node %d fill", i)
		}
		id := s.Rect(n.Width, n.Height, scene.Filled(fill))
		s.SetPosition(id, scene.Point{X: n.X, Y: n.Y})
		ids[i] = id

		switch {
		case n.Parent == -1 && i == 0:
			root = id
		case n.Parent == -1:
			return layout.Layout{}, errors.New(errors.ErrCodeInvalidInput, "node %d: only the first node may be a root", i)
		case n.Parent < 0 || n.Parent >= i:
			return layout.Layout{}, errors.New(errors.ErrCodeInvalidInput, "node %d: parent %d must precede it", i, n.Parent)
		default:
			s.Append(ids[n.Parent], id)
		}
	}

	lines := s.Group()
	for i, ln := range in.Lines {
		stroke, err := parseColor(ln.Stroke)
		if err != nil {
			return layout.Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d stroke", i)
		}
		start := scene.Point{X: ln.X1, Y: ln.Y1}
		end := scene.Point{X: ln.X2, Y: ln.Y2}
		s.Append(lines, s.Line(start, end, scene.Stroked(ln.Width, stroke)))
	}

	return layout.Layout{
		Scene:   s,
		Nodes:   root,
		Lines:   lines,
		Width:   in.Width,
		Height:  in.Height,
		SideLen: in.SideLen,
	}, nil
}
