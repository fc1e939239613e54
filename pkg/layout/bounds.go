package layout

import (
	"math"

	"github.com/matzehuels/rendertree/pkg/scene"
)

// Bounds is the axis-aligned box enclosing the positions of a node and all
// its descendants. Top and Left are minima, Bottom and Right maxima; with
// canvas coordinates, Top is the smallest y.
type Bounds struct {
	Top, Bottom float64
	Right, Left float64
}

// Width returns the horizontal span of the box.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns the vertical span of the box.
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// CenterX returns the horizontal center of the box.
func (b Bounds) CenterX() float64 { return (b.Right + b.Left) / 2 }

// CenterY returns the vertical center of the box.
func (b Bounds) CenterY() float64 { return (b.Bottom + b.Top) / 2 }

// Shift returns the box moved by (dx, dy).
func (b Bounds) Shift(dx, dy float64) Bounds {
	return Bounds{Top: b.Top + dy, Bottom: b.Bottom + dy, Right: b.Right + dx, Left: b.Left + dx}
}

// BoundsOf computes the bounding box of id and every descendant. Each node
// counts as a single point at its position; shape extents are not included.
// A node without descendants yields a degenerate box at its own position.
//
// Bounds are never cached: every call walks the subtree, so the result always
// reflects the current positions. BoundsOf([scene.None]) is the zero box.
func BoundsOf(s *scene.Scene, id scene.NodeID) Bounds {
	if id == scene.None {
		return Bounds{}
	}

	b := Bounds{
		Top:    math.Inf(1),
		Bottom: math.Inf(-1),
		Right:  math.Inf(-1),
		Left:   math.Inf(1),
	}

	work := []scene.NodeID{id}
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]

		p := s.Position(n)
		b.Top = min(b.Top, p.Y)
		b.Bottom = max(b.Bottom, p.Y)
		b.Left = min(b.Left, p.X)
		b.Right = max(b.Right, p.X)

		work = append(work, s.Children(n)...)
	}
	return b
}

// Center returns the center of id's bounding box.
func Center(s *scene.Scene, id scene.NodeID) scene.Point {
	b := BoundsOf(s, id)
	return scene.Point{X: b.CenterX(), Y: b.CenterY()}
}
