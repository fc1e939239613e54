package scene

import "image/color"

// Shape is the geometry carried by a scene node. The set of shapes is closed:
// callers switch over [Rect] and [Line].
type Shape interface {
	isShape()
}

// Rect is an axis-aligned rectangle whose top-left corner sits at the node's
// position.
type Rect struct {
	Width, Height float64
}

// Line is a straight segment starting at the node's position and ending
// (DX, DY) away from it, so translating the node moves the whole segment.
type Line struct {
	DX, DY float64
}

func (Rect) isShape() {}
func (Line) isShape() {}

// Style controls how a shape is painted. Rectangles use Fill; lines use
// Stroke and StrokeWidth.
type Style struct {
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
}

// Filled returns a style that fills shapes with c.
func Filled(c color.RGBA) Style { return Style{Fill: c} }

// Stroked returns a style that strokes shapes with c at the given width.
func Stroked(width float64, c color.RGBA) Style {
	return Style{Stroke: c, StrokeWidth: width}
}

var (
	// Black is the default node fill and connector stroke.
	Black = color.RGBA{A: 0xff}
	// LeafRed is the fill used for childless tree nodes.
	LeafRed = color.RGBA{R: 128, A: 0xff}
	// White is the default canvas background.
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)
