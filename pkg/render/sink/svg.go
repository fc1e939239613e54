package sink

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/matzehuels/rendertree/pkg/layout"
	"github.com/matzehuels/rendertree/pkg/scene"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background color.RGBA
	classes    bool
}

// WithBackground sets the canvas fill. A fully transparent color omits the
// background rectangle.
func WithBackground(c color.RGBA) SVGOption { return func(r *svgRenderer) { r.background = c } }

// WithClass adds class="node", "leaf" or "edge" to every element so the
// output can be styled with CSS.
func WithClass(on bool) SVGOption { return func(r *svgRenderer) { r.classes = on } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{background: scene.White}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders the layout as a standalone SVG document sized to the
// layout's canvas. Connector lines are drawn first, rectangles on top.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	if r.background.A != 0 {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="100%%" height="100%%" fill="%s"/>`+"\n", hexColor(r.background))
	}

	buf.WriteString(`  <g id="edges">` + "\n")
	for _, seg := range l.Segments() {
		r.renderLine(&buf, seg)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g id="nodes">` + "\n")
	for i, rect := range l.Rects() {
		r.renderRect(&buf, i, rect)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderLine(buf *bytes.Buffer, seg layout.Segment) {
	fmt.Fprintf(buf, `    <line%s x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		r.class("edge"), seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y,
		hexColor(seg.Style.Stroke), seg.Style.StrokeWidth)
}

func (r svgRenderer) renderRect(buf *bytes.Buffer, index int, rect layout.PlacedRect) {
	kind := "node"
	if rect.Leaf {
		kind = "leaf"
	}
	fmt.Fprintf(buf, `    <rect%s id="node-%d" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		r.class(kind), index, rect.X, rect.Y, rect.Width, rect.Height, hexColor(rect.Style.Fill))
}

func (r svgRenderer) class(name string) string {
	if !r.classes {
		return ""
	}
	return fmt.Sprintf(` class="%s"`, name)
}
