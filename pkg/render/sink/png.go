package sink

import (
	"bytes"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/layout"
	"github.com/matzehuels/rendertree/pkg/scene"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background color.RGBA
}

// WithScale sets the PNG scale factor (default 1). A scale of 2 produces a
// 2x resolution image.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGBackground sets the canvas fill (default white). A fully transparent
// color leaves the canvas transparent.
func WithPNGBackground(c color.RGBA) PNGOption {
	return func(r *pngRenderer) { r.background = c }
}

// RenderPNG rasterizes the layout directly, without an SVG round trip, so it
// needs no external tools.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1, background: scene.White}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsNaN(r.scale) || math.IsInf(r.scale, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %v", r.scale)
	}

	w := int(math.Ceil(l.Width * r.scale))
	h := int(math.Ceil(l.Height * r.scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png canvas must be non-empty, got %dx%d", w, h)
	}

	dc := gg.NewContext(w, h)
	if r.background.A != 0 {
		dc.SetColor(r.background)
		dc.Clear()
	}
	dc.Scale(r.scale, r.scale)

	for _, seg := range l.Segments() {
		dc.SetColor(seg.Style.Stroke)
		dc.SetLineWidth(seg.Style.StrokeWidth * r.scale)
		dc.DrawLine(seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
		dc.Stroke()
	}

	for _, rect := range l.Rects() {
		dc.SetColor(rect.Style.Fill)
		dc.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
		dc.Fill()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "encode png")
	}
	return buf.Bytes(), nil
}
