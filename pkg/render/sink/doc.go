// Package sink renders a composed [layout.Layout] to output formats.
//
// # Overview
//
// A "sink" transforms a layout into bytes. This package provides:
//
//   - SVG: hand-written vector output, lines beneath rectangles
//   - PNG: native rasterization with fogleman/gg
//   - PDF: SVG converted by rsvg-convert
//   - JSON: positioned rectangles and lines, re-importable with [ParseJSON]
//
// Basic usage:
//
//	l := layout.Compose(t, 512, 512)
//	svg := sink.RenderSVG(l, sink.WithClass(true))
//	png, err := sink.RenderPNG(l, sink.WithScale(2))
//
// # SVG Options
//
//   - [WithBackground]: canvas fill, transparent to omit (default white)
//   - [WithClass]: add node/leaf/edge classes for CSS styling
//
// # PNG Options
//
//   - [WithScale]: resolution multiplier (default 1)
//   - [WithPNGBackground]: canvas fill (default white)
//
// # PDF Output
//
// [RenderPDF] requires librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # JSON Round Trip
//
// [RenderJSON] writes rectangles in pre-order; each carries the array index
// of its parent, so [ParseJSON] can rebuild the scene without the tree:
//
//	data, _ := sink.RenderJSON(l)
//	l2, err := sink.ParseJSON(data)
//	svg := sink.RenderSVG(l2) // identical to sink.RenderSVG(l)
package sink
