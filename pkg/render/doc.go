// Package render holds format conversion shared by the tree renderers.
//
// # Overview
//
// Layouts are rendered to SVG natively (see [sink]); the graphviz node-link
// view produces SVG as well (see [nodelink]). [ToPDF] and [ToPNG] convert such
// SVG to other formats using the external rsvg-convert tool from librsvg:
//
//	svg := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(svg)
//
// When rsvg-convert is not installed, conversions fail with an
// [errors.ErrCodeUnsupported] error; [Available] checks up front.
//
// [sink]: github.com/matzehuels/rendertree/pkg/render/sink
// [nodelink]: github.com/matzehuels/rendertree/pkg/render/nodelink
// [errors.ErrCodeUnsupported]: github.com/matzehuels/rendertree/pkg/errors
package render
