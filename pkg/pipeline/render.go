package pipeline

import (
	"github.com/matzehuels/rendertree/pkg/config"
	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/layout"
	"github.com/matzehuels/rendertree/pkg/render/nodelink"
	"github.com/matzehuels/rendertree/pkg/render/sink"
	"github.com/matzehuels/rendertree/pkg/tree"
)

// RenderLayout generates tree artifacts for every format in opts from an
// already composed layout. It is the entry point for layouts loaded from
// JSON.
func RenderLayout(l layout.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.IsNodelink() {
		return nil, errors.New(errors.ErrCodeInvalidVizType, "a saved layout can only be rendered as %q", VizTypeTree)
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderTreeFormat(l, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderTreeFormat(l layout.Layout, format string, opts Options) ([]byte, error) {
	bg := opts.BackgroundColor()
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, sink.WithBackground(bg)), nil
	case FormatPNG:
		return sink.RenderPNG(l, sink.WithScale(opts.Scale), sink.WithPNGBackground(bg))
	case FormatPDF:
		return sink.RenderPDF(l, sink.WithPDFSVGOptions(sink.WithBackground(bg)))
	case FormatJSON:
		return sink.RenderJSON(l)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported tree format: %s", format)
	}
}

// RenderNodelink generates Graphviz artifacts for t. Graphviz computes its
// own placement, so no layout is involved.
func RenderNodelink(t *tree.Node, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	dot := nodelink.ToDOT(t, nodelinkOptions(opts))
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderNodelinkFormat(dot, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderNodelinkFormat(dot, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(dot)
	case FormatPNG:
		return nodelink.RenderPNG(dot, opts.Scale)
	case FormatPDF:
		return nodelink.RenderPDF(dot)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported nodelink format: %s", format)
	}
}

// nodelinkOptions passes the fills through; "none" falls back to the defaults.
func nodelinkOptions(opts Options) nodelink.Options {
	node, _ := config.ParseColor(opts.NodeFill)
	leaf, _ := config.ParseColor(opts.LeafFill)
	return nodelink.Options{Detailed: opts.Detailed, NodeColor: node, LeafColor: leaf}
}
