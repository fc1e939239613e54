package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/render"
	"github.com/matzehuels/rendertree/pkg/scene"
	"github.com/matzehuels/rendertree/pkg/tree"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed labels every node with its depth and child count.
	// When false, nodes carry no label.
	Detailed bool

	// NodeColor and LeafColor fill internal nodes and leaves. Zero values
	// fall back to black and the leaf red used by the tree layout.
	NodeColor color.RGBA
	LeafColor color.RGBA
}

// ToDOT converts a tree to Graphviz DOT format for node-link visualization.
// Nodes are named n0, n1, ... in pre-order and edges keep child order.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(t *tree.Node, opts Options) string {
	nodeFill := fillOr(opts.NodeColor, scene.Black)
	leafFill := fillOr(opts.LeafColor, scene.LeafRed)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=filled, fillcolor=%q, fontcolor=white, width=0.3, height=0.3, fixedsize=true, label=\"\"];\n", nodeFill)
	buf.WriteString("  edge [arrowhead=none, penwidth=2];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if t == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	// Ids are assigned per visit, so a *tree.Node shared by two parents
	// still gets one DOT node per occurrence.
	var edges []string
	next := 0
	var visit func(n *tree.Node, depth, parent int)
	visit = func(n *tree.Node, depth, parent int) {
		id := next
		next++
		if attrs := fmtAttrs(n, depth, opts.Detailed, leafFill); len(attrs) > 0 {
			fmt.Fprintf(&buf, "  n%d [%s];\n", id, strings.Join(attrs, ", "))
		} else {
			fmt.Fprintf(&buf, "  n%d;\n", id)
		}
		if parent >= 0 {
			edges = append(edges, fmt.Sprintf("  n%d -> n%d;\n", parent, id))
		}
		for _, c := range n.Children {
			visit(c, depth+1, id)
		}
	}
	visit(t, 0, -1)

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n *tree.Node, depth int, detailed bool, leafFill string) []string {
	var attrs []string
	if n.IsLeaf() {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", leafFill))
	}
	if detailed {
		label := fmt.Sprintf("depth: %d\nchildren: %d", depth, len(n.Children))
		attrs = append(attrs, fmt.Sprintf("label=%q", label), "fixedsize=false", "fontsize=10")
	}
	return attrs
}

func fillOr(c, fallback color.RGBA) string {
	if c.A == 0 {
		c = fallback
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces graphviz's pt-sized root element with a plain
// viewBox so the diagram scales like the tree sinks' output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
