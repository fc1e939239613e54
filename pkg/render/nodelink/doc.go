// Package nodelink renders trees as classic node-link diagrams.
//
// # Overview
//
// Where the layout package computes its own geometry, this package hands the
// tree to Graphviz and lets dot place it. The result is a second view of the
// same input, useful for checking a layout against a reference drawing.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(t, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
//   - Detailed: label nodes with depth and child count
//   - NodeColor, LeafColor: fills, defaulting to the tree layout's colors
//
// # DOT Format
//
// Nodes are named n0, n1, ... in pre-order, so n0 is always the root. The
// graph uses top-to-bottom layout (rankdir=TB) and unlabeled square nodes,
// matching the tree layout's look.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
