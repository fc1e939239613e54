// Package pkg provides the core libraries for rendertree tree visualization.
//
// # Overview
//
// rendertree draws rooted ordered trees: every node becomes a square, every
// parent-child edge a connector line, and sibling subtrees are packed left
// to right without overlap. The pkg directory is organized into these areas:
//
//  1. [tree] - The input model, JSON and parenthesis notation
//  2. [scene] - Arena of positioned shapes the layout works on
//  3. [layout] - Compositional layout (bounds, rows, stacks, centering, connectors)
//  4. [render] - Output sinks (SVG, PNG, PDF, JSON) and Graphviz node-link diagrams
//  5. [pipeline] - Orchestration (layout → render) with caching
//
// Supporting packages: [config] (TOML settings), [cache] (file and Redis
// backends), [errors] (coded errors), [observability] (hooks) and
// [buildinfo] (version stamping).
//
// # Architecture
//
// The typical data flow through rendertree:
//
//	tree.json / "(()(()))"
//	         ↓
//	    [tree] package (parse and validate)
//	         ↓
//	    [layout] package (compose into a scene, center, connect)
//	         ↓
//	    [render/sink] package (serialize)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/rendertree/pkg/layout"
//	    "github.com/matzehuels/rendertree/pkg/render/sink"
//	    "github.com/matzehuels/rendertree/pkg/tree"
//	)
//
//	t := tree.MustParse("(()(()()))")
//	l := layout.Compose(t, 512, 512)
//	svg := sink.RenderSVG(l)
//
// With caching and multiple formats, use [pipeline.Runner]:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Formats = []string{"svg", "png"}
//	result, err := runner.Render(ctx, t, opts)
//
// [tree]: github.com/matzehuels/rendertree/pkg/tree
// [scene]: github.com/matzehuels/rendertree/pkg/scene
// [layout]: github.com/matzehuels/rendertree/pkg/layout
// [render]: github.com/matzehuels/rendertree/pkg/render
// [render/sink]: github.com/matzehuels/rendertree/pkg/render/sink
// [pipeline]: github.com/matzehuels/rendertree/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/rendertree/pkg/pipeline#Runner
// [config]: github.com/matzehuels/rendertree/pkg/config
// [cache]: github.com/matzehuels/rendertree/pkg/cache
// [errors]: github.com/matzehuels/rendertree/pkg/errors
// [observability]: github.com/matzehuels/rendertree/pkg/observability
// [buildinfo]: github.com/matzehuels/rendertree/pkg/buildinfo
package pkg
