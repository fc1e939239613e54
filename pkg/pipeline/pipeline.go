// Package pipeline provides the layout → render pipeline for rendertree.
//
// This package implements the complete pipeline used by the CLI and the HTTP
// API. By centralizing this logic, both entry points validate, cache and
// render the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Compose the tree into positioned rectangles and connectors
//  2. Render: Generate output in the requested formats
//
// The "nodelink" visualization skips the layout stage; Graphviz places the
// nodes itself.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Formats = []string{"svg", "png"}
//	result, err := runner.Render(ctx, t, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Layout only
//	l, err := runner.Layout(ctx, t, opts)
//
//	// Render a previously saved layout
//	artifacts, err := pipeline.RenderLayout(l, opts)
package pipeline

import (
	"image/color"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/rendertree/pkg/cache"
	"github.com/matzehuels/rendertree/pkg/config"
	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/layout"
	"github.com/matzehuels/rendertree/pkg/tree"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// Visualization types.
const (
	// VizTypeTree is the native layout: squares and connector lines.
	VizTypeTree = "tree"
	// VizTypeNodelink is the Graphviz node-link diagram of the same tree.
	VizTypeNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeTree

// DefaultScale is the default PNG resolution multiplier.
const DefaultScale = 1.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats lists the supported output formats per visualization type.
var ValidFormats = map[string][]string{
	VizTypeTree:     {FormatSVG, FormatPNG, FormatPDF, FormatJSON},
	VizTypeNodelink: {FormatSVG, FormatPNG, FormatPDF, FormatDOT},
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	VizType string   `json:"viz_type,omitempty"`
	Formats []string `json:"formats,omitempty"`

	// Layout options
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
	SideLen float64 `json:"side_len,omitempty"`
	XOffset float64 `json:"x_offset,omitempty"`
	YOffset float64 `json:"y_offset,omitempty"`

	// Style options, as #rrggbb
	NodeFill   string  `json:"node_fill,omitempty"`
	LeafFill   string  `json:"leaf_fill,omitempty"`
	LineStroke string  `json:"line_stroke,omitempty"`
	LineWidth  float64 `json:"line_width,omitempty"`
	Background string  `json:"background,omitempty"`

	// Render options
	Scale    float64 `json:"scale,omitempty"`
	Detailed bool    `json:"detailed,omitempty"` // nodelink labels
	Refresh  bool    `json:"refresh,omitempty"`  // skip cache reads

	// Runtime options (not serialized)
	TTL time.Duration `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns options seeded from [config.Default].
func DefaultOptions() Options {
	return FromConfig(config.Default())
}

// FromConfig returns options carrying every setting from cfg. Formats and
// VizType are left for the caller.
func FromConfig(cfg config.Config) Options {
	return Options{
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		Background: cfg.Canvas.Background,
		SideLen:    cfg.Layout.SideLen,
		XOffset:    cfg.Layout.XOffset,
		YOffset:    cfg.Layout.YOffset,
		NodeFill:   cfg.Style.NodeFill,
		LeafFill:   cfg.Style.LeafFill,
		LineStroke: cfg.Style.LineStroke,
		LineWidth:  cfg.Style.LineWidth,
		TTL:        cfg.Cache.TTL.Duration,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// TreeHash is the content hash of the input tree.
	TreeHash string

	// Layout is the composed layout; zero for nodelink runs.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	Depth      int
	LineCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if _, ok := ValidFormats[vizType]; !ok {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz type: %q (must be one of: tree, nodelink)", vizType)
	}
	return nil
}

// ValidateFormat checks that format is supported for vizType.
func ValidateFormat(vizType, format string) error {
	valid := ValidFormats[vizType]
	if !slices.Contains(valid, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format for %s: %q (must be one of: %s)",
			vizType, format, strings.Join(valid, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are supported for vizType.
func ValidateFormats(vizType string, formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(vizType, f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTree checks that t exists and stays within the size limits.
func ValidateTree(t *tree.Node) error {
	if t == nil {
		return errors.New(errors.ErrCodeInvalidTree, "tree is required")
	}
	return errors.ValidateTreeLimits(t.Count(), t.Depth())
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero fields from [config.Default]. Offsets and line
// width are left alone since zero is a valid value for them; seed options
// with [DefaultOptions] or [FromConfig] to get the configured spacing.
func (o *Options) SetDefaults() {
	d := FromConfig(config.Default())
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	setFloat(&o.Width, d.Width)
	setFloat(&o.Height, d.Height)
	setFloat(&o.SideLen, d.SideLen)
	setFloat(&o.Scale, DefaultScale)
	setString(&o.NodeFill, d.NodeFill)
	setString(&o.LeafFill, d.LeafFill)
	setString(&o.LineStroke, d.LineStroke)
	setString(&o.Background, d.Background)
	if o.TTL == 0 {
		o.TTL = d.TTL
	}
}

func setFloat(dst *float64, v float64) {
	if *dst == 0 {
		*dst = v
	}
}

func setString(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// ValidateAndSetDefaults applies defaults and validates every field.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.VizType, o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateCanvas(o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateSideLen(o.SideLen); err != nil {
		return err
	}
	if err := errors.ValidateOffsets(o.XOffset, o.YOffset); err != nil {
		return err
	}
	if o.Scale <= 0 || math.IsInf(o.Scale, 0) || math.IsNaN(o.Scale) {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	for _, c := range []string{o.NodeFill, o.LeafFill, o.LineStroke, o.Background} {
		if _, err := config.ParseColor(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color")
		}
	}

	o.validated = true
	return nil
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// config maps the options back onto a config so layout and colors are
// derived in one place.
func (o *Options) config() config.Config {
	cfg := config.Default()
	cfg.Canvas.Width, cfg.Canvas.Height = o.Width, o.Height
	cfg.Canvas.Background = o.Background
	cfg.Layout = config.LayoutConfig{SideLen: o.SideLen, XOffset: o.XOffset, YOffset: o.YOffset}
	cfg.Style = config.StyleConfig{
		NodeFill:   o.NodeFill,
		LeafFill:   o.LeafFill,
		LineStroke: o.LineStroke,
		LineWidth:  o.LineWidth,
	}
	return cfg
}

// LayoutOptions returns the driver options for these settings.
func (o *Options) LayoutOptions() []layout.Option {
	return o.config().LayoutOptions()
}

// BackgroundColor returns the parsed canvas background.
func (o *Options) BackgroundColor() color.RGBA {
	return o.config().Background()
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:   o.Width,
		Height:  o.Height,
		SideLen: o.SideLen,
		XOffset: o.XOffset,
		YOffset: o.YOffset,
		Style:   strings.Join([]string{o.NodeFill, o.LeafFill, o.LineStroke, formatFloat(o.LineWidth)}, "/"),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		VizType:    o.VizType,
		Format:     format,
		Layout:     o.LayoutKeyOpts(),
		Background: o.Background,
		Scale:      o.Scale,
		Detailed:   o.Detailed,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
