package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rendertree/pkg/cache"
	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/layout"
	"github.com/matzehuels/rendertree/pkg/observability"
	"github.com/matzehuels/rendertree/pkg/render/sink"
	"github.com/matzehuels/rendertree/pkg/tree"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Render runs the complete layout → render pipeline for t with caching.
func (r *Runner) Render(ctx context.Context, t *tree.Node, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ValidateTree(t); err != nil {
		return nil, err
	}

	treeHash, err := HashTree(t)
	if err != nil {
		return nil, err
	}
	result := &Result{
		TreeHash: treeHash,
		Stats: Stats{
			NodeCount: t.Count(),
			EdgeCount: t.Edges(),
			Depth:     t.Depth(),
		},
	}

	// Stage 1: Layout (the node-link view is placed by Graphviz)
	if !opts.IsNodelink() {
		layoutStart := time.Now()
		l, layoutHit, err := r.layout(ctx, t, treeHash, opts)
		if err != nil {
			return nil, err
		}
		result.Layout = l
		result.Stats.LineCount = l.LineCount()
		result.Stats.LayoutTime = time.Since(layoutStart)
		result.CacheInfo.LayoutHit = layoutHit

		r.Logger.Info("computed layout",
			"nodes", l.NodeCount(),
			"lines", l.LineCount(),
			"cached", layoutHit,
			"duration", result.Stats.LayoutTime)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.render(ctx, t, treeHash, result.Layout, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo composes t with caching and returns cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, t *tree.Node, opts Options) (layout.Layout, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Layout{}, false, err
	}
	if err := ValidateTree(t); err != nil {
		return layout.Layout{}, false, err
	}
	treeHash, err := HashTree(t)
	if err != nil {
		return layout.Layout{}, false, err
	}
	return r.layout(ctx, t, treeHash, opts)
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, t *tree.Node, opts Options) (layout.Layout, error) {
	l, _, err := r.LayoutWithCacheInfo(ctx, t, opts)
	return l, err
}

func (r *Runner) layout(ctx context.Context, t *tree.Node, treeHash string, opts Options) (l layout.Layout, hit bool, err error) {
	if err := ctx.Err(); err != nil {
		return layout.Layout{}, false, err
	}
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.VizType, t.Count())
	start := time.Now()
	defer func() { hooks.OnLayoutComplete(ctx, opts.VizType, time.Since(start), err) }()

	cacheKey := r.Keyer.LayoutKey(treeHash, opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if data, ok := r.lookup(ctx, cacheKey, "layout", opts); ok {
		cached, err := sink.ParseJSON(data)
		if err == nil {
			return cached, true, nil
		}
		// A corrupt entry falls through to recompute
		r.Logger.Debug("discarding cached layout", "key", cacheKey, "err", err)
	}

	l = layout.Compose(t, opts.Width, opts.Height, opts.LayoutOptions()...)

	if data, err := sink.RenderJSON(l); err == nil {
		r.store(ctx, cacheKey, "layout", data, opts)
	}
	return l, false, nil
}

// RenderWithCacheInfo generates artifacts for t with caching and returns
// cache hit info. The hit flag is true only when every format was cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, t *tree.Node, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	if err := ValidateTree(t); err != nil {
		return nil, false, err
	}
	treeHash, err := HashTree(t)
	if err != nil {
		return nil, false, err
	}
	var l layout.Layout
	if !opts.IsNodelink() {
		if l, _, err = r.layout(ctx, t, treeHash, opts); err != nil {
			return nil, false, err
		}
	}
	return r.render(ctx, t, treeHash, l, opts)
}

func (r *Runner) render(ctx context.Context, t *tree.Node, treeHash string, l layout.Layout, opts Options) (artifacts map[string][]byte, allHit bool, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	artifacts = make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(treeHash, opts.ArtifactKeyOpts(format))
		if data, ok := r.lookup(ctx, key, "artifact", opts); ok {
			artifacts[format] = data
			continue
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	sub := opts
	sub.Formats = missing
	var rendered map[string][]byte
	if opts.IsNodelink() {
		rendered, err = RenderNodelink(t, sub)
	} else {
		rendered, err = RenderLayout(l, sub)
	}
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		artifacts[format] = data
		r.store(ctx, r.Keyer.ArtifactKey(treeHash, opts.ArtifactKeyOpts(format)), "artifact", data, opts)
		r.Logger.Debug("rendered", "format", format, "bytes", len(data))
	}
	return artifacts, false, nil
}

// lookup reads key from the cache. Cache failures count as misses.
func (r *Runner) lookup(ctx context.Context, key, keyType string, opts Options) ([]byte, bool) {
	if opts.Refresh {
		return nil, false
	}
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
	}
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, keyType)
		return nil, false
	}
	hooks.OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, opts Options) {
	if err := r.Cache.Set(ctx, key, data, opts.TTL); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// HashTree returns the content hash of t's canonical JSON encoding.
func HashTree(t *tree.Node) (string, error) {
	data, err := tree.Marshal(t)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash tree")
	}
	return cache.Hash(data), nil
}
