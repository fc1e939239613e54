package pipeline

import (
	"bytes"
	"context"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/rendertree/pkg/cache"
	"github.com/matzehuels/rendertree/pkg/config"
	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/tree"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		vizType string
		format  string
		wantErr bool
	}{
		{VizTypeTree, "svg", false},
		{VizTypeTree, "png", false},
		{VizTypeTree, "pdf", false},
		{VizTypeTree, "json", false},
		{VizTypeTree, "dot", true},
		{VizTypeNodelink, "dot", false},
		{VizTypeNodelink, "json", true},
		{VizTypeTree, "SVG", true}, // case-sensitive
		{VizTypeTree, "", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.vizType, tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q, %q) error = %v, wantErr %v", tt.vizType, tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q, %q) code = %s", tt.vizType, tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats(VizTypeTree, []string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats(VizTypeTree, []string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(VizTypeTree, nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateVizType(t *testing.T) {
	tests := []struct {
		vizType string
		wantErr bool
	}{
		{"tree", false},
		{"nodelink", false},
		{"tower", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateVizType(tt.vizType)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVizType(%q) error = %v, wantErr %v", tt.vizType, err, tt.wantErr)
		}
	}
}

func TestValidateTree(t *testing.T) {
	if err := ValidateTree(nil); !errors.Is(err, errors.ErrCodeInvalidTree) {
		t.Errorf("ValidateTree(nil) = %v, want INVALID_TREE", err)
	}
	if err := ValidateTree(tree.Example()); err != nil {
		t.Errorf("ValidateTree(example) = %v", err)
	}
}

func TestSetDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()

	d := config.Default()
	if opts.VizType != VizTypeTree {
		t.Errorf("VizType = %q, want %q", opts.VizType, VizTypeTree)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Width != d.Canvas.Width || opts.Height != d.Canvas.Height {
		t.Errorf("canvas = %gx%g, want %gx%g", opts.Width, opts.Height, d.Canvas.Width, d.Canvas.Height)
	}
	if opts.SideLen != 20 {
		t.Errorf("SideLen = %g, want 20", opts.SideLen)
	}
	if opts.XOffset != 0 || opts.YOffset != 0 || opts.LineWidth != 0 {
		t.Errorf("offsets = %g/%g, line width %g; zero is a valid value and must be kept",
			opts.XOffset, opts.YOffset, opts.LineWidth)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %g, want %g", opts.Scale, DefaultScale)
	}
	if opts.TTL != config.DefaultTTL {
		t.Errorf("TTL = %v, want %v", opts.TTL, config.DefaultTTL)
	}
}

func TestSetDefaultsKeepsValues(t *testing.T) {
	opts := Options{Width: 100, SideLen: 7, NodeFill: "#123456", TTL: time.Minute}
	opts.SetDefaults()

	if opts.Width != 100 || opts.SideLen != 7 || opts.NodeFill != "#123456" || opts.TTL != time.Minute {
		t.Errorf("SetDefaults overwrote explicit values: %+v", opts)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.XOffset != 25 || opts.YOffset != 50 || opts.LineWidth != 5 {
		t.Errorf("offsets = %g/%g, line width %g, want 25/50/5", opts.XOffset, opts.YOffset, opts.LineWidth)
	}
}

func TestZeroOffsetsAreKept(t *testing.T) {
	opts := DefaultOptions()
	opts.XOffset = 0
	opts.YOffset = 0
	opts.LineWidth = 0
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.XOffset != 0 || opts.YOffset != 0 || opts.LineWidth != 0 {
		t.Fatalf("offsets = %g/%g, line width %g, want zeros", opts.XOffset, opts.YOffset, opts.LineWidth)
	}

	l, err := NewRunner(nil, nil, nil).Layout(context.Background(), tree.MustParse("(()())"), opts)
	if err != nil {
		t.Fatal(err)
	}
	rects := l.Rects()
	if len(rects) != 3 {
		t.Fatalf("got %d rects, want 3", len(rects))
	}
	root, first, second := rects[0], rects[1], rects[2]
	// Anchors are points, so a zero sibling gap stacks both leaves on one x
	// and a zero level gap puts the parent on the children's row.
	if first.X != second.X {
		t.Errorf("sibling x = %g and %g, want equal with zero x offset", first.X, second.X)
	}
	if root.Y != first.Y {
		t.Errorf("root y = %g, child y = %g, want equal with zero y offset", root.Y, first.Y)
	}

	spaced, err := NewRunner(nil, nil, nil).Layout(context.Background(), tree.MustParse("(()())"), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	sr := spaced.Rects()
	if dx := math.Abs(sr[1].X - sr[2].X); math.Abs(dx-25) > 1e-9 {
		t.Errorf("default sibling distance = %g, want 25", dx)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"defaults", Options{}, ""},
		{"nodelink dot", Options{VizType: VizTypeNodelink, Formats: []string{"dot"}}, ""},
		{"bad viz", Options{VizType: "tower"}, errors.ErrCodeInvalidVizType},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"negative width", Options{Width: -1}, errors.ErrCodeInvalidInput},
		{"negative offset", Options{XOffset: -5}, ""},
		{"infinite offset", Options{YOffset: math.Inf(1)}, errors.ErrCodeInvalidInput},
		{"negative scale", Options{Scale: -2}, errors.ErrCodeInvalidInput},
		{"bad color", Options{LeafFill: "red"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Canvas.Width = 800
	cfg.Layout.SideLen = 12
	cfg.Style.LeafFill = "#00ff00"

	opts := FromConfig(cfg)
	if opts.Width != 800 || opts.SideLen != 12 || opts.LeafFill != "#00ff00" {
		t.Errorf("FromConfig = %+v", opts)
	}
}

func TestLayoutKeyOptsTracksStyle(t *testing.T) {
	a := Options{}
	a.SetDefaults()
	b := a
	b.LeafFill = "#00ff00"

	if a.LayoutKeyOpts() == b.LayoutKeyOpts() {
		t.Error("layout key opts should differ when the leaf fill changes")
	}
	if a.ArtifactKeyOpts("svg") == a.ArtifactKeyOpts("png") {
		t.Error("artifact key opts should differ per format")
	}
}

func TestRunnerRender(t *testing.T) {
	runner := NewRunner(nil, nil, nil)

	result, err := runner.Render(context.Background(), tree.Example(), Options{
		Formats: []string{FormatSVG, FormatJSON, FormatPNG},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if result.Stats.NodeCount != 30 || result.Stats.EdgeCount != 29 || result.Stats.LineCount != 29 {
		t.Errorf("stats = %+v, want 30 nodes, 29 edges, 29 lines", result.Stats)
	}
	if result.TreeHash == "" {
		t.Error("TreeHash is empty")
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Errorf("null cache reported hits: %+v", result.CacheInfo)
	}

	svg := result.Artifacts[FormatSVG]
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Errorf("svg artifact does not start with <svg: %.40q", svg)
	}
	if got := strings.Count(string(svg), `id="node-`); got != 30 {
		t.Errorf("svg has %d node rects, want 30", got)
	}
	if !bytes.HasPrefix(result.Artifacts[FormatPNG], []byte("\x89PNG")) {
		t.Error("png artifact lacks PNG signature")
	}
	if !bytes.Contains(result.Artifacts[FormatJSON], []byte(`"side_len": 20`)) {
		t.Errorf("json artifact missing side_len: %.80q", result.Artifacts[FormatJSON])
	}
}

func TestRunnerRenderNodelinkDOT(t *testing.T) {
	runner := NewRunner(nil, nil, nil)

	result, err := runner.Render(context.Background(), tree.MustParse("(()())"), Options{
		VizType: VizTypeNodelink,
		Formats: []string{FormatDOT},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	dot := string(result.Artifacts[FormatDOT])
	for _, want := range []string{"digraph", "n0 -> n1", "n0 -> n2"} {
		if !strings.Contains(dot, want) {
			t.Errorf("dot missing %q:\n%s", want, dot)
		}
	}
	if result.Layout.Scene != nil {
		t.Error("nodelink run should not compose a layout")
	}
}

func TestRunnerRenderErrors(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	ctx := context.Background()

	if _, err := runner.Render(ctx, nil, Options{}); !errors.Is(err, errors.ErrCodeInvalidTree) {
		t.Errorf("nil tree: %v, want INVALID_TREE", err)
	}
	if _, err := runner.Render(ctx, tree.Example(), Options{Formats: []string{"dot"}}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("dot for tree viz: %v, want INVALID_FORMAT", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := runner.Render(canceled, tree.Example(), Options{}); err != context.Canceled {
		t.Errorf("canceled context: %v, want context.Canceled", err)
	}
}

func TestRunnerCaching(t *testing.T) {
	mem := newMemCache()
	runner := NewRunner(mem, nil, nil)
	ctx := context.Background()
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, err := runner.Render(ctx, tree.Example(), opts)
	if err != nil {
		t.Fatalf("first Render: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Fatalf("first run reported hits: %+v", first.CacheInfo)
	}
	if got := mem.len(); got != 3 {
		t.Errorf("cache holds %d entries after first run, want 3 (layout + 2 artifacts)", got)
	}

	second, err := runner.Render(ctx, tree.Example(), opts)
	if err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit both stages: %+v", second.CacheInfo)
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached svg differs from rendered svg")
	}
	if second.Layout.NodeCount() != 30 {
		t.Errorf("cached layout has %d nodes, want 30", second.Layout.NodeCount())
	}

	opts.Refresh = true
	third, err := runner.Render(ctx, tree.Example(), opts)
	if err != nil {
		t.Fatalf("refresh Render: %v", err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Errorf("refresh run should bypass the cache: %+v", third.CacheInfo)
	}
}

func TestRunnerCacheKeysDependOnOptions(t *testing.T) {
	mem := newMemCache()
	runner := NewRunner(mem, nil, nil)
	ctx := context.Background()

	if _, err := runner.Render(ctx, tree.Example(), Options{}); err != nil {
		t.Fatal(err)
	}
	result, err := runner.Render(ctx, tree.Example(), Options{SideLen: 10})
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.LayoutHit {
		t.Error("different side length must not reuse the cached layout")
	}
}

func TestRunnerCorruptCacheEntry(t *testing.T) {
	mem := newMemCache()
	runner := NewRunner(mem, nil, nil)
	ctx := context.Background()
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}

	hash, err := HashTree(tree.Example())
	if err != nil {
		t.Fatal(err)
	}
	_ = mem.Set(ctx, runner.Keyer.LayoutKey(hash, opts.LayoutKeyOpts()), []byte("not json"), time.Hour)

	l, hit, err := runner.LayoutWithCacheInfo(ctx, tree.Example(), opts)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if hit {
		t.Error("corrupt entry should count as a miss")
	}
	if l.NodeCount() != 30 {
		t.Errorf("NodeCount = %d, want 30", l.NodeCount())
	}
}

func TestRenderLayoutRejectsNodelink(t *testing.T) {
	l, err := NewRunner(nil, nil, nil).Layout(context.Background(), tree.Example(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = RenderLayout(l, Options{VizType: VizTypeNodelink, Formats: []string{"svg"}})
	if !errors.Is(err, errors.ErrCodeInvalidVizType) {
		t.Errorf("RenderLayout(nodelink) = %v, want INVALID_VIZ_TYPE", err)
	}
}

func TestRunnerConcurrentUse(t *testing.T) {
	runner := NewRunner(newMemCache(), cache.NewScopedKeyer(nil, "test:"), nil)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := runner.Render(context.Background(), tree.Example(), Options{SideLen: float64(10 + i%2)})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
}

// memCache is an in-memory cache.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memCache) Close() error { return nil }

func (m *memCache) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
