package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/layout"
	"github.com/matzehuels/rendertree/pkg/scene"
	"github.com/matzehuels/rendertree/pkg/tree"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.Canvas.Width != 512 || cfg.Canvas.Height != 512 {
		t.Errorf("canvas = %vx%v, want 512x512", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Cache.TTL.Duration != 24*time.Hour {
		t.Errorf("ttl = %v, want 24h", cfg.Cache.TTL)
	}
	if cfg.Background() != scene.White {
		t.Errorf("Background() = %v, want white", cfg.Background())
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
[canvas]
width = 800
background = "#eee"

[layout]
side_len = 10
y_offset = 30

[style]
leaf_fill = "#00ff00"

[cache]
ttl = "90m"
redis_url = "redis://localhost:6379/0"
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 512 {
		t.Errorf("canvas = %vx%v, want 800x512", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Layout.SideLen != 10 || cfg.Layout.XOffset != 25 || cfg.Layout.YOffset != 30 {
		t.Errorf("layout = %+v", cfg.Layout)
	}
	if cfg.Cache.TTL.Duration != 90*time.Minute {
		t.Errorf("ttl = %v, want 90m", cfg.Cache.TTL)
	}
	if cfg.Cache.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("redis_url = %q", cfg.Cache.RedisURL)
	}
	if got := cfg.Background(); got.R != 0xee || got.G != 0xee || got.B != 0xee {
		t.Errorf("Background() = %v, want #eeeeee", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{"syntax", `[canvas`, "parse config"},
		{"unknown key", "[canvas]\ndepth = 3\n", "canvas.depth"},
		{"unknown section", "[fonts]\nsize = 3\n", "fonts.size"},
		{"zero width", "[canvas]\nwidth = 0\n", "canvas size"},
		{"negative side", "[layout]\nside_len = -1\n", "side length"},
		{"bad color", "[style]\nnode_fill = \"black\"\n", "style.node_fill"},
		{"bad ttl", "[cache]\nttl = \"soon\"\n", "parse config"},
		{"negative width", "[style]\nline_width = -2\n", "line_width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("error = %v, want INVALID_CONFIG", err)
			}
			if !strings.Contains(errors.UserMessage(err), tt.wantMsg) {
				t.Errorf("message %q does not mention %q", errors.UserMessage(err), tt.wantMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[layout]\nx_offset = 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Layout.XOffset != 40 {
		t.Errorf("x_offset = %v, want 40", cfg.Layout.XOffset)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() without file error: %v", err)
	}
	if cfg != Default() {
		t.Error("expected defaults when no config file exists")
	}

	if got, want := DefaultPath(), filepath.Join(dir, "rendertree", "config.toml"); got != want {
		t.Fatalf("DefaultPath() = %q, want %q", got, want)
	}
	if err := os.MkdirAll(filepath.Dir(DefaultPath()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(DefaultPath(), []byte("[canvas]\nheight = 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if cfg.Canvas.Height != 300 {
		t.Errorf("height = %v, want 300", cfg.Canvas.Height)
	}
}

func TestLayoutOptions(t *testing.T) {
	cfg := Default()
	cfg.Layout.SideLen = 10
	cfg.Style.LeafFill = "#0000ff"
	cfg.Style.LineWidth = 2

	l := layout.Compose(tree.MustParse("(())"), 100, 100, cfg.LayoutOptions()...)
	if l.SideLen != 10 {
		t.Errorf("SideLen = %v, want 10", l.SideLen)
	}

	rects := l.Rects()
	if rects[1].Style.Fill.B != 0xff || rects[1].Style.Fill.R != 0 {
		t.Errorf("leaf fill = %v, want blue", rects[1].Style.Fill)
	}
	if rects[0].Style.Fill != scene.Black {
		t.Errorf("node fill = %v, want black", rects[0].Style.Fill)
	}
	if segs := l.Segments(); segs[0].Style.StrokeWidth != 2 {
		t.Errorf("line width = %v, want 2", segs[0].Style.StrokeWidth)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    [4]uint8
		wantErr bool
	}{
		{"#800000", [4]uint8{128, 0, 0, 255}, false},
		{"#fff", [4]uint8{255, 255, 255, 255}, false},
		{"", [4]uint8{}, false},
		{"none", [4]uint8{}, false},
		{"red", [4]uint8{}, true},
		{"#12", [4]uint8{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got := [4]uint8{c.R, c.G, c.B, c.A}; !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
