// Package config loads rendertree settings from a TOML file.
//
// A file may set any subset of the keys below; missing keys keep their
// defaults and unknown keys are rejected:
//
//	[canvas]
//	width = 512
//	height = 512
//	background = "#ffffff"
//
//	[layout]
//	side_len = 20
//	x_offset = 25
//	y_offset = 50
//
//	[style]
//	node_fill = "#000000"
//	leaf_fill = "#800000"
//	line_stroke = "#000000"
//	line_width = 5
//
//	[cache]
//	dir = ""          # defaults to the user cache dir
//	ttl = "24h"
//	redis_url = ""    # redis://host:6379/0 selects the redis backend
package config

import (
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/layout"
	"github.com/matzehuels/rendertree/pkg/scene"
)

// Config is the full set of user-tunable settings.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Layout LayoutConfig `toml:"layout"`
	Style  StyleConfig  `toml:"style"`
	Cache  CacheConfig  `toml:"cache"`
}

// CanvasConfig sizes the output canvas.
type CanvasConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"`
}

// LayoutConfig holds the driver geometry.
type LayoutConfig struct {
	SideLen float64 `toml:"side_len"`
	XOffset float64 `toml:"x_offset"`
	YOffset float64 `toml:"y_offset"`
}

// StyleConfig holds fills and strokes as #rrggbb strings.
type StyleConfig struct {
	NodeFill   string  `toml:"node_fill"`
	LeafFill   string  `toml:"leaf_fill"`
	LineStroke string  `toml:"line_stroke"`
	LineWidth  float64 `toml:"line_width"`
}

// CacheConfig selects and tunes the artifact cache.
type CacheConfig struct {
	Dir      string   `toml:"dir"`
	TTL      Duration `toml:"ttl"`
	RedisURL string   `toml:"redis_url"`
}

// Duration is a time.Duration written as a Go duration string ("24h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultTTL is how long cached artifacts stay valid.
const DefaultTTL = 24 * time.Hour

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{Width: 512, Height: 512, Background: "#ffffff"},
		Layout: LayoutConfig{
			SideLen: layout.DefaultSideLen,
			XOffset: layout.DefaultXOffset,
			YOffset: layout.DefaultYOffset,
		},
		Style: StyleConfig{
			NodeFill:   "#000000",
			LeafFill:   "#800000",
			LineStroke: "#000000",
			LineWidth:  layout.DefaultLineWidth,
		},
		Cache: CacheConfig{TTL: Duration{DefaultTTL}},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/rendertree/config.toml, falling back
// to the platform config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "rendertree", "config.toml")
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// LoadOrDefault loads path if given. With an empty path it loads
// [DefaultPath] when that file exists and returns the defaults otherwise.
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	if p := DefaultPath(); p != "" {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and colors. Errors carry ErrCodeInvalidConfig.
func (c Config) Validate() error {
	checks := []error{
		errors.ValidateCanvas(c.Canvas.Width, c.Canvas.Height),
		errors.ValidateSideLen(c.Layout.SideLen),
		errors.ValidateOffsets(c.Layout.XOffset, c.Layout.YOffset),
	}
	if c.Style.LineWidth < 0 {
		checks = append(checks, errors.New(errors.ErrCodeInvalidConfig, "line_width must not be negative, got %g", c.Style.LineWidth))
	}
	if c.Cache.TTL.Duration < 0 {
		checks = append(checks, errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative, got %s", c.Cache.TTL))
	}
	for _, err := range checks {
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
		}
	}

	colors := []struct{ key, value string }{
		{"canvas.background", c.Canvas.Background},
		{"style.node_fill", c.Style.NodeFill},
		{"style.leaf_fill", c.Style.LeafFill},
		{"style.line_stroke", c.Style.LineStroke},
	}
	for _, col := range colors {
		if _, err := ParseColor(col.value); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", col.key)
		}
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rgb". The empty string and "none" are the
// transparent color.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" || strings.EqualFold(s, "none") {
		return color.RGBA{}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidConfig, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func mustColor(s string, fallback color.RGBA) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

// Background returns the parsed canvas background.
func (c Config) Background() color.RGBA {
	return mustColor(c.Canvas.Background, scene.White)
}

// LayoutOptions converts the layout and style sections to driver options.
// Colors that do not parse fall back to the defaults; call [Config.Validate]
// first to reject them instead.
func (c Config) LayoutOptions() []layout.Option {
	return []layout.Option{
		layout.WithSideLen(c.Layout.SideLen),
		layout.WithOffsets(c.Layout.XOffset, c.Layout.YOffset),
		layout.WithNodeStyle(scene.Filled(mustColor(c.Style.NodeFill, scene.Black))),
		layout.WithLeafStyle(scene.Filled(mustColor(c.Style.LeafFill, scene.LeafRed))),
		layout.WithLineStyle(scene.Stroked(c.Style.LineWidth, mustColor(c.Style.LineStroke, scene.Black))),
	}
}
