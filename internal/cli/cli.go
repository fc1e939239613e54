// Package cli implements the rendertree command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rendertree/pkg/buildinfo"
	"github.com/matzehuels/rendertree/pkg/cache"
	"github.com/matzehuels/rendertree/pkg/config"
	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/observability"
	"github.com/matzehuels/rendertree/pkg/pipeline"
	"github.com/matzehuels/rendertree/pkg/tree"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "rendertree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// RunID identifies one invocation in log output.
	RunID string

	// Persistent flags
	configPath string
	cacheURL   string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "rendertree lays out rooted trees and renders them",
		Long: `rendertree is a CLI tool that lays out rooted ordered trees as square nodes
joined by connector lines and renders them to SVG, PNG, PDF or JSON.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.begin()
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&c.cacheURL, "cache-url", "", "redis URL for a shared cache (overrides cache.redis_url)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable caching")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// begin tags the logger with a fresh run id and routes pipeline and cache
// events to it.
func (c *CLI) begin() {
	if c.RunID == "" {
		c.RunID = uuid.NewString()
		c.Logger = c.Logger.With("run", c.RunID[:8])
	}
	hooks := newLogHooks(c.Logger)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
}

// =============================================================================
// Config and Runner Factory
// =============================================================================

// loadConfig reads --config, or the default config file when present.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.LoadOrDefault(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if c.cacheURL != "" {
		cfg.Cache.RedisURL = c.cacheURL
	}
	return cfg, nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cfg config.Config) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, nil, c.Logger), nil
}

// newCache picks the cache backend: none with --no-cache, Redis when a URL
// is configured, the file cache otherwise. An unusable cache directory
// degrades to no caching.
func (c *CLI) newCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisURL, cache.DefaultRedisPrefix)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "connect to cache")
		}
		c.Logger.Debug("using redis cache", "url", redactURL(cfg.Cache.RedisURL))
		return rc, nil
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		c.Logger.Warn("caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// cacheDir returns cache.dir from the config or the per-user default.
func cacheDir(cfg config.Config) (string, error) {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	return cache.DefaultDir()
}

// redactURL hides credentials in a connection URL.
func redactURL(u string) string {
	scheme, rest, ok := strings.Cut(u, "://")
	if !ok {
		return u
	}
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = "***@" + rest[at+1:]
	}
	return scheme + "://" + rest
}

// =============================================================================
// Input Helpers
// =============================================================================

// treeSource holds the flags selecting where a tree comes from.
type treeSource struct {
	notation string
	example  bool
}

func (s *treeSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.notation, "tree", "", `tree in parenthesis notation, e.g. "(()())"`)
	cmd.Flags().BoolVar(&s.example, "example", false, "use the built-in demonstration tree")
}

// load returns the tree and a name used to derive output paths. Exactly one
// of a file argument ("-" for stdin), --tree or --example must be given.
func (s *treeSource) load(args []string) (*tree.Node, string, error) {
	sources := len(args)
	if s.notation != "" {
		sources++
	}
	if s.example {
		sources++
	}
	if sources != 1 {
		return nil, "", errors.New(errors.ErrCodeInvalidInput, "give exactly one of a tree file, --tree or --example")
	}

	switch {
	case s.example:
		return tree.Example(), "example", nil
	case s.notation != "":
		t, err := tree.Parse(s.notation)
		return t, "tree", err
	case args[0] == "-":
		t, err := tree.ReadJSON(os.Stdin)
		return t, "tree", err
	default:
		t, err := tree.ReadFile(args[0])
		return t, args[0], err
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
