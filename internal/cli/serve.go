package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/rendertree/internal/server"
	"github.com/matzehuels/rendertree/pkg/cache"
	"github.com/matzehuels/rendertree/pkg/pipeline"
)

// defaultAddr is where serve listens unless --addr is given.
const defaultAddr = "127.0.0.1:8080"

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Long: `Serve the render API over HTTP.

Endpoints:
  POST /v1/render?format=svg|png|pdf|json|dot&type=tree|nodelink
  GET  /v1/example
  GET  /healthz

Settings from the config file are the defaults for every request.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			cc, err := c.newCache(ctx, cfg)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(cc, cache.NewScopedKeyer(nil, "api:"), c.Logger)
			defer runner.Close()

			srv := server.New(runner, c.Logger, pipeline.FromConfig(cfg))
			printInfo("Listening on %s", StyleLink.Render("http://"+addr))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	return cmd
}
