package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rendertree/pkg/config"
	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/pipeline"
	"github.com/matzehuels/rendertree/pkg/tree"
)

// renderCommand creates the render command: tree in, artifacts out.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		src        treeSource
		flags      renderFlags
		formatsStr string
		vizType    string
		output     string
		detailed   bool
	)

	cmd := &cobra.Command{
		Use:   "render [tree.json]",
		Short: "Lay out a tree and render it",
		Long: `Lay out a tree and render it to one or more formats.

The tree is read from a JSON file ("-" for stdin), from --tree in
parenthesis notation, or from --example. Tree visualizations support svg,
png, pdf and json; node-link diagrams (-t nodelink) support svg, png, pdf
and dot.

Results are cached locally for faster subsequent runs.

Examples:
  rendertree render --example
  rendertree render tree.json -f svg,png -o out/tree
  rendertree render --tree "(()(()()))" -t nodelink -f dot -o -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, name, err := src.load(args)
			if err != nil {
				return err
			}
			opts, cfg, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}
			opts.VizType = vizType
			opts.Formats = parseFormats(formatsStr)
			opts.Detailed = detailed
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if output == "-" && len(opts.Formats) != 1 {
				return errors.New(errors.ErrCodeInvalidPath, "stdout output needs exactly one format, got %d", len(opts.Formats))
			}
			return c.runRender(cmd.Context(), cmd.ErrOrStderr(), cfg, t, name, opts, output)
		},
	}

	src.register(cmd)
	flags.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file (single format) or base path (multiple), "-" for stdout`)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&vizType, "type", "t", pipeline.DefaultVizType, "visualization type: tree (default), nodelink")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with depth and child count (nodelink)")

	return cmd
}

// runRender executes the pipeline and writes its artifacts.
func (c *CLI) runRender(ctx context.Context, status io.Writer, cfg config.Config, t *tree.Node, name string, opts pipeline.Options, output string) error {
	runner, err := c.newRunner(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spin := startSpinner(ctx, status, fmt.Sprintf("Rendering %s %s", opts.VizType, strings.Join(opts.Formats, ",")))

	result, err := runner.Render(ctx, t, opts)
	if err != nil {
		spin.Fail("Render failed")
		return err
	}
	spin.Stop()

	if output == "-" {
		return writeFile("-", result.Artifacts[opts.Formats[0]])
	}

	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     name,
		output:    output,
	})
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
	return nil
}
