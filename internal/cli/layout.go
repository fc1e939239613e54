package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rendertree/pkg/render/sink"
)

// layoutCommand creates the layout command for computing positioned trees.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		src    treeSource
		flags  renderFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout [tree.json]",
		Short: "Compute the layout of a tree",
		Long: `Compute the layout of a tree.

The output is a layout.json file (same format as 'render -f json') holding
every node rectangle and connector line with absolute coordinates. Render it
with the 'visualize' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, name, err := src.load(args)
			if err != nil {
				return err
			}
			opts, cfg, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, cfg)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			spin := startSpinner(ctx, cmd.ErrOrStderr(), "Computing layout")
			l, cacheHit, err := runner.LayoutWithCacheInfo(ctx, t, opts)
			if err != nil {
				spin.Fail("Layout failed")
				return err
			}
			spin.Stop()

			data, err := sink.RenderJSON(l)
			if err != nil {
				return err
			}

			outputPath := output
			if outputPath == "" {
				outputPath = strings.TrimSuffix(name, filepath.Ext(name)) + ".layout.json"
			}
			if err := writeFile(outputPath, data); err != nil {
				return err
			}
			if outputPath == "-" {
				return nil
			}

			printSuccess("Layout complete")
			printFile(outputPath)
			printStats(l.NodeCount(), l.LineCount(), cacheHit)
			printNewline()
			printNextStep("Render", appName+" visualize "+outputPath)
			return nil
		},
	}

	src.register(cmd)
	flags.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file (default: <input>.layout.json), "-" for stdout`)

	return cmd
}
