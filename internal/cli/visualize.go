package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/pipeline"
	"github.com/matzehuels/rendertree/pkg/render/sink"
)

// visualizeCommand creates the visualize command for rendering a saved layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		flags      renderFlags
		formatsStr string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render visualization from a computed layout",
		Long: `Render visualization from a computed layout.

The visualize command takes a layout.json file (produced by 'layout') and
renders it to SVG, PNG, or PDF format. The layout contains all positioning
information, so this step is purely about rendering.

Use 'render' as a shortcut to go directly from tree.json to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			data, err := os.ReadFile(input)
			if os.IsNotExist(err) {
				return errors.Wrap(errors.ErrCodeFileNotFound, err, "load layout %s", input)
			}
			if err != nil {
				return fmt.Errorf("load layout %s: %w", input, err)
			}
			l, err := sink.ParseJSON(data)
			if err != nil {
				return err
			}

			opts, _, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}
			opts.VizType = pipeline.VizTypeTree
			opts.Formats = parseFormats(formatsStr)

			spin := startSpinner(cmd.Context(), cmd.ErrOrStderr(), "Rendering layout")
			artifacts, err := pipeline.RenderLayout(l, opts)
			if err != nil {
				spin.Fail("Visualization failed")
				return err
			}
			spin.Stop()

			paths, err := writeArtifacts(artifactWriteParams{
				artifacts: artifacts,
				formats:   opts.Formats,
				input:     trimLayoutSuffix(input),
				output:    output,
			})
			if err != nil {
				return err
			}
			printSuccess("Visualization complete")
			for _, p := range paths {
				printFile(p)
			}
			printStats(l.NodeCount(), l.LineCount(), false)
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), pdf, png (comma-separated)")

	return cmd
}

// trimLayoutSuffix maps "tree.layout.json" to "tree" so visualize writes
// tree.svg next to it.
func trimLayoutSuffix(path string) string {
	return strings.TrimSuffix(strings.TrimSuffix(path, ".json"), ".layout")
}
