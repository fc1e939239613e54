package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rendertree/pkg/errors"
	"github.com/matzehuels/rendertree/pkg/tree"
)

// exampleCommand prints the built-in demonstration tree.
func (c *CLI) exampleCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print the demonstration tree",
		Long: `Print the built-in demonstration tree, either as JSON (default) or in
compact parenthesis notation accepted by 'render --tree'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return tree.WriteJSON(out, tree.Example())
			case "compact":
				_, err := fmt.Fprintln(out, tree.Example().String())
				return err
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be json or compact)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, compact")
	return cmd
}
