package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// statsCommand prints structural counts of a tree without rendering it.
func (c *CLI) statsCommand() *cobra.Command {
	var src treeSource

	cmd := &cobra.Command{
		Use:   "stats [tree.json]",
		Short: "Show node, edge, depth and fan-out counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, name, err := src.load(args)
			if err != nil {
				return err
			}
			printTitle(name)
			printKeyValue("nodes", strconv.Itoa(t.Count()))
			printKeyValue("edges", strconv.Itoa(t.Edges()))
			printKeyValue("leaves", strconv.Itoa(t.Leaves()))
			printKeyValue("depth", strconv.Itoa(t.Depth()))
			printKeyValue("max fan-out", strconv.Itoa(t.MaxFanout()))
			return nil
		},
	}

	src.register(cmd)
	return cmd
}
