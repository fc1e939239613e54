package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/rendertree/pkg/config"
	"github.com/matzehuels/rendertree/pkg/pipeline"
)

// renderFlags are the geometry and styling flags shared by render, layout
// and visualize. A flag only overrides the config file when it was set.
type renderFlags struct {
	width, height float64
	side          float64
	xOffset       float64
	yOffset       float64
	scale         float64
	background    string
	refresh       bool
}

func (f *renderFlags) register(cmd *cobra.Command, geometry bool) {
	d := config.Default()
	fs := cmd.Flags()
	if geometry {
		fs.Float64Var(&f.width, "width", d.Canvas.Width, "canvas width")
		fs.Float64Var(&f.height, "height", d.Canvas.Height, "canvas height")
		fs.Float64Var(&f.side, "side", d.Layout.SideLen, "side length of each node square")
		fs.Float64Var(&f.xOffset, "x-offset", d.Layout.XOffset, "horizontal gap between sibling subtrees")
		fs.Float64Var(&f.yOffset, "y-offset", d.Layout.YOffset, "vertical gap between levels")
	}
	fs.Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")
	fs.StringVar(&f.background, "background", d.Canvas.Background, `background color, "none" for transparent`)
	fs.BoolVar(&f.refresh, "refresh", false, "ignore cached results")
}

// apply copies every flag the user set onto opts.
func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	fs := cmd.Flags()
	set := func(name string, dst *float64, v float64) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("width", &opts.Width, f.width)
	set("height", &opts.Height, f.height)
	set("side", &opts.SideLen, f.side)
	set("x-offset", &opts.XOffset, f.xOffset)
	set("y-offset", &opts.YOffset, f.yOffset)
	set("scale", &opts.Scale, f.scale)
	if fs.Changed("background") {
		opts.Background = f.background
	}
	opts.Refresh = f.refresh
}

// options builds pipeline options from the config file and the flags.
func (c *CLI) options(cmd *cobra.Command, f *renderFlags) (pipeline.Options, config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, config.Config{}, err
	}
	opts := pipeline.FromConfig(cfg)
	f.apply(cmd, &opts)
	return opts, cfg, nil
}
