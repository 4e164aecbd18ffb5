package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/geotrace/internal/app"
	"github.com/philipparndt/geotrace/internal/config"
	"github.com/philipparndt/geotrace/internal/script"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

// optionFlags mirror config.Options; they override the options file only
// when given on the command line
type optionFlags struct {
	snap      bool
	points    bool
	labels    bool
	width     float64
	lineWidth float64
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.snap, "snap", false, "Snap clicks to the 20px grid")
	cmd.Flags().BoolVar(&f.points, "points", false, "Draw a dot at every point")
	cmd.Flags().BoolVar(&f.labels, "labels", false, "Label every point with its name")
	cmd.Flags().Float64Var(&f.width, "width", config.DefaultOutputWidth, "Output width in cm")
	cmd.Flags().Float64Var(&f.lineWidth, "line-width", config.DefaultLineWidth, "Line width in pt")
}

// resolve loads the options file, if any, and applies changed flags on top
func (f *optionFlags) resolve(cmd *cobra.Command) (config.Options, error) {
	opts := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("snap") {
		opts.SnapToGrid = f.snap
	}
	if flags.Changed("points") {
		opts.ShowPoints = f.points
	}
	if flags.Changed("labels") {
		opts.ShowLabels = f.labels
	}
	if flags.Changed("width") {
		opts.OutputWidth = f.width
	}
	if flags.Changed("line-width") {
		opts.LineWidth = f.lineWidth
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid options: %w", err)
	}
	return opts, nil
}

// replay loads a script and runs it with the given options
func replay(path string, opts config.Options) (*app.Session, error) {
	sc, err := script.Load(path)
	if err != nil {
		return nil, err
	}
	return script.Run(sc, config.Static(opts), feedback)
}

var feedback = script.Feedback{
	Hint: func(ev script.Event, err error) {
		fmt.Fprintf(os.Stderr, "Hint: line %d (%s): %v\n", ev.Line, ev, err)
	},
	Tool: func(ev script.Event, tool app.Tool) {
		if verbose {
			fmt.Fprintf(os.Stderr, "Hint: line %d (%s): %s\n", ev.Line, ev, tool.Hint())
		}
	},
}
