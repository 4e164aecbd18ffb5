package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/geotrace/internal/config"
	"github.com/philipparndt/geotrace/pkg/figure"
	"github.com/spf13/cobra"
)

var infoFlags optionFlags

var infoCmd = &cobra.Command{
	Use:   "info [script]",
	Short: "Display information about a traced figure",
	Long:  "Replay a trace script and show the canvas, shape counts and every point with its canvas and output coordinates.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	infoFlags.register(infoCmd)
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	opts, err := infoFlags.resolve(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, err := replay(filename, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := session.Store()
	cfg := session.ExportConfig()

	fmt.Println("Figure Information")
	fmt.Println("==================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Canvas:")
	fmt.Printf("  Size: %.0f x %.0f px\n", session.Canvas.Width, session.Canvas.Height)
	fmt.Printf("  Output: %.3f x %.3f cm (scale %.6f)\n\n",
		cfg.Width, session.Canvas.Height*cfg.Scale(), cfg.Scale())

	fmt.Println("Figure Statistics:")
	fmt.Printf("  Points: %d\n", store.PointCount())
	fmt.Printf("  Shapes: %d\n", store.ShapeCount())
	for kind, n := range countKinds(store) {
		if n > 0 {
			fmt.Printf("    %s: %d\n", figure.ShapeKind(kind), n)
		}
	}
	fmt.Printf("  Undo depth: %d\n\n", session.UndoDepth())

	printOptions(opts)

	points := store.Points()
	if len(points) == 0 {
		return
	}
	fmt.Println("\nPoints:")
	for _, p := range points {
		out := cfg.ToOutput(p.Position())
		fmt.Printf("  %-6s canvas (%.1f, %.1f)  output (%.3f, %.3f)\n", p.Name, p.X, p.Y, out.X, out.Y)
	}
}

// countKinds returns shape counts indexed by figure.ShapeKind
func countKinds(store *figure.Store) []int {
	counts := make([]int, figure.KindAngle+1)
	for _, s := range store.Shapes() {
		counts[s.Kind()]++
	}
	return counts
}

func printOptions(opts config.Options) {
	fmt.Println("Options:")
	fmt.Printf("  Snap to grid: %t\n", opts.SnapToGrid)
	fmt.Printf("  Show points: %t\n", opts.ShowPoints)
	fmt.Printf("  Show labels: %t\n", opts.ShowLabels)
	fmt.Printf("  Output width: %g cm\n", opts.OutputWidth)
	fmt.Printf("  Line width: %g pt\n", opts.LineWidth)
}
