package main

import (
	"fmt"
	"image"
	"os"

	"github.com/philipparndt/geotrace/internal/preview"
	"github.com/spf13/cobra"
)

var (
	previewFlags      optionFlags
	previewBackground string
	previewOpacity    float64
	previewOutput     string
)

var previewCmd = &cobra.Command{
	Use:   "preview [script]",
	Short: "Render the traced figure to a PNG image",
	Long:  "Replay a trace script and rasterize the canvas, optionally over a reference image, to PNG.",
	Args:  cobra.ExactArgs(1),
	Run:   runPreview,
}

func init() {
	previewFlags.register(previewCmd)
	previewCmd.Flags().StringVarP(&previewBackground, "background", "b", "", "Reference image (PNG, JPEG, BMP or WebP)")
	previewCmd.Flags().Float64Var(&previewOpacity, "opacity", 0.5, "Background opacity between 0 and 1")
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "geotrace_preview.png", "Output PNG file")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) {
	if previewOpacity < 0 || previewOpacity > 1 {
		fmt.Fprintf(os.Stderr, "Error: opacity must be between 0 and 1, got %v\n", previewOpacity)
		os.Exit(1)
	}

	opts, err := previewFlags.resolve(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, err := replay(args[0], opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var background image.Image
	if previewBackground != "" {
		background, err = preview.LoadBackground(previewBackground)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	out, err := os.Create(previewOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", previewOutput, err)
		os.Exit(1)
	}
	defer out.Close()

	err = preview.WritePNG(out, session.View(), preview.Options{
		Background: background,
		Opacity:    previewOpacity,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding %s: %v\n", previewOutput, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%.0fx%.0f)\n", previewOutput, session.Canvas.Width, session.Canvas.Height)
}
