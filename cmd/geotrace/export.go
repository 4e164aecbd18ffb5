package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/geotrace/internal/app"
	"github.com/philipparndt/geotrace/pkg/tikz"
	"github.com/spf13/cobra"
)

var (
	exportFlags  optionFlags
	exportPretty bool
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [script]",
	Short: "Replay a trace script and print the figure as TikZ",
	Long: `Replay a trace script and write the resulting figure as a TikZ picture.
Without -o the picture is printed to stdout. A bare -o writes to
` + tikz.DefaultFilename + `; use -o=FILE to choose another name.`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportFlags.register(exportCmd)
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", false, "Strip trailing whitespace and collapse blank lines")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
	exportCmd.Flags().Lookup("output").NoOptDefVal = tikz.DefaultFilename
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	opts, err := exportFlags.resolve(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, err := replay(args[0], opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if exportOutput == "" {
		fmt.Println(render(session, exportPretty))
		return
	}

	if err := writeExport(exportOutput, session, exportPretty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d points, %d shapes)\n",
		exportOutput, session.Store().PointCount(), session.Store().ShapeCount())
}

func render(session *app.Session, pretty bool) string {
	text := session.Export()
	if pretty {
		text = tikz.Prettify(text)
	}
	return text
}

func writeExport(path string, session *app.Session, pretty bool) error {
	if err := os.WriteFile(path, []byte(render(session, pretty)+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
