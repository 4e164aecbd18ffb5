package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/geotrace/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "geotrace",
	Short: "Trace geometric figures and export them as TikZ",
	Long: `geotrace replays a trace script of tool selections and canvas clicks
into a figure of points, segments, polygons, circles and angles, then
exports the figure as a TikZ picture ready to paste into a LaTeX document.`,
	Version: version.GetFullVersion(),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("geotrace %s\n", version.GetFullVersion())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Options file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print a usage hint for every tool selected by the script")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
