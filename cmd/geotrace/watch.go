package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/geotrace/pkg/tikz"
	"github.com/philipparndt/geotrace/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	watchFlags    optionFlags
	watchPretty   bool
	watchOutput   string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [script]",
	Short: "Re-export the figure whenever the script or options file changes",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	watchFlags.register(watchCmd)
	watchCmd.Flags().BoolVar(&watchPretty, "pretty", false, "Strip trailing whitespace and collapse blank lines")
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", tikz.DefaultFilename, "Output TikZ file")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "Delay before reacting to a change")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	scriptPath := args[0]

	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	fw.OnError(func(err error) {
		fmt.Fprintf(os.Stderr, "Warning: watcher: %v\n", err)
	})

	files := []string{scriptPath}
	if configPath != "" {
		files = append(files, configPath)
	}

	// Callbacks fire on timer goroutines; the loop below is the only place
	// that builds a session.
	changes := make(chan string, 1)
	err = fw.Watch(files, func(path string) {
		select {
		case changes <- path:
		default:
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fw.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rebuild(cmd, scriptPath)
	fmt.Fprintf(os.Stderr, "Watching %d file(s), press Ctrl+C to stop\n", len(files))

	for {
		select {
		case <-ctx.Done():
			return
		case path := <-changes:
			fmt.Fprintf(os.Stderr, "Changed: %s\n", path)
			rebuild(cmd, scriptPath)
		}
	}
}

// rebuild reports failures and keeps the last good output in place
func rebuild(cmd *cobra.Command, scriptPath string) {
	opts, err := watchFlags.resolve(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	session, err := replay(scriptPath, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if err := writeExport(watchOutput, session, watchPretty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d points, %d shapes)\n",
		watchOutput, session.Store().PointCount(), session.Store().ShapeCount())
}
