package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newTestCommand(f *optionFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	f.register(cmd)
	return cmd
}

func withConfig(t *testing.T, path string) {
	t.Helper()
	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })
}

func TestResolveDefaults(t *testing.T) {
	withConfig(t, "")
	var f optionFlags
	cmd := newTestCommand(&f)
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	opts, err := f.resolve(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if opts.SnapToGrid || opts.ShowPoints || opts.ShowLabels {
		t.Errorf("Default toggles failed: expected all off, got %+v", opts)
	}
	if opts.OutputWidth != 10 || opts.LineWidth != 0.8 {
		t.Errorf("Default widths failed: expected 10/0.8, got %v/%v", opts.OutputWidth, opts.LineWidth)
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	content := "snap_to_grid = true\nshow_labels = true\noutput_width = 12.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	withConfig(t, path)

	var f optionFlags
	cmd := newTestCommand(&f)
	if err := cmd.ParseFlags([]string{"--snap=false", "--line-width", "1.5"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	opts, err := f.resolve(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if opts.SnapToGrid {
		t.Errorf("Snap override failed: expected false, got true")
	}
	if !opts.ShowLabels {
		t.Errorf("File value failed: expected show_labels true")
	}
	if opts.OutputWidth != 12 {
		t.Errorf("File width failed: expected 12, got %v", opts.OutputWidth)
	}
	if opts.LineWidth != 1.5 {
		t.Errorf("Line width override failed: expected 1.5, got %v", opts.LineWidth)
	}
}

func TestResolveRejectsInvalidWidth(t *testing.T) {
	withConfig(t, "")
	var f optionFlags
	cmd := newTestCommand(&f)
	if err := cmd.ParseFlags([]string{"--width", "0"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if _, err := f.resolve(cmd); err == nil {
		t.Errorf("Expected error for zero output width")
	}
}

func TestReplayAndWriteExport(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "figure.yaml")
	content := `
events:
  - tool: segment
  - click: [0, 0]
  - click: [800, 600]
  - tool: label
  - click: [400, 300]
`
	if err := os.WriteFile(scriptPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	withConfig(t, "")
	var f optionFlags
	cmd := newTestCommand(&f)
	if err := cmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	opts, err := f.resolve(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	session, err := replay(scriptPath, opts)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if session.Store().ShapeCount() != 1 {
		t.Errorf("Shape count failed: expected 1, got %d", session.Store().ShapeCount())
	}

	out := filepath.Join(dir, "out.tex")
	if err := writeExport(out, session, true); err != nil {
		t.Fatalf("writeExport failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, `\draw (A) -- (B);`) {
		t.Errorf("Export content failed: segment missing in\n%s", text)
	}
	if !strings.HasSuffix(text, "\\end{tikzpicture}\n") {
		t.Errorf("Export ending failed: got\n%s", text)
	}
}
