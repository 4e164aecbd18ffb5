package app

import (
	"github.com/philipparndt/geotrace/internal/config"
	"github.com/philipparndt/geotrace/pkg/figure"
	"github.com/philipparndt/geotrace/pkg/history"
)

const (
	ReuseRadius = 10.0 // px, click reuses an existing point
	HoverRadius = 12.0 // px, cursor feedback
	LabelRadius = 14.0 // px, label tool hit test
	GridStep    = 20.0 // px, snap grid spacing

	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
)

// Canvas is the size of the tracing surface in pixels
type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultCanvas returns the default canvas size
func DefaultCanvas() Canvas {
	return Canvas{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight}
}

// Prompter asks the user for a new point name. ok is false when cancelled.
type Prompter interface {
	PromptName(current string) (name string, ok bool)
}

// PromptFunc adapts a function to the Prompter interface
type PromptFunc func(current string) (string, bool)

// PromptName implements Prompter
func (f PromptFunc) PromptName(current string) (string, bool) {
	return f(current)
}

// snapshot is the undoable part of a session
type snapshot struct {
	store    *figure.Store
	polyTemp []figure.PointID
}

func (s snapshot) clone() snapshot {
	c := snapshot{store: s.store.Clone()}
	if s.polyTemp != nil {
		c.polyTemp = append(make([]figure.PointID, 0, len(s.polyTemp)), s.polyTemp...)
	}
	return c
}

// View is a read-only copy of everything a renderer needs
type View struct {
	Tool     Tool
	Canvas   Canvas
	Options  config.Options
	Figure   *figure.Store
	PolyTemp []figure.PointID
	Picking  []figure.PointID
}

func newHistory() *history.Stack[snapshot] {
	return history.New(history.DefaultCapacity, snapshot.clone)
}
