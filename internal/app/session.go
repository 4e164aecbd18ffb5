package app

import (
	"math"

	"github.com/philipparndt/geotrace/internal/config"
	"github.com/philipparndt/geotrace/pkg/figure"
	"github.com/philipparndt/geotrace/pkg/history"
	"github.com/philipparndt/geotrace/pkg/tikz"
)

// Session is the editing state of one figure. It is not safe for concurrent
// use; all mutations must come from a single goroutine.
type Session struct {
	Canvas Canvas

	store    *figure.Store
	history  *history.Stack[snapshot]
	options  config.Source
	prompter Prompter

	tool     Tool
	picking  []figure.PointID
	polyTemp []figure.PointID // nil unless a polygon is being built
}

// NewSession creates an empty session using the point tool
func NewSession(options config.Source, prompter Prompter, storeOpts ...figure.StoreOption) *Session {
	if options == nil {
		options = config.Static(config.Default())
	}
	return &Session{
		Canvas:   DefaultCanvas(),
		store:    figure.NewStore(storeOpts...),
		history:  newHistory(),
		options:  options,
		prompter: prompter,
		tool:     ToolPoint,
	}
}

// SetPrompter replaces the prompter used by the label tool
func (s *Session) SetPrompter(p Prompter) {
	s.prompter = p
}

// Tool returns the active tool
func (s *Session) Tool() Tool {
	return s.tool
}

// SetTool switches tools. The picking list is dropped, and an unfinished
// polygon is discarded unless the polygon tool stays active.
func (s *Session) SetTool(t Tool) {
	s.tool = t
	s.picking = nil
	if t != ToolPolygon {
		s.polyTemp = nil
	}
}

// Snap rounds a coordinate to the grid when enabled
func Snap(v float64, enabled bool) float64 {
	if !enabled {
		return v
	}
	return math.Round(v/GridStep) * GridStep
}

// Click handles a click at canvas position (x, y) with the active tool.
// A non-nil error is a hint; the session is unchanged in that case.
func (s *Session) Click(x, y float64) error {
	snap := s.options.Options().SnapToGrid
	return handlerFor(s.tool).click(s, Snap(x, snap), Snap(y, snap))
}

// FinishPolygon commits the accumulated polygon
func (s *Session) FinishPolygon() error {
	if len(s.polyTemp) < 3 {
		return ErrPolygonTooShort
	}

	s.saveHistory()
	s.store.AddShape(figure.Polygon{Points: s.polyTemp})
	s.polyTemp = nil
	s.picking = nil
	return nil
}

// CanFinishPolygon reports whether FinishPolygon would succeed
func (s *Session) CanFinishPolygon() bool {
	return s.tool == ToolPolygon && len(s.polyTemp) >= 3
}

// Undo restores the most recent snapshot, including an unfinished polygon.
// It reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	snap, ok := s.history.Pop()
	if !ok {
		return false
	}

	s.store = snap.store
	s.polyTemp = snap.polyTemp
	s.picking = nil
	return true
}

// UndoDepth returns the number of available undo steps
func (s *Session) UndoDepth() int {
	return s.history.Len()
}

// Reset clears the figure. The previous state stays undoable.
func (s *Session) Reset() {
	s.saveHistory()
	s.store.Clear()
	s.polyTemp = nil
	s.picking = nil
}

// Hover returns the point under the cursor, if any
func (s *Session) Hover(x, y float64) (figure.Point, bool) {
	return s.store.NearestPoint(x, y, HoverRadius)
}

// Store returns the live figure for read-only use
func (s *Session) Store() *figure.Store {
	return s.store
}

// View returns a detached copy of the session for rendering
func (s *Session) View() View {
	v := View{
		Tool:    s.tool,
		Canvas:  s.Canvas,
		Options: s.options.Options(),
		Figure:  s.store.Clone(),
		Picking: append([]figure.PointID(nil), s.picking...),
	}
	if s.polyTemp != nil {
		v.PolyTemp = append(make([]figure.PointID, 0, len(s.polyTemp)), s.polyTemp...)
	}
	return v
}

// ExportConfig combines the current options with the canvas size
func (s *Session) ExportConfig() tikz.Config {
	opts := s.options.Options()
	return tikz.Config{
		CanvasWidth:  s.Canvas.Width,
		CanvasHeight: s.Canvas.Height,
		Width:        opts.OutputWidth,
		LineWidth:    opts.LineWidth,
		ShowPoints:   opts.ShowPoints,
		ShowLabels:   opts.ShowLabels,
	}
}

// Export renders the current figure as TikZ
func (s *Session) Export() string {
	return tikz.Export(s.store, s.ExportConfig())
}

func (s *Session) saveHistory() {
	s.history.Push(snapshot{store: s.store, polyTemp: s.polyTemp})
}
