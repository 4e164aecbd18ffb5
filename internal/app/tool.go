package app

import (
	"fmt"
	"strings"

	"github.com/philipparndt/geotrace/pkg/figure"
)

// Tool selects how canvas clicks are interpreted
type Tool int

const (
	ToolPoint Tool = iota
	ToolSegment
	ToolPolygon
	ToolCircle
	ToolAngle
	ToolLabel
)

var toolNames = map[Tool]string{
	ToolPoint:   "point",
	ToolSegment: "segment",
	ToolPolygon: "polygon",
	ToolCircle:  "circle",
	ToolAngle:   "angle",
	ToolLabel:   "label",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool converts a tool name into a Tool
func ParseTool(name string) (Tool, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for t, s := range toolNames {
		if s == n {
			return t, nil
		}
	}
	return ToolPoint, fmt.Errorf("unknown tool %q", name)
}

// Hint returns a short usage hint for the tool
func (t Tool) Hint() string {
	switch t {
	case ToolPoint:
		return "Click to add a point. Clicking near an existing point reuses it."
	case ToolSegment:
		return "Pick 2 points to draw a segment."
	case ToolPolygon:
		return "Click the vertices, then finish the polygon (at least 3 points)."
	case ToolCircle:
		return "Pick the center, then a point on the circle."
	case ToolAngle:
		return "Pick 3 points A, B, C (angle at B)."
	case ToolLabel:
		return "Click a point to rename it."
	}
	return ""
}

// toolHandler is the per-tool click state machine
type toolHandler interface {
	click(s *Session, x, y float64) error
}

func handlerFor(t Tool) toolHandler {
	switch t {
	case ToolSegment:
		return pickTool{arity: 2, commit: commitSegment}
	case ToolCircle:
		return pickTool{arity: 2, commit: commitCircle}
	case ToolAngle:
		return pickTool{arity: 3, commit: commitAngle}
	case ToolPolygon:
		return polygonTool{}
	case ToolLabel:
		return labelTool{}
	default:
		return pointTool{}
	}
}

// pointTool adds (or reuses) a point on every click
type pointTool struct{}

func (pointTool) click(s *Session, x, y float64) error {
	s.saveHistory()
	s.store.AddPoint(x, y, ReuseRadius)
	return nil
}

// labelTool renames the point under the cursor
type labelTool struct{}

func (labelTool) click(s *Session, x, y float64) error {
	p, ok := s.store.NearestPoint(x, y, LabelRadius)
	if !ok {
		return ErrNoPointHit
	}
	if s.prompter == nil {
		return ErrRenameCancelled
	}

	name, ok := s.prompter.PromptName(p.Name)
	if !ok {
		return ErrRenameCancelled
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	s.saveHistory()
	s.store.RenamePoint(p.ID, name)
	return nil
}

// pickTool collects a fixed number of points and commits a shape
type pickTool struct {
	arity  int
	commit func(ids []figure.PointID) figure.Shape
}

func (t pickTool) click(s *Session, x, y float64) error {
	id, _ := s.store.AddPoint(x, y, ReuseRadius)
	s.picking = append(s.picking, id)

	if len(s.picking) < t.arity {
		return nil
	}

	s.saveHistory()
	s.store.AddShape(t.commit(s.picking))
	s.picking = nil
	return nil
}

func commitSegment(ids []figure.PointID) figure.Shape {
	return figure.Segment{A: ids[0], B: ids[1]}
}

func commitCircle(ids []figure.PointID) figure.Shape {
	return figure.Circle{Center: ids[0], On: ids[1]}
}

func commitAngle(ids []figure.PointID) figure.Shape {
	return figure.Angle{A: ids[0], B: ids[1], C: ids[2]}
}

// polygonTool accumulates vertices until the polygon is finished.
// Vertex clicks take no snapshot so one undo removes the whole polygon.
type polygonTool struct{}

func (polygonTool) click(s *Session, x, y float64) error {
	id, _ := s.store.AddPoint(x, y, ReuseRadius)
	if s.polyTemp == nil {
		s.polyTemp = make([]figure.PointID, 0, 4)
	}
	s.polyTemp = append(s.polyTemp, id)
	return nil
}
