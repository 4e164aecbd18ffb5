// Package script replays recorded tracing sessions.
//
// A script is a YAML document:
//
//	canvas: {width: 800, height: 600}
//	events:
//	  - tool: segment
//	  - click: [120, 80]
//	  - click: [300, 80]
//	  - tool: label
//	  - click: [120, 80]
//	    name: O
//	  - tool: polygon
//	  - click: [100, 400]
//	  - click: [200, 400]
//	  - click: [150, 300]
//	  - finish
//	  - undo
//	  - reset
//
// A label click without a name behaves like a cancelled prompt.
package script

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/philipparndt/geotrace/internal/app"
	"github.com/philipparndt/geotrace/internal/config"
	"gopkg.in/yaml.v3"
)

// Script is a canvas size plus an ordered list of interaction events
type Script struct {
	Canvas app.Canvas `yaml:"canvas"`
	Events []Event    `yaml:"events"`
}

// Event is a single user action. Exactly one action field is set.
type Event struct {
	Tool   string    `yaml:"tool,omitempty"`
	Click  []float64 `yaml:"click,omitempty,flow"`
	Name   *string   `yaml:"name,omitempty"`
	Finish bool      `yaml:"finish,omitempty"`
	Undo   bool      `yaml:"undo,omitempty"`
	Reset  bool      `yaml:"reset,omitempty"`

	Line int `yaml:"-"` // source line, 0 when built in code
}

// UnmarshalYAML accepts both mappings and the bare words finish, undo and reset
func (e *Event) UnmarshalYAML(value *yaml.Node) error {
	e.Line = value.Line

	if value.Kind == yaml.ScalarNode {
		switch strings.ToLower(value.Value) {
		case "finish":
			e.Finish = true
		case "undo":
			e.Undo = true
		case "reset":
			e.Reset = true
		default:
			return fmt.Errorf("line %d: unknown action %q", value.Line, value.Value)
		}
		return nil
	}

	type plain Event
	if err := value.Decode((*plain)(e)); err != nil {
		return err
	}
	e.Line = value.Line
	return nil
}

// Validate checks that exactly one action is set and its arguments are sane
func (e Event) Validate() error {
	actions := 0
	for _, set := range []bool{e.Tool != "", e.Click != nil, e.Finish, e.Undo, e.Reset} {
		if set {
			actions++
		}
	}
	if actions != 1 {
		return fmt.Errorf("expected exactly one action, got %d", actions)
	}

	if e.Tool != "" {
		if _, err := app.ParseTool(e.Tool); err != nil {
			return err
		}
	}
	if e.Click != nil {
		if len(e.Click) != 2 {
			return fmt.Errorf("click needs [x, y], got %d values", len(e.Click))
		}
		for _, v := range e.Click {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("click coordinates must be finite, got %v", e.Click)
			}
		}
	}
	if e.Name != nil && e.Click == nil {
		return errors.New("name is only valid on a click")
	}
	return nil
}

func (e Event) String() string {
	switch {
	case e.Tool != "":
		return "tool " + e.Tool
	case e.Click != nil:
		return fmt.Sprintf("click %v", e.Click)
	case e.Finish:
		return "finish"
	case e.Undo:
		return "undo"
	case e.Reset:
		return "reset"
	}
	return "empty event"
}

// Parse decodes and validates a script
func Parse(data []byte) (*Script, error) {
	sc := &Script{}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	if sc.Canvas.Width == 0 && sc.Canvas.Height == 0 {
		sc.Canvas = app.DefaultCanvas()
	}
	if !(sc.Canvas.Width > 0) || !(sc.Canvas.Height > 0) {
		return nil, fmt.Errorf("canvas size must be positive, got %vx%v", sc.Canvas.Width, sc.Canvas.Height)
	}

	for i, ev := range sc.Events {
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("event %d (line %d): %w", i+1, ev.Line, err)
		}
	}
	return sc, nil
}

// Load reads a script from disk
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Feedback receives non-fatal output during a replay. Either field may be nil.
type Feedback struct {
	Hint func(ev Event, err error)     // rejected interaction
	Tool func(ev Event, tool app.Tool) // tool selected
}

// Apply performs one event on the session. Rejected interactions are
// returned as hint errors (see app.IsHint).
func Apply(s *app.Session, ev Event) error {
	switch {
	case ev.Tool != "":
		tool, err := app.ParseTool(ev.Tool)
		if err != nil {
			return err
		}
		s.SetTool(tool)
	case ev.Click != nil:
		if len(ev.Click) != 2 {
			return fmt.Errorf("click needs [x, y], got %d values", len(ev.Click))
		}
		s.SetPrompter(answer(ev.Name))
		defer s.SetPrompter(nil)
		return s.Click(ev.Click[0], ev.Click[1])
	case ev.Finish:
		return s.FinishPolygon()
	case ev.Undo:
		s.Undo()
	case ev.Reset:
		s.Reset()
	}
	return nil
}

// Replay applies every event in order. Hints are reported and skipped; any
// other error aborts the replay.
func Replay(s *app.Session, sc *Script, fb Feedback) error {
	s.Canvas = sc.Canvas
	for i, ev := range sc.Events {
		err := Apply(s, ev)
		if err == nil {
			if ev.Tool != "" && fb.Tool != nil {
				fb.Tool(ev, s.Tool())
			}
			continue
		}
		if app.IsHint(err) {
			if fb.Hint != nil {
				fb.Hint(ev, err)
			}
			continue
		}
		return fmt.Errorf("event %d (line %d): %w", i+1, ev.Line, err)
	}
	return nil
}

// Run replays a script into a fresh session
func Run(sc *Script, options config.Source, fb Feedback) (*app.Session, error) {
	s := app.NewSession(options, nil)
	if err := Replay(s, sc, fb); err != nil {
		return nil, err
	}
	return s, nil
}

func answer(name *string) app.Prompter {
	return app.PromptFunc(func(string) (string, bool) {
		if name == nil {
			return "", false
		}
		return *name, true
	})
}
