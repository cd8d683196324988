package headless

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

// Script is a recorded sequence of input batches.
//
//	seed: 42
//	surface: terminal
//	steps:
//	  - tile: 0
//	  - click: [13, 9]
//	  - idle: 30
//	  - close: true
type Script struct {
	Seed    int64        `yaml:"seed"`
	Surface string       `yaml:"surface"` // "terminal" (default) or "window"
	Steps   []ScriptStep `yaml:"steps"`
}

// ScriptStep is one poll worth of input. Idle inserts that many empty polls.
type ScriptStep struct {
	Click []int `yaml:"click"`
	Tile  *int  `yaml:"tile"`
	Idle  int   `yaml:"idle"`
	Close bool  `yaml:"close"`
}

// LoadScript reads a script from a YAML file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("headless: cannot read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes and checks a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("headless: cannot parse script: %w", err)
	}
	switch s.Surface {
	case "":
		s.Surface = "terminal"
	case "window", "terminal":
	default:
		return Script{}, fmt.Errorf("headless: unknown surface %q", s.Surface)
	}
	for i, st := range s.Steps {
		if st.Click != nil && len(st.Click) != 2 {
			return Script{}, fmt.Errorf("headless: step %d: click needs [x, y]", i)
		}
		if st.Tile != nil && (*st.Tile < 0 || *st.Tile >= memory.TileCount) {
			return Script{}, fmt.Errorf("headless: step %d: tile %d out of range", i, *st.Tile)
		}
		if st.Idle < 0 {
			return Script{}, fmt.Errorf("headless: step %d: idle must not be negative", i)
		}
	}
	return s, nil
}

// ScriptSource replays a script as an EventSource. Once the steps run out
// every poll yields a close event.
type ScriptSource struct {
	layout memory.Layout
	steps  []ScriptStep
	pos    int
	idle   int
}

// NewScriptSource creates a source resolving tile steps against layout.
func NewScriptSource(s Script, layout memory.Layout) *ScriptSource {
	return &ScriptSource{layout: layout, steps: s.Steps}
}

// Poll returns the next batch of events.
func (s *ScriptSource) Poll() []core.Event {
	if s.idle > 0 {
		s.idle--
		return nil
	}
	if s.pos >= len(s.steps) {
		return []core.Event{core.CloseEvent()}
	}

	st := s.steps[s.pos]
	s.pos++

	var events []core.Event
	if len(st.Click) == 2 {
		events = append(events, core.PointerReleased(st.Click[0], st.Click[1]))
	}
	if st.Tile != nil {
		x, y := s.layout.TileRect(*st.Tile/memory.Cols, *st.Tile%memory.Cols).Center()
		events = append(events, core.PointerReleased(x, y))
	}
	if st.Close {
		events = append(events, core.CloseEvent())
	}
	if st.Idle > 0 {
		s.idle = st.Idle - 1
	}
	return events
}

// Done reports whether every step has been delivered.
func (s *ScriptSource) Done() bool {
	return s.pos >= len(s.steps) && s.idle == 0
}
