package app

import (
	"fmt"
	"slices"

	"biglife/internal/core"
	"biglife/pkg/life"
)

// maxStepsPerFrame caps the generations a single frame may run.
const maxStepsPerFrame = 8

// Session ties an engine to a viewport and a pacing clock. Viewers translate
// their input events into Session calls and draw from its engine.
type Session struct {
	engine *life.Engine
	view   core.Viewport
	pace   *core.FixedStep

	paused bool
	single bool
	state  string
}

// NewSession builds a paused session for a screen of the given size.
func NewSession(cfg *Config, screen core.Size) (*Session, error) {
	engine, err := life.New(cfg.EngineConfig())
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	s := &Session{
		engine: engine,
		view:   core.Viewport{Screen: screen, CellSize: cfg.CellSize, Gap: cfg.Gap},
		pace:   core.NewFixedStep(cfg.Rate),
		paused: true,
		state:  "paused",
	}
	if cfg.Random {
		s.SeedVisible()
	}
	return s, nil
}

// Engine exposes the simulation for drawing.
func (s *Session) Engine() *life.Engine { return s.engine }

// Viewport returns the current view.
func (s *Session) Viewport() core.Viewport { return s.view }

// Resize updates the screen dimensions.
func (s *Session) Resize(screen core.Size) { s.view.Screen = screen }

// Paused reports whether generations are on hold.
func (s *Session) Paused() bool { return s.paused }

// State describes why the session is or is not running.
func (s *Session) State() string { return s.state }

// TogglePause starts or stops continuous stepping.
func (s *Session) TogglePause() {
	if s.paused {
		s.resume()
		return
	}
	s.paused = true
	s.state = "paused"
}

// StepOnce runs exactly one generation on the next Tick and pauses again.
func (s *Session) StepOnce() {
	s.single = true
	s.resume()
}

func (s *Session) resume() {
	s.paused = false
	s.state = "running"
	s.pace.Reset()
}

// Tick advances the generations that came due and returns how many ran.
// Stepping pauses on a fixed point or when the population dies out.
func (s *Session) Tick() int {
	if s.paused {
		return 0
	}
	due := 1
	if !s.single {
		due = s.pace.Due(maxStepsPerFrame)
	}
	ran := 0
	for i := 0; i < due; i++ {
		res := s.engine.Step()
		if res.Advanced {
			ran++
		}
		if res.Extinct {
			s.halt("extinct")
			return ran
		}
		if !res.Advanced {
			s.halt("stable")
			return ran
		}
	}
	if s.single {
		s.single = false
		s.halt("paused")
	}
	return ran
}

func (s *Session) halt(state string) {
	s.paused = true
	s.single = false
	s.state = state
}

// ToggleAt flips the cell under a screen pixel and returns its new state.
func (s *Session) ToggleAt(px, py int) bool {
	alive := s.engine.Toggle(s.view.CellAt(px, py))
	if s.paused {
		s.state = "paused"
	}
	return alive
}

// SeedVisible issues one random toggle per visible cell slot.
func (s *Session) SeedVisible() {
	r := s.view.Rect()
	s.engine.SeedRandom(r, r.Dx()*r.Dy())
}

// Clear empties the plane and pauses.
func (s *Session) Clear() {
	s.engine.Clear()
	s.halt("paused")
}

// Pan moves the view in steps of a tenth of the screen.
func (s *Session) Pan(dx, dy int) { s.view.Pan(dx, dy) }

// Zoom changes the cell size.
func (s *Session) Zoom(delta int) { s.view.Zoom(delta) }

// Faster raises the generation rate by 20%.
func (s *Session) Faster() { s.pace.Scale(1.2) }

// Slower lowers the generation rate by 20%.
func (s *Session) Slower() { s.pace.Scale(1 / 1.2) }

// CycleRule switches to the next or previous preset in name order.
func (s *Session) CycleRule(delta int) error {
	names := life.PresetNames()
	if len(names) == 0 {
		return nil
	}
	i := slices.Index(names, s.engine.RuleName())
	if i < 0 {
		i = 0
		if delta > 0 {
			delta--
		}
	}
	i = ((i+delta)%len(names) + len(names)) % len(names)
	return s.engine.SetPreset(names[i])
}

// Status builds the snapshot shown by the HUD and the terminal status line.
func (s *Session) Status() core.ParameterSnapshot {
	st := s.engine.Status()
	c := s.view.Center
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.StringParam("rule", "", st.Rule+" ("+st.Notation+")"),
				core.StringParam("state", "", s.state),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", st.Generation),
				core.FloatParam("rate", "Gen/s", s.pace.Rate()),
				core.IntParam("updates", "Updates", st.Updates),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.IntParam("live", "Live Cells", st.Live),
				core.IntParam("tracked", "Eval List", st.Tracked),
				core.StringParam("center", "Center", fmt.Sprintf("%d,%d", c.X, c.Y)),
			},
		},
	}}
}
