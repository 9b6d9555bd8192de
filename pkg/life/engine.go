// Package life implements a sparse, incrementally bookkept engine for
// Life-like cellular automata on an unbounded plane.
//
// Only alive cells and their dead Moore neighbours are stored. Each record
// keeps a running count of its live neighbours, so a generation costs time
// proportional to the active frontier rather than to any grid area.
package life

import (
	"iter"

	"biglife/pkg/core"
)

// StepResult reports the outcome of one Step call.
type StepResult struct {
	// Advanced is false when no cell changed state (a fixed point).
	Advanced bool
	// Dirty is the number of cells whose state flipped.
	Dirty int
	// Extinct is true when no live cells remain after the step.
	Extinct bool
	// Generation is the engine generation after the step.
	Generation int
}

// Engine owns the cell store, the active rule and the derived aggregates.
// It is not safe for concurrent use.
type Engine struct {
	cfg      Config
	rule     Rule
	ruleName string

	cells *store
	live  int
	gen   int

	lastDirty  int
	dirty      []int
	candidates []Coord

	rng *core.RNG
}

// New returns an empty engine configured from cfg.
func New(cfg Config) (*Engine, error) {
	if cfg.Rule == "" {
		cfg.Rule = DefaultPreset
	}
	name, rule, err := LookupRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Engine{
		cfg:      cfg,
		rule:     rule,
		ruleName: name,
		cells:    newStore(),
		rng:      core.NewRNG(cfg.Seed),
	}, nil
}

// Rule returns the active rule.
func (e *Engine) Rule() Rule { return e.rule }

// RuleName returns the preset name of the active rule, or its B/S notation
// when it matches no preset.
func (e *Engine) RuleName() string { return e.ruleName }

// SetRule replaces the active rule. Neighbour counts are unaffected; only
// future evaluation changes. On error the previous rule stays active.
func (e *Engine) SetRule(birth, survive []int) error {
	r, err := NewRule(birth, survive)
	if err != nil {
		return err
	}
	e.rule = r
	e.ruleName = r.String()
	for _, name := range PresetNames() {
		if presets[name] == r {
			e.ruleName = name
			break
		}
	}
	return nil
}

// SetPreset activates a named preset.
func (e *Engine) SetPreset(name string) error {
	r, err := Preset(name)
	if err != nil {
		return err
	}
	e.rule, e.ruleName = r, name
	return nil
}

// Step advances exactly one generation.
func (e *Engine) Step() StepResult {
	e.candidates = e.candidates[:0]
	e.dirty = e.evaluate(e.dirty[:0])
	e.lastDirty = len(e.dirty)
	if len(e.dirty) == 0 {
		return StepResult{Extinct: e.live == 0, Generation: e.gen}
	}

	for _, i := range e.dirty {
		c := &e.cells.cells[i]
		if c.pending == c.alive {
			panic(violation("commit", c.pos, "dirty cell has no pending change"))
		}
		if c.pending {
			e.birth(i)
		} else {
			e.death(i)
		}
	}
	e.cleanup()
	e.gen++

	return StepResult{
		Advanced:   true,
		Dirty:      len(e.dirty),
		Extinct:    e.live == 0,
		Generation: e.gen,
	}
}

// Toggle flips the cell at c and returns its new state.
func (e *Engine) Toggle(c Coord) bool {
	e.candidates = e.candidates[:0]
	i, ok := e.cells.lookup(c)
	if !ok {
		i = e.cells.insert(c, false, 0)
	}
	alive := !e.cells.cells[i].alive
	if alive {
		e.birth(i)
	} else {
		e.death(i)
	}
	e.cleanup()
	return alive
}

// SeedRandom toggles count coordinates drawn uniformly from bounds. Repeated
// draws of the same coordinate toggle it again.
func (e *Engine) SeedRandom(bounds Rect, count int) {
	if bounds.Empty() {
		return
	}
	for n := 0; n < count; n++ {
		x := e.rng.IntRange(bounds.Min.X, bounds.Max.X)
		y := e.rng.IntRange(bounds.Min.Y, bounds.Max.Y)
		e.Toggle(Coord{X: x, Y: y})
	}
}

// Clear drops every cell and resets the generation counter. The rule and the
// seeding RNG state are kept.
func (e *Engine) Clear() {
	e.cells.reset()
	e.live = 0
	e.gen = 0
	e.lastDirty = 0
	e.dirty = e.dirty[:0]
	e.candidates = e.candidates[:0]
}

// birth marks record i alive and credits its neighbours, creating
// placeholders for absent ones.
func (e *Engine) birth(i int) {
	c := &e.cells.cells[i]
	c.alive = true
	c.pending = true
	pos := c.pos
	for _, d := range moore {
		n := pos.Add(d)
		j, ok := e.cells.lookup(n)
		if !ok {
			e.cells.insert(n, false, 1)
			continue
		}
		nc := &e.cells.cells[j]
		if nc.neighbors >= MaxNeighbors {
			panic(violation("birth", n, "neighbour count overflow"))
		}
		nc.neighbors++
	}
	e.live++
}

// death marks record i dead and debits its neighbours, collecting those left
// dead with no live neighbours as removal candidates.
func (e *Engine) death(i int) {
	c := &e.cells.cells[i]
	c.alive = false
	c.pending = false
	pos := c.pos
	if c.neighbors == 0 {
		e.candidates = append(e.candidates, pos)
	}
	for _, d := range moore {
		n := pos.Add(d)
		j, ok := e.cells.lookup(n)
		if !ok {
			panic(violation("death", n, "neighbour of a live cell is not tracked"))
		}
		nc := &e.cells.cells[j]
		if nc.neighbors == 0 {
			panic(violation("death", n, "neighbour count underflow"))
		}
		nc.neighbors--
		if !nc.alive && nc.neighbors == 0 {
			e.candidates = append(e.candidates, n)
		}
	}
	e.live--
}

// cleanup removes candidates that are still dead with no live neighbours.
// A candidate may have been revived after it was flagged, and may appear
// more than once.
func (e *Engine) cleanup() {
	for _, pos := range e.candidates {
		i, ok := e.cells.lookup(pos)
		if !ok {
			continue
		}
		c := e.cells.cells[i]
		if !c.alive && c.neighbors == 0 {
			e.cells.remove(pos)
		}
	}
	e.candidates = e.candidates[:0]
}

// Cells yields every tracked record with its current state, alive cells and
// the dead frontier around them alike.
func (e *Engine) Cells() iter.Seq2[Coord, bool] {
	return func(yield func(Coord, bool) bool) {
		for i := 0; i < e.cells.len(); i++ {
			c := e.cells.cells[i]
			if !yield(c.pos, c.alive) {
				return
			}
		}
	}
}

// AliveCells yields the coordinates of every live cell.
func (e *Engine) AliveCells() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for i := 0; i < e.cells.len(); i++ {
			c := e.cells.cells[i]
			if c.alive && !yield(c.pos) {
				return
			}
		}
	}
}

// Alive reports whether the cell at c is alive.
func (e *Engine) Alive(c Coord) bool {
	i, ok := e.cells.lookup(c)
	return ok && e.cells.cells[i].alive
}

// NeighborCount returns the bookkept live neighbour count at c and whether c
// is tracked at all.
func (e *Engine) NeighborCount(c Coord) (int, bool) {
	i, ok := e.cells.lookup(c)
	if !ok {
		return 0, false
	}
	return int(e.cells.cells[i].neighbors), true
}

// AliveBounds returns the smallest rectangle holding every live cell.
func (e *Engine) AliveBounds() (Rect, bool) {
	var r Rect
	found := false
	for pos := range e.AliveCells() {
		if !found {
			r = Rect{Min: pos, Max: pos.Add(Coord{X: 1, Y: 1})}
			found = true
			continue
		}
		r.Min.X = min(r.Min.X, pos.X)
		r.Min.Y = min(r.Min.Y, pos.Y)
		r.Max.X = max(r.Max.X, pos.X+1)
		r.Max.Y = max(r.Max.Y, pos.Y+1)
	}
	return r, found
}

// LiveCellCount returns the number of live cells.
func (e *Engine) LiveCellCount() int { return e.live }

// TrackedCellCount returns the number of stored records, live and frontier.
func (e *Engine) TrackedCellCount() int { return e.cells.len() }

// Generation returns the number of generations that changed state since the
// engine was created or cleared.
func (e *Engine) Generation() int { return e.gen }

// LastDirty returns how many cells flipped in the most recent Step.
func (e *Engine) LastDirty() int { return e.lastDirty }

// Status is a point-in-time summary for drivers.
type Status struct {
	Rule       string
	Notation   string
	Generation int
	Live       int
	Tracked    int
	Updates    int
}

// Status summarises the engine state.
func (e *Engine) Status() Status {
	return Status{
		Rule:       e.ruleName,
		Notation:   e.rule.String(),
		Generation: e.gen,
		Live:       e.live,
		Tracked:    e.cells.len(),
		Updates:    e.lastDirty,
	}
}
