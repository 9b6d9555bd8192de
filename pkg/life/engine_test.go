package life

import (
	"errors"
	"maps"
	"slices"
	"testing"
)

func newEngine(t *testing.T, rule string) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Rule = rule
	cfg.ParallelThreshold = 0
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%q): %v", rule, err)
	}
	return e
}

func place(e *Engine, cells ...Coord) {
	for _, c := range cells {
		e.Toggle(c)
	}
}

func mustHold(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.CheckInvariants(); err != nil {
		t.Fatalf("invariants broken: %v", err)
	}
}

func aliveSet(e *Engine) map[Coord]bool {
	set := map[Coord]bool{}
	for c := range e.AliveCells() {
		set[c] = true
	}
	return set
}

type record struct {
	alive     bool
	neighbors int
}

func snapshot(e *Engine) map[Coord]record {
	snap := map[Coord]record{}
	for c, alive := range e.Cells() {
		n, _ := e.NeighborCount(c)
		snap[c] = record{alive: alive, neighbors: n}
	}
	return snap
}

func expectAlive(t *testing.T, e *Engine, want ...Coord) {
	t.Helper()
	got := aliveSet(e)
	if len(got) != len(want) {
		t.Fatalf("alive cells %v, expected %v", slices.Collect(maps.Keys(got)), want)
	}
	for _, c := range want {
		if !got[c] {
			t.Fatalf("cell %v dead, expected alive (alive set %v)", c, slices.Collect(maps.Keys(got)))
		}
	}
}

func TestToggleCreatesFrontier(t *testing.T) {
	e := newEngine(t, DefaultPreset)
	if !e.Toggle(Coord{}) {
		t.Fatal("toggle of absent cell should report alive")
	}
	mustHold(t, e)
	if got := e.LiveCellCount(); got != 1 {
		t.Fatalf("live count %d, expected 1", got)
	}
	if got := e.TrackedCellCount(); got != 9 {
		t.Fatalf("tracked count %d, expected 9", got)
	}
	if n, ok := e.NeighborCount(Coord{X: 1, Y: 1}); !ok || n != 1 {
		t.Fatalf("neighbour (1,1) count=%d tracked=%v, expected 1 true", n, ok)
	}
	if n, _ := e.NeighborCount(Coord{}); n != 0 {
		t.Fatalf("cell must not count itself, got %d", n)
	}

	if e.Toggle(Coord{}) {
		t.Fatal("second toggle should report dead")
	}
	mustHold(t, e)
	if e.TrackedCellCount() != 0 || e.LiveCellCount() != 0 {
		t.Fatalf("store not empty after undo: tracked=%d live=%d", e.TrackedCellCount(), e.LiveCellCount())
	}
}

func TestToggleRoundTrip(t *testing.T) {
	e := newEngine(t, DefaultPreset)
	place(e, Coord{0, 0}, Coord{1, 0}, Coord{2, 1}, Coord{5, 5})
	for _, c := range []Coord{{1, 1}, {0, 0}, {3, 0}, {-4, 9}, {5, 5}} {
		before := snapshot(e)
		live := e.LiveCellCount()
		e.Toggle(c)
		mustHold(t, e)
		e.Toggle(c)
		mustHold(t, e)
		if !maps.Equal(before, snapshot(e)) {
			t.Fatalf("double toggle of %v changed the store", c)
		}
		if e.LiveCellCount() != live {
			t.Fatalf("double toggle of %v changed live count %d -> %d", c, live, e.LiveCellCount())
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	e := newEngine(t, DefaultPreset)
	block := []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	place(e, block...)

	res := e.Step()
	if res.Advanced {
		t.Fatalf("block should be a fixed point, %d cells changed", res.Dirty)
	}
	if res.Extinct {
		t.Fatal("block is not extinct")
	}
	if e.Generation() != 0 {
		t.Fatalf("generation advanced on a fixed point: %d", e.Generation())
	}
	mustHold(t, e)
	expectAlive(t, e, block...)
}

func TestBlinkerOscillation(t *testing.T) {
	e := newEngine(t, DefaultPreset)
	place(e, Coord{-1, 0}, Coord{0, 0}, Coord{1, 0})

	res := e.Step()
	if !res.Advanced || res.Dirty != 4 {
		t.Fatalf("first step advanced=%v dirty=%d, expected true 4", res.Advanced, res.Dirty)
	}
	mustHold(t, e)
	expectAlive(t, e, Coord{0, -1}, Coord{0, 0}, Coord{0, 1})
	if got := e.LiveCellCount(); got != 3 {
		t.Fatalf("live count %d after first step, expected 3", got)
	}

	e.Step()
	mustHold(t, e)
	expectAlive(t, e, Coord{-1, 0}, Coord{0, 0}, Coord{1, 0})
	if got := e.LiveCellCount(); got != 3 {
		t.Fatalf("live count %d after second step, expected 3", got)
	}
	if got := e.Generation(); got != 2 {
		t.Fatalf("generation %d, expected 2", got)
	}
}

func TestGliderTranslates(t *testing.T) {
	e := newEngine(t, DefaultPreset)
	glider := []Coord{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	place(e, glider...)

	for gen := 0; gen < 8; gen++ {
		e.Step()
		mustHold(t, e)
	}
	moved := make([]Coord, len(glider))
	for i, c := range glider {
		moved[i] = c.Add(Coord{X: 2, Y: 2})
	}
	expectAlive(t, e, moved...)
	if got := e.TrackedCellCount(); got > 5+len(moved)*8 {
		t.Fatalf("frontier leaked: %d tracked cells", got)
	}
}

func TestSingleCellExtinction(t *testing.T) {
	e := newEngine(t, DefaultPreset)
	e.Toggle(Coord{X: 7, Y: -3})

	res := e.Step()
	if !res.Advanced || !res.Extinct {
		t.Fatalf("advanced=%v extinct=%v, expected both", res.Advanced, res.Extinct)
	}
	if got := e.LiveCellCount(); got != 0 {
		t.Fatalf("live count %d, expected 0", got)
	}
	if got := e.TrackedCellCount(); got != 0 {
		t.Fatalf("store holds %d records after extinction", got)
	}
	mustHold(t, e)

	res = e.Step()
	if res.Advanced || !res.Extinct {
		t.Fatalf("empty step advanced=%v extinct=%v", res.Advanced, res.Extinct)
	}
}

func TestRuleSensitivity(t *testing.T) {
	row := []Coord{{-1, 0}, {0, 0}, {1, 0}}

	classic := newEngine(t, DefaultPreset)
	place(classic, row...)
	classic.Step()

	seeds := newEngine(t, DefaultPreset)
	place(seeds, row...)
	if err := seeds.SetRule([]int{2}, nil); err != nil {
		t.Fatalf("SetRule: %v", err)
	}
	if got := seeds.RuleName(); got != "Seeds" {
		t.Fatalf("rule name %q, expected Seeds", got)
	}
	seeds.Step()
	mustHold(t, seeds)

	if maps.Equal(aliveSet(classic), aliveSet(seeds)) {
		t.Fatal("different rules produced the same generation")
	}
	// Seeds has no survivors, so the whole row dies and only births remain.
	for _, c := range row {
		if seeds.Alive(c) {
			t.Fatalf("cell %v survived under an empty survive set", c)
		}
	}
	expectAlive(t, seeds, Coord{-1, -1}, Coord{1, -1}, Coord{-1, 1}, Coord{1, 1})
}

func TestSetRuleRejectsOutOfRange(t *testing.T) {
	e := newEngine(t, "High Life")
	before := e.Rule()
	err := e.SetRule([]int{3}, []int{2, 9})
	if !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
	if e.Rule() != before || e.RuleName() != "High Life" {
		t.Fatalf("rule changed after rejected SetRule: %v %q", e.Rule(), e.RuleName())
	}
	if err := e.SetPreset("No Such Rule"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestSetRuleKeepsCounts(t *testing.T) {
	e := newEngine(t, DefaultPreset)
	place(e, Coord{0, 0}, Coord{1, 0}, Coord{1, 1})
	before := snapshot(e)
	if err := e.SetPreset("Day & Night"); err != nil {
		t.Fatalf("SetPreset: %v", err)
	}
	if !maps.Equal(before, snapshot(e)) {
		t.Fatal("changing the rule touched the store")
	}
}

func TestSeedRandomKeepsInvariants(t *testing.T) {
	for _, name := range []string{DefaultPreset, "High Life", "Day & Night", "Seeds", "Replicator", "Maze"} {
		e := newEngine(t, name)
		e.SeedRandom(R(-12, -8, 12, 8), 24*16)
		mustHold(t, e)
		for gen := 0; gen < 40; gen++ {
			before := e.LiveCellCount()
			res := e.Step()
			mustHold(t, e)
			if !res.Advanced {
				if e.LiveCellCount() != before {
					t.Fatalf("%s: fixed point changed live count", name)
				}
				break
			}
			if res.Extinct {
				if e.TrackedCellCount() != 0 {
					t.Fatalf("%s: extinct but %d records remain", name, e.TrackedCellCount())
				}
				break
			}
		}
	}
}

func TestSeedRandomStaysInBounds(t *testing.T) {
	e := newEngine(t, DefaultPreset)
	bounds := R(3, -2, 9, 4)
	e.SeedRandom(bounds, 100)
	for c := range e.AliveCells() {
		if !bounds.Contains(c) {
			t.Fatalf("seeded cell %v outside %v", c, bounds)
		}
	}
	r, ok := e.AliveBounds()
	if e.LiveCellCount() > 0 && (!ok || r.Min.X < bounds.Min.X || r.Max.Y > bounds.Max.Y) {
		t.Fatalf("alive bounds %v escape seed bounds %v", r, bounds)
	}
}

func TestSeedRandomDeterministic(t *testing.T) {
	a := newEngine(t, DefaultPreset)
	b := newEngine(t, DefaultPreset)
	a.SeedRandom(R(0, 0, 30, 30), 400)
	b.SeedRandom(R(0, 0, 30, 30), 400)
	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
	}
	if !slices.Equal(slices.Collect(a.AliveCells()), slices.Collect(b.AliveCells())) {
		t.Fatal("equal seeds diverged")
	}
}

func TestParallelEvaluateMatchesSequential(t *testing.T) {
	seq := newEngine(t, DefaultPreset)

	cfg := DefaultConfig()
	cfg.Workers = 4
	cfg.ParallelThreshold = 1
	par, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	seq.SeedRandom(R(-20, -20, 20, 20), 700)
	par.SeedRandom(R(-20, -20, 20, 20), 700)
	for gen := 0; gen < 25; gen++ {
		rs, rp := seq.Step(), par.Step()
		if rs != rp {
			t.Fatalf("generation %d: sequential %+v, parallel %+v", gen, rs, rp)
		}
		mustHold(t, par)
	}
	if !slices.Equal(slices.Collect(seq.AliveCells()), slices.Collect(par.AliveCells())) {
		t.Fatal("parallel evaluation changed the dirty order")
	}
}

func TestClear(t *testing.T) {
	e := newEngine(t, "Coral")
	place(e, Coord{0, 0}, Coord{1, 0}, Coord{2, 0})
	e.Step()
	e.Clear()
	mustHold(t, e)
	if e.TrackedCellCount() != 0 || e.LiveCellCount() != 0 || e.Generation() != 0 {
		t.Fatalf("clear left tracked=%d live=%d gen=%d", e.TrackedCellCount(), e.LiveCellCount(), e.Generation())
	}
	if e.RuleName() != "Coral" {
		t.Fatalf("clear reset the rule to %q", e.RuleName())
	}
}

func TestCellsIsRestartable(t *testing.T) {
	e := newEngine(t, DefaultPreset)
	place(e, Coord{0, 0}, Coord{4, 4})
	first := slices.Collect(maps.Keys(maps.Collect(e.Cells())))
	second := slices.Collect(maps.Keys(maps.Collect(e.Cells())))
	if len(first) != e.TrackedCellCount() || len(second) != len(first) {
		t.Fatalf("enumerations yielded %d and %d records, store has %d", len(first), len(second), e.TrackedCellCount())
	}
	n := 0
	for range e.AliveCells() {
		n++
		break
	}
	if n != 1 {
		t.Fatal("early break from AliveCells misbehaved")
	}
}

func TestCheckInvariantsDetectsCorruption(t *testing.T) {
	e := newEngine(t, DefaultPreset)
	place(e, Coord{0, 0}, Coord{1, 0})
	i, _ := e.cells.lookup(Coord{X: 0, Y: 1})
	e.cells.cells[i].neighbors++

	var ie *InvariantError
	if err := e.CheckInvariants(); !errors.As(err, &ie) {
		t.Fatalf("expected InvariantError, got %v", err)
	}
}

func TestCommitPanicsOnMissingNeighbor(t *testing.T) {
	e := newEngine(t, DefaultPreset)
	e.Toggle(Coord{})
	e.cells.remove(Coord{X: 1, Y: 1})

	defer func() {
		r := recover()
		if _, ok := r.(*InvariantError); !ok {
			t.Fatalf("expected InvariantError panic, got %v", r)
		}
	}()
	e.Step()
}
