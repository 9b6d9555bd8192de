package life

// CheckInvariants recomputes every neighbour count from the live set and
// compares it with the bookkept state. It returns the first mismatch found.
// The scan is proportional to the store size and meant for tests and debug
// builds of drivers.
func (e *Engine) CheckInvariants() error {
	live := 0
	for i, c := range e.cells.cells {
		if j, ok := e.cells.index[c.pos]; !ok || j != i {
			return violation("check", c.pos, "index points at %d, record lives at %d", j, i)
		}
		if c.alive {
			live++
		} else if c.neighbors == 0 {
			return violation("check", c.pos, "dead record with no live neighbours retained")
		}
		want := 0
		for _, d := range moore {
			if e.Alive(c.pos.Add(d)) {
				want++
			}
		}
		if int(c.neighbors) != want {
			return violation("check", c.pos, "neighbour count %d, recomputed %d", c.neighbors, want)
		}
		if c.alive {
			for _, d := range moore {
				n := c.pos.Add(d)
				if _, ok := e.cells.lookup(n); !ok {
					return violation("check", n, "neighbour of a live cell is not tracked")
				}
			}
		}
	}
	if len(e.cells.index) != len(e.cells.cells) {
		return violation("check", Coord{}, "index holds %d entries for %d records", len(e.cells.index), len(e.cells.cells))
	}
	if live != e.live {
		return violation("check", Coord{}, "live aggregate %d, counted %d", e.live, live)
	}
	return nil
}
