package life

// cell is the per-coordinate record. pending is only meaningful between the
// evaluate and commit phases of a step.
type cell struct {
	pos       Coord
	alive     bool
	pending   bool
	neighbors uint8
}

// store is an index-stable arena of cell records. Appends never move existing
// entries, so indices taken before a commit stay valid until cleanup.
type store struct {
	index map[Coord]int
	cells []cell
}

func newStore() *store {
	return &store{index: make(map[Coord]int)}
}

func (s *store) len() int { return len(s.cells) }

func (s *store) lookup(c Coord) (int, bool) {
	i, ok := s.index[c]
	return i, ok
}

func (s *store) insert(c Coord, alive bool, neighbors uint8) int {
	i := len(s.cells)
	s.cells = append(s.cells, cell{pos: c, alive: alive, neighbors: neighbors})
	s.index[c] = i
	return i
}

// remove deletes c by moving the last record into its slot.
func (s *store) remove(c Coord) {
	i, ok := s.index[c]
	if !ok {
		return
	}
	last := len(s.cells) - 1
	if i != last {
		s.cells[i] = s.cells[last]
		s.index[s.cells[i].pos] = i
	}
	s.cells[last] = cell{}
	s.cells = s.cells[:last]
	delete(s.index, c)
}

func (s *store) reset() {
	clear(s.index)
	clear(s.cells)
	s.cells = s.cells[:0]
}
