package life

import (
	"golang.org/x/sync/errgroup"
)

// evaluate runs the rule over the records present before the step and
// appends the indices of records whose state changes. Records inserted by
// the following commit are past the snapshot length and are never visited.
func (e *Engine) evaluate(dirty []int) []int {
	n := e.cells.len()
	workers := e.cfg.Workers
	if e.cfg.ParallelThreshold <= 0 || n < e.cfg.ParallelThreshold || workers < 2 {
		out, err := e.evaluateRange(dirty, 0, n)
		if err != nil {
			panic(err)
		}
		return out
	}

	chunk := (n + workers - 1) / workers
	parts := make([][]int, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			out, err := e.evaluateRange(nil, lo, hi)
			parts[w] = out
			return err
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
	for _, p := range parts {
		dirty = append(dirty, p...)
	}
	return dirty
}

// evaluateRange touches only records in [lo, hi), so disjoint ranges may run
// concurrently.
func (e *Engine) evaluateRange(dirty []int, lo, hi int) ([]int, error) {
	rule := e.rule
	cells := e.cells.cells
	for i := lo; i < hi; i++ {
		c := &cells[i]
		if c.neighbors > MaxNeighbors {
			return dirty, violation("evaluate", c.pos, "neighbour count %d out of range", c.neighbors)
		}
		if !c.alive && c.neighbors == 0 {
			return dirty, violation("evaluate", c.pos, "dead record with no live neighbours retained")
		}
		next := rule.Applies(c.alive, int(c.neighbors))
		if next != c.alive {
			c.pending = next
			dirty = append(dirty, i)
		}
	}
	return dirty, nil
}
