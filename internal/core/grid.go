package core

import (
	"iter"

	"biglife/pkg/life"
)

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Resize reallocates the grid when the dimensions change.
func (g *ByteGrid) Resize(w, h int) {
	if w == g.W && h == g.H {
		return
	}
	*g = *NewByteGrid(w, h)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}

// Cell values written by Rasterize.
const (
	RasterEmpty    uint8 = 0
	RasterAlive    uint8 = 1
	RasterFrontier uint8 = 2
)

// Rasterize clears the grid and marks every cell of the sequence that falls
// inside window. Alive cells win over frontier cells; cells outside the
// window are skipped.
func (g *ByteGrid) Rasterize(window life.Rect, cells iter.Seq2[life.Coord, bool]) int {
	g.Resize(window.Dx(), window.Dy())
	g.Clear()
	drawn := 0
	for pos, alive := range cells {
		if !window.Contains(pos) {
			continue
		}
		idx := g.Index(pos.X-window.Min.X, pos.Y-window.Min.Y)
		if alive {
			g.data[idx] = RasterAlive
			drawn++
		} else if g.data[idx] == RasterEmpty {
			g.data[idx] = RasterFrontier
		}
	}
	return drawn
}
