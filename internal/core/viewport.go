package core

import "biglife/pkg/life"

// Viewport maps a window of screen pixels onto the unbounded plane. Each
// cell occupies CellSize pixels followed by Gap pixels of spacing.
type Viewport struct {
	Screen   Size
	Center   life.Coord
	CellSize int
	Gap      int
}

// Pitch returns the pixel distance between neighbouring cell origins.
func (v Viewport) Pitch() int {
	return max(v.CellSize, 1) + max(v.Gap, 0)
}

// Cols returns the number of fully visible columns.
func (v Viewport) Cols() int { return v.Screen.W / v.Pitch() }

// Rows returns the number of fully visible rows.
func (v Viewport) Rows() int { return v.Screen.H / v.Pitch() }

// TopLeft returns the plane coordinate drawn in the top-left slot.
func (v Viewport) TopLeft() life.Coord {
	return life.Coord{X: v.Center.X - v.Cols()/2, Y: v.Center.Y - v.Rows()/2}
}

// Rect returns the visible region of the plane.
func (v Viewport) Rect() life.Rect {
	tl := v.TopLeft()
	return life.Rect{Min: tl, Max: tl.Add(life.Coord{X: v.Cols(), Y: v.Rows()})}
}

// CellAt converts a pixel position to the plane coordinate beneath it.
func (v Viewport) CellAt(px, py int) life.Coord {
	p := v.Pitch()
	tl := v.TopLeft()
	return life.Coord{X: floorDiv(px, p) + tl.X, Y: floorDiv(py, p) + tl.Y}
}

// Pan moves the centre by a tenth of the visible columns and rows per unit.
func (v *Viewport) Pan(dx, dy int) {
	v.Center.X += dx * max(v.Cols()/10, 1)
	v.Center.Y += dy * max(v.Rows()/10, 1)
}

// Zoom grows or shrinks the cell size, never below one pixel.
func (v *Viewport) Zoom(delta int) {
	v.CellSize = max(v.CellSize+delta, 1)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
