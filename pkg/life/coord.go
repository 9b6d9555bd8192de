package life

import "fmt"

// Coord addresses a cell on the unbounded plane.
type Coord struct {
	X, Y int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord { return Coord{X: c.X + d.X, Y: c.Y + d.Y} }

// moore lists the eight neighbour offsets in row-major order.
var moore = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Rect is a half-open rectangle [Min, Max) of plane coordinates.
type Rect struct {
	Min, Max Coord
}

// R is shorthand for Rect{Coord{x0, y0}, Coord{x1, y1}}.
func R(x0, y0, x1, y1 int) Rect {
	return Rect{Min: Coord{X: x0, Y: y0}, Max: Coord{X: x1, Y: y1}}
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

// Empty reports whether r contains no coordinates.
func (r Rect) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coord) bool {
	return r.Min.X <= c.X && c.X < r.Max.X && r.Min.Y <= c.Y && c.Y < r.Max.Y
}

func (r Rect) String() string { return r.Min.String() + "-" + r.Max.String() }
