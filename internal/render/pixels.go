package render

import (
	"image/color"

	"biglife/internal/core"
)

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillCellsRGBA paints grid into buf, a w*h RGBA image. Each live cell
// becomes a size x size square of on; gaps and everything else are off.
func fillCellsRGBA(buf []byte, w, h int, grid *core.ByteGrid, size, gap int, on, off color.Color) {
	pOn, pOff := rgba(on), rgba(off)
	for i := 0; i+3 < len(buf); i += 4 {
		copy(buf[i:i+4], pOff[:])
	}
	if size <= 0 {
		size = 1
	}
	pitch := size + max(gap, 0)
	cells := grid.Cells()
	for gy := 0; gy < grid.H; gy++ {
		for gx := 0; gx < grid.W; gx++ {
			if cells[grid.Index(gx, gy)] != core.RasterAlive {
				continue
			}
			x0, y0 := gx*pitch, gy*pitch
			for y := y0; y < y0+size && y < h; y++ {
				for x := x0; x < x0+size && x < w; x++ {
					base := (y*w + x) * 4
					copy(buf[base:base+4], pOn[:])
				}
			}
		}
	}
}
