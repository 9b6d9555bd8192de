//go:build ebiten

package ui

import (
	"image/color"

	"biglife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay tints the dead frontier cells the engine is tracking.
type Overlay struct {
	visible bool
	tint    color.RGBA
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{tint: color.RGBA{R: 40, G: 70, B: 140, A: 255}}
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Draw renders frontier cells from the raster onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image, grid *core.ByteGrid, size, gap int) {
	if o == nil || !o.visible {
		return
	}
	size = max(size, 1)
	pitch := size + max(gap, 0)
	cells := grid.Cells()
	for gy := 0; gy < grid.H; gy++ {
		for gx := 0; gx < grid.W; gx++ {
			if cells[grid.Index(gx, gy)] != core.RasterFrontier {
				continue
			}
			x, y := float32(gx*pitch), float32(gy*pitch)
			vector.DrawFilledRect(screen, x, y, float32(size), float32(size), o.tint, false)
		}
	}
}
