//go:build ebiten

package render

import (
	"image/color"

	"biglife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a screen-sized RGBA image of the visible cells.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w x h pixel screen.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.Resize(w, h)
	return gp
}

// Resize reallocates the backing image when the screen size changes.
func (gp *GridPainter) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if gp.img != nil && w == gp.w && h == gp.h {
		return
	}
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Blit paints the raster into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.ByteGrid, size, gap int, on, off color.Color) {
	fillCellsRGBA(gp.buf, gp.w, gp.h, grid, size, gap, on, off)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
