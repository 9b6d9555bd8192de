//go:build ebiten

package ui

import (
	"image/color"

	"biglife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 16
)

// HUD renders the status snapshot as a strip along the top of the window.
type HUD struct {
	hidden   bool
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD { return &HUD{} }

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() { h.hidden = !h.hidden }

// Update caches the snapshot to draw this frame.
func (h *HUD) Update(snapshot core.ParameterSnapshot) {
	h.snapshot = snapshot
}

// Draw paints one line per parameter group.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.hidden || len(h.snapshot.Groups) == 0 {
		return
	}
	face := basicfont.Face7x13
	lines := make([]string, 0, len(h.snapshot.Groups))
	widest := 0
	for _, g := range h.snapshot.Groups {
		line := core.ParameterSnapshot{Groups: []core.ParameterGroup{g}}.Line()
		lines = append(lines, line)
		widest = max(widest, text.BoundString(face, line).Dx())
	}
	panelW := float32(widest + 2*panelPadding)
	panelH := float32(len(lines)*lineHeight + panelPadding)
	vector.DrawFilledRect(screen, 0, 0, panelW, panelH, color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	for i, line := range lines {
		y := panelPadding + (i+1)*lineHeight - 4
		text.Draw(screen, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
