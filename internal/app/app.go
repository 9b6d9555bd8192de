//go:build ebiten

package app

import (
	"image/color"
	"log"

	"biglife/internal/core"
	"biglife/internal/render"
	"biglife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	raster  *core.ByteGrid
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color
}

// New constructs a Game for the provided session.
func New(session *Session) *Game {
	size := session.Viewport().Screen
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H),
		raster:   core.NewByteGrid(1, 1),
		hud:      ui.NewHUD(),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.SeedVisible()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		s.Pan(-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		s.Pan(1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		s.Pan(0, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		s.Pan(0, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		s.Zoom(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		s.Zoom(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		s.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		s.Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.cycleRule(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.cycleRule(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.ToggleAt(ebiten.CursorPosition())
	}

	s.Tick()
	g.hud.Update(s.Status())
	return nil
}

func (g *Game) cycleRule(delta int) {
	if err := g.session.CycleRule(delta); err != nil {
		log.Printf("rule change: %v", err)
	}
}

// Draw renders the visible part of the plane.
func (g *Game) Draw(screen *ebiten.Image) {
	v := g.session.Viewport()
	g.raster.Rasterize(v.Rect(), g.session.Engine().Cells())
	g.painter.Blit(screen, g.raster, v.CellSize, v.Gap, g.onColor, g.offColor)
	g.overlay.Draw(screen, g.raster, v.CellSize, v.Gap)
	g.hud.Draw(screen)
}

// Layout tracks the window size so the viewport follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.Resize(core.Size{W: outsideWidth, H: outsideHeight})
	g.painter.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
