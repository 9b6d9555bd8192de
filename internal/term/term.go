// Package term drives a Session from a character terminal. Every plane cell
// takes two columns so cells stay roughly square.
package term

import (
	"context"
	"log"
	"time"

	"biglife/internal/app"
	"biglife/internal/core"

	"github.com/gdamore/tcell/v2"
)

var (
	aliveStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorWhite)
	frontierStyle = tcell.StyleDefault.Foreground(tcell.ColorNavy).Background(tcell.ColorBlack)
	emptyStyle    = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// ScreenSize converts a terminal size into viewport units: one unit per cell,
// the last row reserved for the status line.
func ScreenSize(cols, rows int) core.Size {
	return core.Size{W: max(cols/2, 1), H: max(rows-1, 1)}
}

// Viewer renders a Session and feeds it keyboard and mouse input.
type Viewer struct {
	screen   tcell.Screen
	session  *app.Session
	raster   *core.ByteGrid
	frame    time.Duration
	frontier bool
	buttons  tcell.ButtonMask
}

// New wires a viewer to an initialised screen. The session viewport should
// use a cell size of one and no gap.
func New(screen tcell.Screen, session *app.Session, fps int) *Viewer {
	if fps <= 0 {
		fps = 30
	}
	return &Viewer{
		screen:  screen,
		session: session,
		raster:  core.NewByteGrid(1, 1),
		frame:   time.Second / time.Duration(fps),
	}
}

// Run processes events and frames until the user quits or ctx is done.
// The session is only touched from the calling goroutine.
func (v *Viewer) Run(ctx context.Context) error {
	v.screen.EnableMouse()
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(v.frame)
	defer ticker.Stop()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.Handle(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			if v.session.Tick() > 0 || !v.session.Paused() {
				v.Draw()
			}
		}
	}
}

// Handle applies one terminal event and reports whether the viewer should exit.
func (v *Viewer) Handle(ev tcell.Event) bool {
	s := v.session
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.Resize(ScreenSize(cols, rows))
		v.screen.Sync()
	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		if pressed != 0 && v.buttons&tcell.Button1 == 0 {
			x, y := ev.Position()
			if y < s.Viewport().Screen.H {
				s.ToggleAt(x/2, y)
			}
		}
		v.buttons = ev.Buttons()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyLeft:
			s.Pan(-1, 0)
		case tcell.KeyRight:
			s.Pan(1, 0)
		case tcell.KeyUp:
			s.Pan(0, -1)
		case tcell.KeyDown:
			s.Pan(0, 1)
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	}
	return false
}

func (v *Viewer) handleRune(r rune) bool {
	s := v.session
	switch r {
	case 'q':
		return true
	case ' ':
		s.TogglePause()
	case 's':
		s.StepOnce()
	case 'r':
		s.SeedVisible()
	case 'c':
		s.Clear()
	case '+', '=':
		s.Faster()
	case '-':
		s.Slower()
	case ']':
		v.cycleRule(1)
	case '[':
		v.cycleRule(-1)
	case 'f':
		v.frontier = !v.frontier
	}
	return false
}

func (v *Viewer) cycleRule(delta int) {
	if err := v.session.CycleRule(delta); err != nil {
		log.Printf("rule change: %v", err)
	}
}

// Draw paints the visible cells and the status line.
func (v *Viewer) Draw() {
	view := v.session.Viewport()
	v.raster.Rasterize(view.Rect(), v.session.Engine().Cells())
	cells := v.raster.Cells()
	for gy := 0; gy < v.raster.H; gy++ {
		for gx := 0; gx < v.raster.W; gx++ {
			style, ch := emptyStyle, ' '
			switch cells[v.raster.Index(gx, gy)] {
			case core.RasterAlive:
				style = aliveStyle
			case core.RasterFrontier:
				if v.frontier {
					style, ch = frontierStyle, '·'
				}
			}
			v.screen.SetContent(gx*2, gy, ch, nil, style)
			v.screen.SetContent(gx*2+1, gy, ch, nil, style)
		}
	}

	cols, rows := v.screen.Size()
	line := []rune(v.session.Status().Line())
	for x := 0; x < cols; x++ {
		ch := ' '
		if x < len(line) {
			ch = line[x]
		}
		v.screen.SetContent(x, rows-1, ch, nil, statusStyle)
	}
	v.screen.Show()
}
