//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"biglife/internal/app"
	"biglife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg, core.Size{W: cfg.Width, H: cfg.Height})
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(session)

	ebiten.SetWindowTitle("biglife - " + session.Engine().RuleName())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
