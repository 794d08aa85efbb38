//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"sparse-life/internal/app"
	"sparse-life/internal/board"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.CPUProfile != "" {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.CPUProfile), profile.NoShutdownHook)
		defer p.Stop()
	}

	bc, err := cfg.BoardConfig(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	b, err := board.New(bc, time.Now())
	if err != nil {
		log.Fatal(err)
	}
	switch {
	case cfg.Random:
		b.Randomize()
	case bc.Pattern != "":
		if err := b.Reload(bc.Pattern); err != nil {
			log.Printf("starting with an empty board: %v", err)
		}
	}

	game := app.New(b, cfg)
	ebiten.SetWindowTitle("sparse-life")
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
