//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-ca/internal/app"
	_ "torus-ca/internal/rules/briansbrain"
	_ "torus-ca/internal/rules/elementary"
	_ "torus-ca/internal/rules/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, err := buildWorld(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(world, cfg.Scale, cfg.GPS, cfg.Steps, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("torus-ca: " + world.Universe.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
