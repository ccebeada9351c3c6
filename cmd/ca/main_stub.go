//go:build !ebiten

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"torus-ca/internal/app"
	"torus-ca/internal/core"
	"torus-ca/internal/render"
	_ "torus-ca/internal/rules/briansbrain"
	_ "torus-ca/internal/rules/elementary"
	_ "torus-ca/internal/rules/life"
	"torus-ca/internal/universe"
)

// The headless build prints generations to stdout. The GUI needs -tags ebiten.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	quiet := flag.Bool("quiet", false, "suppress generation output")
	flag.Parse()

	world, err := buildWorld(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var pacer core.Pacer = universe.Unpaced{}
	if cfg.GPS > 0 {
		ticker := universe.NewTicker(cfg.GPS)
		defer ticker.Close()
		pacer = ticker
	}

	var renderer core.Renderer
	var text *render.Text
	if !*quiet {
		text = render.NewText(os.Stdout, "")
		renderer = text
	}

	u := world.Universe
	n, err := u.Run(ctx, cfg.Steps, renderer, pacer)
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	if text != nil && text.Err() != nil {
		log.Fatal(text.Err())
	}
	log.Printf("%s: ran %d generations, population %d", u.Name(), n, u.Population())
}
