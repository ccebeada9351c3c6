//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"torus-ca/internal/core"
	"torus-ca/internal/render"
	"torus-ca/internal/ui"
	"torus-ca/internal/universe"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// historyRows is the scrollback height shown for rank-1 universes.
const historyRows = 256

// Game adapts a world to the ebiten.Game interface.
type Game struct {
	world   *World
	painter *render.GridPainter
	overlay *ui.Overlay
	stepper *core.FixedStep

	scale    int
	limit    int
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world. It stops advancing after
// steps generations unless steps is negative.
func New(world *World, scale, gps, steps int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	gp := render.NewGridPainter(paletteFor(world.Preset.States), historyRows)
	gp.Resize(world.Universe.Dims())
	gp.Draw(world.Universe.Current())
	return &Game{
		world:   world,
		painter: gp,
		overlay: ui.NewOverlay(world.Universe),
		stepper: core.NewFixedStep(gps),
		scale:   scale,
		limit:   steps,
		seed:    seed,
	}
}

// Reset reinitializes the universe with the configured pattern for seed.
func (g *Game) Reset(seed int64) {
	seeder, err := g.world.Seeder(seed)
	if err != nil {
		log.Printf("reseed: %v", err)
		return
	}
	g.seed = seed
	g.world.Universe.Reseed(seeder)
	g.painter.Resize(g.world.Universe.Dims())
	g.painter.Draw(g.world.Universe.Current())
	g.tickOnce = false
}

// Update handles per-frame logic and advances the universe.
func (g *Game) Update() error {
	ctrl := g.world.Universe.Controller()
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ctrl.Stop()
	}
	if ctrl.State() == universe.Stopped {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ctrl.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ctrl.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	steps := g.stepper.Due()
	if ctrl.State() == universe.Paused {
		steps = 0
		if g.tickOnce {
			steps = 1
		}
	}
	steps = stepBudget(steps, g.world.Universe.Generation(), g.limit)
	for i := 0; i < steps; i++ {
		g.painter.Draw(g.world.Universe.RunStep())
	}
	g.tickOnce = false
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}

func paletteFor(states int) []color.RGBA {
	if states <= 2 {
		return render.Binary(color.White, color.Black)
	}
	return []color.RGBA{
		{A: 255},
		{R: 250, G: 250, B: 255, A: 255},
		{R: 60, G: 110, B: 220, A: 255},
		{R: 220, G: 80, B: 60, A: 255},
	}
}
