//go:build ebiten

package ui

import (
	"image/color"

	"torus-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
	panelWidth   = 170
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Overlay draws a status panel in the top-left corner of the view.
type Overlay struct {
	source parameterProvider
	hidden bool
	lines  []string
	pixel  *ebiten.Image
}

// NewOverlay constructs an overlay reporting source's parameters.
func NewOverlay(source parameterProvider) *Overlay {
	o := &Overlay{source: source}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update refreshes the cached lines and handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
	if o.hidden || o.source == nil {
		return
	}
	o.lines = Lines(o.source.Parameters())
}

// Draw renders the panel onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden || len(o.lines) == 0 {
		return
	}
	height := 2*panelPadding + len(o.lines)*lineHeight
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(panelWidth, float64(height))
	op.ColorScale.Scale(0.06, 0.06, 0.08, 0.75)
	screen.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, line := range o.lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(screen, line, face, panelPadding, y, fg)
	}
}
