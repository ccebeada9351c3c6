//go:build ebiten

package render

import (
	"image/color"

	"torus-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter renders generations into an ebiten image.
type GridPainter struct {
	frame *Frame
	img   *ebiten.Image
}

// NewGridPainter builds a painter using palette. historyRows is the height
// used for rank-1 universes.
func NewGridPainter(palette []color.RGBA, historyRows int) *GridPainter {
	return &GridPainter{frame: NewFrame(palette, historyRows)}
}

// Resize reallocates the backing image for dims.
func (gp *GridPainter) Resize(dims core.Dims) {
	gp.frame.Resize(dims)
	w, h := gp.frame.Size()
	if w <= 0 || h <= 0 {
		gp.img = nil
		return
	}
	gp.img = ebiten.NewImage(w, h)
}

// Draw uploads gen into the painter image.
func (gp *GridPainter) Draw(gen core.Generation) {
	if gp.img == nil {
		return
	}
	gp.frame.Draw(gen)
	gp.img.WritePixels(gp.frame.Pixels())
}

// Blit draws the painter image onto dst scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	if gp.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.frame.Size() }
