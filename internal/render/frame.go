// Package render turns committed generations into pixels or text.
package render

import (
	"image/color"

	"torus-ca/internal/core"
)

// Frame rasterizes generations into an RGBA buffer, one pixel per cell.
// Axis 0 runs horizontally and axis 1 vertically; higher axes show their
// zero slice. A rank-1 generation is drawn as the top row and older rows
// scroll down, so the frame holds a history of the line.
type Frame struct {
	w, h    int
	rank    int
	history int
	palette []color.RGBA
	buf     []byte
}

// NewFrame returns a frame coloring state i with palette[i]. States past the
// end of the palette use its last entry. historyRows sets the height used
// for rank-1 generations.
func NewFrame(palette []color.RGBA, historyRows int) *Frame {
	if historyRows <= 0 {
		historyRows = 1
	}
	return &Frame{palette: palette, history: historyRows}
}

// Binary returns a two-entry palette for dead and live cells.
func Binary(on, off color.Color) []color.RGBA {
	return []color.RGBA{toRGBA(off), toRGBA(on)}
}

// Resize allocates the buffer for dims. It clears the history.
func (f *Frame) Resize(dims core.Dims) {
	f.rank = len(dims)
	if f.rank == 0 {
		f.w, f.buf = 0, nil
		return
	}
	f.w, f.h = dims[0], f.history
	if f.rank >= 2 {
		f.h = dims[1]
	}
	f.buf = make([]byte, 4*f.w*f.h)
}

// Size returns the frame dimensions in pixels.
func (f *Frame) Size() (int, int) { return f.w, f.h }

// Pixels exposes the RGBA buffer.
func (f *Frame) Pixels() []byte { return f.buf }

// Draw paints gen into the buffer.
func (f *Frame) Draw(gen core.Generation) {
	if f.w == 0 || gen == nil {
		return
	}
	if f.rank == 1 {
		row := 4 * f.w
		copy(f.buf[row:], f.buf[:len(f.buf)-row])
	}
	for c, s := range gen() {
		if !sliceZero(c) {
			continue
		}
		y := 0
		if len(c) > 1 {
			y = c[1]
		}
		f.put(y*f.w+c[0], s)
	}
}

func (f *Frame) put(i int, s core.State) {
	base := i * 4
	var col color.RGBA
	if n := len(f.palette); n > 0 {
		idx := int(s)
		if idx >= n {
			idx = n - 1
		}
		col = f.palette[idx]
	}
	f.buf[base+0] = col.R
	f.buf[base+1] = col.G
	f.buf[base+2] = col.B
	f.buf[base+3] = col.A
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
