package render

import (
	"bufio"
	"io"

	"torus-ca/internal/core"
)

// DefaultGlyphs maps states 0, 1 and 2 to characters.
const DefaultGlyphs = ".#+"

// Text writes each generation to an io.Writer, one character per cell.
// Rank-1 generations print as a single line so successive generations
// stack into a space-time diagram; higher ranks print their zero slice as a
// grid followed by a blank line.
type Text struct {
	w      *bufio.Writer
	glyphs []byte
	dims   core.Dims
	err    error
}

// NewText returns a text renderer writing to w.
func NewText(w io.Writer, glyphs string) *Text {
	if glyphs == "" {
		glyphs = DefaultGlyphs
	}
	return &Text{w: bufio.NewWriter(w), glyphs: []byte(glyphs)}
}

// Resize records the dimensions to print.
func (t *Text) Resize(dims core.Dims) { t.dims = append(core.Dims(nil), dims...) }

// Err returns the first write error encountered.
func (t *Text) Err() error { return t.err }

// Draw prints gen.
func (t *Text) Draw(gen core.Generation) {
	if t.err != nil || len(t.dims) == 0 {
		return
	}
	width := t.dims[0]
	height := 1
	if len(t.dims) > 1 {
		height = t.dims[1]
	}
	grid := make([]byte, width*height)
	for c, s := range gen() {
		y := 0
		if len(c) > 1 {
			y = c[1]
		}
		if !sliceZero(c) {
			continue
		}
		grid[y*width+c[0]] = t.glyph(s)
	}
	for y := 0; y < height; y++ {
		t.w.Write(grid[y*width : (y+1)*width])
		t.w.WriteByte('\n')
	}
	if len(t.dims) > 1 {
		t.w.WriteByte('\n')
	}
	t.err = t.w.Flush()
}

func (t *Text) glyph(s core.State) byte {
	if int(s) >= len(t.glyphs) {
		return t.glyphs[len(t.glyphs)-1]
	}
	return t.glyphs[s]
}

func sliceZero(c core.Coord) bool {
	for _, v := range c[min(len(c), 2):] {
		if v != 0 {
			return false
		}
	}
	return true
}
