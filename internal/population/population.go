// Package population implements bit-packed, double-buffered cell storage.
package population

import (
	"math/bits"

	"torus-ca/internal/core"
)

const wordBits = 64

// Bits stores cells at a fixed bit width packed contiguously into 64-bit
// words. Cells may straddle a word boundary when the width does not divide 64.
//
// Reads observe the active buffer and writes land in the staging buffer, so a
// sweep sees one generation no matter the order cells are visited. Writing an
// address twice in one generation keeps the last value.
type Bits struct {
	size  int
	width int
	mask  uint64

	active  []uint64
	staging []uint64
}

// New allocates a store of size cells, each width bits wide (1..8).
func New(size, width int) (*Bits, error) {
	if size <= 0 {
		return nil, core.Malformed("population size %d", size)
	}
	if width < 1 || width > 8 {
		return nil, core.Malformed("cell width %d bits", width)
	}
	words := (size*width + wordBits - 1) / wordBits
	return &Bits{
		size:    size,
		width:   width,
		mask:    1<<width - 1,
		active:  make([]uint64, words),
		staging: make([]uint64, words),
	}, nil
}

// ForStates allocates a store wide enough to hold states distinct values.
func ForStates(size, states int) (*Bits, error) {
	if states < 2 || states > 256 {
		return nil, core.Malformed("state count %d", states)
	}
	return New(size, WidthFor(states))
}

// WidthFor returns ceil(log2(states)), with a minimum of one bit.
func WidthFor(states int) int {
	if states <= 2 {
		return 1
	}
	return bits.Len(uint(states - 1))
}

// Size returns the number of addressable cells.
func (b *Bits) Size() int { return b.size }

// Width returns the number of bits per cell.
func (b *Bits) Width() int { return b.width }

// States returns how many distinct values a cell can hold.
func (b *Bits) States() int { return 1 << b.width }

// Seed initializes every cell of the active buffer from s. The staging
// buffer is left untouched.
func (b *Bits) Seed(s core.Seeder) {
	for addr := 0; addr < b.size; addr++ {
		b.put(b.active, addr, s(addr))
	}
}

// Read returns the committed state at addr.
func (b *Bits) Read(addr int) core.State {
	b.check(addr)
	return b.get(b.active, addr)
}

// Write stages state for addr in the generation under construction.
func (b *Bits) Write(addr int, state core.State) {
	b.check(addr)
	b.put(b.staging, addr, state)
}

// Commit publishes the staged generation and clears staging, tail word included.
func (b *Bits) Commit() {
	copy(b.active, b.staging)
	clear(b.staging)
}

// PopulationCount returns the number of cells in a non-zero state.
func (b *Bits) PopulationCount() int {
	if b.width == 1 {
		n := 0
		for _, w := range b.active {
			n += bits.OnesCount64(w)
		}
		return n
	}
	n := 0
	for addr := 0; addr < b.size; addr++ {
		if b.get(b.active, addr) != 0 {
			n++
		}
	}
	return n
}

func (b *Bits) check(addr int) {
	if addr < 0 || addr >= b.size {
		core.OutOfRange("address %d not in [0,%d)", addr, b.size)
	}
}

func (b *Bits) get(buf []uint64, addr int) core.State {
	pos := addr * b.width
	word, off := pos/wordBits, pos%wordBits
	v := buf[word] >> off
	if off+b.width > wordBits {
		v |= buf[word+1] << (wordBits - off)
	}
	return core.State(v & b.mask)
}

func (b *Bits) put(buf []uint64, addr int, state core.State) {
	v := uint64(state)
	if v > b.mask {
		core.OutOfRange("state %d exceeds %d-bit cell", state, b.width)
	}
	pos := addr * b.width
	word, off := pos/wordBits, pos%wordBits
	buf[word] = buf[word]&^(b.mask<<off) | v<<off
	if spill := off + b.width - wordBits; spill > 0 {
		hi := b.mask >> (b.width - spill)
		buf[word+1] = buf[word+1]&^hi | v>>(b.width-spill)
	}
}
