// Package topology maps logical coordinates onto population addresses.
package topology

import (
	"iter"

	"torus-ca/internal/core"
)

// Wrap applies toroidal wrapping to n, returning a value in [0, dim).
func Wrap(n, dim int) int {
	return (n%dim + dim) % dim
}

// Torus is an edge-free space of any rank where every axis wraps around.
// Addresses are row-major with the last axis varying fastest, so a cell
// (x, y) of a 2D torus lives at x*dimY + y.
type Torus struct {
	dims    core.Dims
	strides []int
	size    int
	rule    core.Rule
}

// NewTorus builds a torus over dims whose sweeps apply rule.
func NewTorus(dims core.Dims, rule core.Rule) (*Torus, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, core.InvalidDependency("torus requires a transition rule")
	}
	d := append(core.Dims(nil), dims...)
	strides := make([]int, len(d))
	stride := 1
	for i := len(d) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= d[i]
	}
	return &Torus{dims: d, strides: strides, size: stride, rule: rule}, nil
}

// Dims returns a copy of the declared dimensions.
func (t *Torus) Dims() core.Dims { return append(core.Dims(nil), t.dims...) }

// Rule returns the transition rule applied by Step.
func (t *Torus) Rule() core.Rule { return t.rule }

// Rank returns the number of axes.
func (t *Torus) Rank() int { return len(t.dims) }

// Size returns the number of cells in the space.
func (t *Torus) Size() int { return t.size }

// Address converts an in-bounds coordinate to its storage address.
func (t *Torus) Address(c core.Coord) int {
	if len(c) != len(t.dims) {
		core.OutOfRange("coordinate %v has rank %d, torus has rank %d", c, len(c), len(t.dims))
	}
	addr := 0
	for i, v := range c {
		if v < 0 || v >= t.dims[i] {
			core.OutOfRange("coordinate %v outside %v", c, t.dims)
		}
		addr += v * t.strides[i]
	}
	return addr
}

// Coord converts an address back to its coordinate.
func (t *Torus) Coord(addr int) core.Coord {
	if addr < 0 || addr >= t.size {
		core.OutOfRange("address %d not in [0,%d)", addr, t.size)
	}
	c := make(core.Coord, len(t.dims))
	for i, s := range t.strides {
		c[i] = addr / s
		addr %= s
	}
	return c
}

// WrapCoord wraps every component of c onto the torus.
func (t *Torus) WrapCoord(c core.Coord) core.Coord {
	if len(c) != len(t.dims) {
		core.OutOfRange("coordinate %v has rank %d, torus has rank %d", c, len(c), len(t.dims))
	}
	out := make(core.Coord, len(c))
	for i, v := range c {
		out[i] = Wrap(v, t.dims[i])
	}
	return out
}

// Step sweeps every cell once. Each cell's neighborhood is sampled from the
// committed generation in store, the rule's result is staged at the cell's
// address, and the store is committed once the sweep completes.
func (t *Torus) Step(sampler core.Sampler, store core.Store) core.Generation {
	rank := len(t.dims)
	pos := make(core.Coord, rank)
	at := func(offset core.Coord) core.State {
		if len(offset) != rank {
			core.OutOfRange("offset %v has rank %d, torus has rank %d", offset, len(offset), rank)
		}
		addr := 0
		for i, d := range offset {
			addr += Wrap(pos[i]+d, t.dims[i]) * t.strides[i]
		}
		return store.Read(addr)
	}
	for addr := 0; addr < t.size; addr++ {
		store.Write(addr, t.rule.Next(sampler.Sample(at)))
		t.advance(pos)
	}
	store.Commit()
	return t.Cells(store)
}

// Cells returns a restartable view of the committed generation in store.
func (t *Torus) Cells(store core.Store) core.Generation {
	return func() iter.Seq2[core.Coord, core.State] {
		return func(yield func(core.Coord, core.State) bool) {
			pos := make(core.Coord, len(t.dims))
			for addr := 0; addr < t.size; addr++ {
				if !yield(pos, store.Read(addr)) {
					return
				}
				t.advance(pos)
			}
		}
	}
}

// Pattern seeds state at each listed coordinate, wrapped onto the torus,
// and leaves every other cell at 0.
func (t *Torus) Pattern(state core.State, coords ...core.Coord) (core.Seeder, error) {
	set := make(map[int]struct{}, len(coords))
	for _, c := range coords {
		if len(c) != len(t.dims) {
			return nil, core.Malformed("pattern coordinate %v has rank %d, torus has rank %d", c, len(c), len(t.dims))
		}
		set[t.Address(t.WrapCoord(c))] = struct{}{}
	}
	return func(addr int) core.State {
		if _, ok := set[addr]; ok {
			return state
		}
		return 0
	}, nil
}

// advance moves pos to the next coordinate in address order.
func (t *Torus) advance(pos core.Coord) {
	for i := len(pos) - 1; i >= 0; i-- {
		pos[i]++
		if pos[i] < t.dims[i] {
			return
		}
		pos[i] = 0
	}
}
