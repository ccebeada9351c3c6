package core

import (
	"context"
	"iter"
)

// State is the value held by a single cell. Stores pack it into as few bits
// as the automaton's state count requires.
type State uint8

// Coord is a logical cell position, one component per axis.
type Coord []int

// Dims declares the size of each axis of a topology.
type Dims []int

// Cells returns the number of cells spanned by the dimensions.
func (d Dims) Cells() int {
	if len(d) == 0 {
		return 0
	}
	n := 1
	for _, v := range d {
		n *= v
	}
	return n
}

// Validate reports ErrMalformedConfiguration when any axis is non-positive.
func (d Dims) Validate() error {
	if len(d) == 0 {
		return Malformed("no dimensions declared")
	}
	for i, v := range d {
		if v <= 0 {
			return Malformed("axis %d has size %d", i, v)
		}
	}
	return nil
}

// Seeder yields the initial state for an address. Stores call it once per
// address in ascending order.
type Seeder func(addr int) State

// Relative reads the state of the cell at offset from the cell being swept.
type Relative func(offset Coord) State

// Generation produces a fresh pass over the cells of the most recently
// committed generation. The Coord passed to the sequence is reused between
// iterations; copy it if it must outlive the loop body.
type Generation func() iter.Seq2[Coord, State]

// Store holds a double-buffered population addressed by flat index.
type Store interface {
	Seed(s Seeder)
	Read(addr int) State
	Write(addr int, s State)
	Commit()
	Size() int
	PopulationCount() int
}

// Sampler gathers a neighborhood snapshot through a relative-state accessor.
type Sampler interface {
	Sample(at Relative) Snapshot
}

// Snapshot is the sampled neighborhood of one cell. Offsets are shared by
// every snapshot of a sampler and must not be modified.
type Snapshot struct {
	Offsets []Coord
	States  []State
	// Center is the index of the zero offset, or -1 when the shape omits it.
	Center int
}

// Len returns the number of sampled cells.
func (s Snapshot) Len() int { return len(s.States) }

// Self returns the state of the sampled cell itself.
func (s Snapshot) Self() (State, bool) {
	if s.Center < 0 || s.Center >= len(s.States) {
		return 0, false
	}
	return s.States[s.Center], true
}

// At returns the state sampled at offset.
func (s Snapshot) At(offset Coord) (State, bool) {
	for i, off := range s.Offsets {
		if equalCoord(off, offset) {
			return s.States[i], true
		}
	}
	return 0, false
}

func equalCoord(a, b Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Rule maps a neighborhood snapshot to the cell's next state.
type Rule interface {
	Next(s Snapshot) State
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(s Snapshot) State

// Next calls f(s).
func (f RuleFunc) Next(s Snapshot) State { return f(s) }

// Topology maps a logical space onto store addresses and drives sweeps.
type Topology interface {
	Dims() Dims
	Size() int
	Step(sampler Sampler, store Store) Generation
	Cells(store Store) Generation
	Rule() Rule
}

// Ranked is implemented by samplers whose offsets have a fixed number of axes.
type Ranked interface {
	Rank() int
}

// StateCounter is implemented by rules that emit a bounded set of states.
type StateCounter interface {
	States() int
}

// Renderer consumes each generation produced by a universe.
type Renderer interface {
	Resize(dims Dims)
	Draw(gen Generation)
}

// Pacer blocks between generations until the host is ready for the next one.
type Pacer interface {
	Wait(ctx context.Context) error
}
