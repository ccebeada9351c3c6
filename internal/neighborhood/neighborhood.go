// Package neighborhood provides neighborhood sampling shapes.
package neighborhood

import (
	"strconv"

	"torus-ca/internal/core"
)

// Shape samples a fixed set of relative offsets around each cell.
type Shape struct {
	name    string
	rank    int
	offsets []core.Coord
	center  int
}

// Custom builds a shape from explicit offsets, all of the same rank.
func Custom(name string, offsets ...core.Coord) (*Shape, error) {
	if len(offsets) == 0 {
		return nil, core.Malformed("neighborhood %q has no offsets", name)
	}
	rank := len(offsets[0])
	if rank == 0 {
		return nil, core.Malformed("neighborhood %q has rank 0", name)
	}
	s := &Shape{name: name, rank: rank, center: -1}
	seen := make(map[string]struct{}, len(offsets))
	for _, off := range offsets {
		if len(off) != rank {
			return nil, core.Malformed("neighborhood %q mixes ranks %d and %d", name, rank, len(off))
		}
		key := keyOf(off)
		if _, dup := seen[key]; dup {
			return nil, core.Malformed("neighborhood %q repeats offset %v", name, off)
		}
		seen[key] = struct{}{}
		if isZero(off) {
			s.center = len(s.offsets)
		}
		s.offsets = append(s.offsets, append(core.Coord(nil), off...))
	}
	return s, nil
}

// Moore samples every offset within Chebyshev distance radius, self included.
// Rank 2 radius 1 gives the 3x3 block.
func Moore(rank, radius int) (*Shape, error) {
	return box("moore", rank, radius, func(core.Coord) bool { return true })
}

// VonNeumann samples every offset within Manhattan distance radius, self included.
func VonNeumann(rank, radius int) (*Shape, error) {
	return box("vonneumann", rank, radius, func(c core.Coord) bool {
		sum := 0
		for _, v := range c {
			sum += abs(v)
		}
		return sum <= radius
	})
}

// Hex samples the six neighbors of a 2D axial hex grid sheared onto the
// square lattice, plus self.
func Hex() *Shape {
	s, _ := Custom("hex",
		core.Coord{-1, 0}, core.Coord{-1, 1},
		core.Coord{0, -1}, core.Coord{0, 0}, core.Coord{0, 1},
		core.Coord{1, -1}, core.Coord{1, 0},
	)
	return s
}

// Name identifies the shape.
func (s *Shape) Name() string { return s.name }

// Rank returns the number of axes of every offset.
func (s *Shape) Rank() int { return s.rank }

// Offsets returns the sampled offsets in sampling order.
func (s *Shape) Offsets() []core.Coord { return s.offsets }

// Sample reads every offset through at into a fresh snapshot.
func (s *Shape) Sample(at core.Relative) core.Snapshot {
	states := make([]core.State, len(s.offsets))
	for i, off := range s.offsets {
		states[i] = at(off)
	}
	return core.Snapshot{Offsets: s.offsets, States: states, Center: s.center}
}

func box(name string, rank, radius int, keep func(core.Coord) bool) (*Shape, error) {
	if rank < 1 {
		return nil, core.Malformed("%s neighborhood rank %d", name, rank)
	}
	if radius < 0 {
		return nil, core.Malformed("%s neighborhood radius %d", name, radius)
	}
	var offsets []core.Coord
	cur := make(core.Coord, rank)
	for i := range cur {
		cur[i] = -radius
	}
	for {
		if keep(cur) {
			offsets = append(offsets, append(core.Coord(nil), cur...))
		}
		i := rank - 1
		for ; i >= 0; i-- {
			cur[i]++
			if cur[i] <= radius {
				break
			}
			cur[i] = -radius
		}
		if i < 0 {
			break
		}
	}
	return Custom(name, offsets...)
}

func isZero(c core.Coord) bool {
	for _, v := range c {
		if v != 0 {
			return false
		}
	}
	return true
}

func keyOf(c core.Coord) string {
	b := make([]byte, 0, len(c)*4)
	for _, v := range c {
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, ',')
	}
	return string(b)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ByName builds one of the named shapes: moore, vonneumann or hex.
func ByName(name string, rank, radius int) (*Shape, error) {
	switch name {
	case "", "moore":
		return Moore(rank, radius)
	case "vonneumann":
		return VonNeumann(rank, radius)
	case "hex":
		if rank != 2 {
			return nil, core.Malformed("hex neighborhood needs rank 2, got %d", rank)
		}
		return Hex(), nil
	default:
		return nil, core.Malformed("unknown neighborhood %q", name)
	}
}
