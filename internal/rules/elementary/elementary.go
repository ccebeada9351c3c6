// Package elementary implements Wolfram's one-dimensional elementary automata.
package elementary

import (
	"strconv"

	"torus-ca/internal/core"
	"torus-ca/internal/neighborhood"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Rule uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Rule applies a Wolfram code to the left, center and right cells of a
// rank-1 neighborhood. Offsets beyond radius 1 are ignored.
type Rule struct {
	Code uint8
}

// States reports that cells are binary.
func (Rule) States() int { return 2 }

// Next returns the cell's state in the following generation.
func (r Rule) Next(s core.Snapshot) core.State {
	var idx uint
	for i, off := range s.Offsets {
		if len(off) != 1 || s.States[i] == 0 {
			continue
		}
		switch off[0] {
		case -1:
			idx |= 4
		case 0:
			idx |= 2
		case 1:
			idx |= 1
		}
	}
	return core.State(r.Code>>idx) & 1
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Preset, error) {
		c := FromMap(cfg)
		shape, err := neighborhood.Moore(1, 1)
		if err != nil {
			return core.Preset{}, err
		}
		return core.Preset{Name: "elementary", Rank: 1, States: 2, Sampler: shape, Rule: Rule{Code: c.Rule}}, nil
	})
}
