// Package briansbrain implements Brian's Brain, a three-state excitable medium.
package briansbrain

import (
	"torus-ca/internal/core"
	"torus-ca/internal/neighborhood"
)

const (
	StateDead  core.State = 0
	StateOn    core.State = 1
	StateDying core.State = 2
)

// Rule fires a dead cell with exactly two firing neighbors. Firing cells
// start dying and dying cells die.
type Rule struct{}

// States reports the three cell states.
func (Rule) States() int { return 3 }

// Next returns the cell's state in the following generation.
func (Rule) Next(s core.Snapshot) core.State {
	self, _ := s.Self()
	switch self {
	case StateOn:
		return StateDying
	case StateDying:
		return StateDead
	}
	firing := 0
	for i, v := range s.States {
		if i != s.Center && v == StateOn {
			firing++
		}
	}
	if firing == 2 {
		return StateOn
	}
	return StateDead
}

func init() {
	core.Register("briansbrain", func(map[string]string) (core.Preset, error) {
		shape, err := neighborhood.Moore(2, 1)
		if err != nil {
			return core.Preset{}, err
		}
		return core.Preset{Name: "briansbrain", Rank: 2, States: 3, Sampler: shape, Rule: Rule{}}, nil
	})
}
