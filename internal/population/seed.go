package population

import "torus-ca/internal/core"

// Random seeds each cell with a uniformly drawn state in [0, states).
func Random(seed int64, states int) core.Seeder {
	rng := core.NewRNG(seed)
	return func(int) core.State { return rng.State(states) }
}

// Density seeds a binary population where roughly percent of cells start alive.
func Density(seed int64, percent int) core.Seeder {
	rng := core.NewRNG(seed)
	return func(int) core.State {
		if rng.Chance(percent) {
			return 1
		}
		return 0
	}
}

// Fill seeds every cell with the same state.
func Fill(state core.State) core.Seeder {
	return func(int) core.State { return state }
}

// Addresses seeds the listed addresses with state and every other cell with 0.
func Addresses(state core.State, addrs ...int) core.Seeder {
	set := make(map[int]struct{}, len(addrs))
	for _, a := range addrs {
		set[a] = struct{}{}
	}
	return func(addr int) core.State {
		if _, ok := set[addr]; ok {
			return state
		}
		return 0
	}
}
