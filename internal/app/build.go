// Package app assembles universes from configuration and hosts them.
package app

import (
	"strings"

	"torus-ca/internal/core"
	"torus-ca/internal/population"
	"torus-ca/internal/topology"
	"torus-ca/internal/universe"
)

// World is an assembled universe with the pieces used to build it.
type World struct {
	Universe *universe.Universe
	Preset   core.Preset
	Torus    *topology.Torus

	cfg Config
}

// Build resolves the configured preset, allocates the torus and store, and
// seeds the universe.
func Build(cfg Config, opts ...universe.Option) (*World, error) {
	preset, err := ResolvePreset(cfg.Rule, cfg.Options)
	if err != nil {
		return nil, err
	}
	dims, err := dimsFor(preset, cfg)
	if err != nil {
		return nil, err
	}
	torus, err := topology.NewTorus(dims, preset.Rule)
	if err != nil {
		return nil, err
	}
	store, err := population.ForStates(torus.Size(), preset.States)
	if err != nil {
		return nil, err
	}
	w := &World{Preset: preset, Torus: torus, cfg: cfg}
	seeder, err := w.Seeder(cfg.Seed)
	if err != nil {
		return nil, err
	}
	opts = append([]universe.Option{universe.WithName(preset.Name), universe.WithSeeder(seeder)}, opts...)
	u, err := universe.New(torus, store, preset.Sampler, opts...)
	if err != nil {
		return nil, err
	}
	u.Initialise()
	w.Universe = u
	return w, nil
}

// ResolvePreset looks up a registered preset, treating B/S notation as the
// life preset with that rule.
func ResolvePreset(rule string, options map[string]string) (core.Preset, error) {
	name := rule
	cfg := make(map[string]string, len(options)+1)
	for k, v := range options {
		cfg[k] = v
	}
	if strings.Contains(rule, "/") {
		name = "life"
		cfg["rule"] = rule
	}
	factory, ok := core.Lookup(name)
	if !ok {
		return core.Preset{}, core.Malformed("unknown rule %q (known: %s)", rule, strings.Join(core.Presets(), ", "))
	}
	preset, err := factory(cfg)
	if err != nil {
		return core.Preset{}, err
	}
	if preset.Sampler == nil || preset.Rule == nil {
		return core.Preset{}, core.InvalidDependency("preset %q lacks a sampler or rule", name)
	}
	if preset.Name == "" {
		preset.Name = name
	}
	return preset, nil
}

// Seeder builds the configured initial pattern for seed.
func (w *World) Seeder(seed int64) (core.Seeder, error) {
	dims := w.Torus.Dims()
	switch w.cfg.Pattern {
	case "", "random":
		if w.Preset.States > 2 {
			return population.Random(seed, w.Preset.States), nil
		}
		return population.Density(seed, w.cfg.Density), nil
	case "empty":
		return population.Fill(0), nil
	case "full":
		return population.Fill(1), nil
	case "center":
		center := make(core.Coord, len(dims))
		for i, d := range dims {
			center[i] = d / 2
		}
		return w.Torus.Pattern(1, center)
	case "glider", "blinker":
		if len(dims) != 2 {
			return nil, core.Malformed("pattern %q needs a rank-2 preset", w.cfg.Pattern)
		}
		cx, cy := dims[0]/2, dims[1]/2
		shape := [][2]int{{0, -1}, {0, 0}, {0, 1}}
		if w.cfg.Pattern == "glider" {
			shape = [][2]int{{-1, 0}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
		}
		coords := make([]core.Coord, len(shape))
		for i, s := range shape {
			coords[i] = core.Coord{cx + s[0], cy + s[1]}
		}
		return w.Torus.Pattern(1, coords...)
	default:
		return nil, core.Malformed("unknown pattern %q", w.cfg.Pattern)
	}
}

func dimsFor(p core.Preset, cfg Config) (core.Dims, error) {
	switch p.Rank {
	case 1:
		return core.Dims{cfg.Width}, nil
	case 2:
		return core.Dims{cfg.Width, cfg.Height}, nil
	default:
		return nil, core.Malformed("preset %q has unsupported rank %d", p.Name, p.Rank)
	}
}

// stepBudget caps due so a universe at generation never passes limit
// generations. A negative limit never caps.
func stepBudget(due int, generation uint64, limit int) int {
	if limit < 0 {
		return due
	}
	if generation >= uint64(limit) {
		return 0
	}
	return min(due, int(uint64(limit)-generation))
}
