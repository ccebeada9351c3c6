package life

import (
	"strconv"

	"torus-ca/internal/core"
	"torus-ca/internal/neighborhood"
)

// Config selects the rule notation and neighborhood for a Life-like preset.
type Config struct {
	Notation     string
	Neighborhood string
	Radius       int
}

// DefaultConfig returns Conway's rule over the 3x3 Moore block.
func DefaultConfig() Config {
	return Config{Notation: "B3/S23", Neighborhood: "moore", Radius: 1}
}

// FromMap populates a Config from a string map, starting from base.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Notation = v
	}
	if v, ok := cfg["neighborhood"]; ok && v != "" {
		c.Neighborhood = v
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Radius = parsed
		}
	}
	return c
}

// Preset builds the 2D preset described by c.
func (c Config) Preset(name string) (core.Preset, error) {
	rule, err := Parse(c.Notation)
	if err != nil {
		return core.Preset{}, err
	}
	shape, err := neighborhood.ByName(c.Neighborhood, 2, c.Radius)
	if err != nil {
		return core.Preset{}, err
	}
	return core.Preset{Name: name, Rank: 2, States: 2, Sampler: shape, Rule: rule}, nil
}

func register(name, notation string) {
	base := DefaultConfig()
	base.Notation = notation
	core.Register(name, func(cfg map[string]string) (core.Preset, error) {
		return FromMap(base, cfg).Preset(name)
	})
}

func init() {
	register("life", "B3/S23")
	register("highlife", "B36/S23")
	register("seeds", "B2/S")
	register("daynight", "B3678/S34678")
}
