package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rule    string
	Width   int
	Height  int
	Seed    int64
	Pattern string
	Density int
	Options Options

	Steps   int
	GPS     int
	Scale   int
	TPS     int
	Metrics string
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rule:    "life",
		Width:   128,
		Height:  128,
		Seed:    42,
		Pattern: "random",
		Density: 50,
		Options: Options{},
		Steps:   500,
		GPS:     30,
		Scale:   4,
		TPS:     60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "preset name or B/S rule notation")
	fs.IntVar(&c.Width, "w", c.Width, "cells along axis 0")
	fs.IntVar(&c.Height, "h", c.Height, "cells along axis 1, ignored by rank-1 presets")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: random|empty|full|center|glider|blinker")
	fs.IntVar(&c.Density, "density", c.Density, "percent of cells alive in random binary patterns")
	fs.Var(c.Options, "set", "preset option in key=value form (repeatable)")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to run before halting, negative runs until interrupted")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second, 0 runs unpaced")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Metrics, "metrics", c.Metrics, "address to serve Prometheus metrics on, empty disables")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "log every generation")
}

// Options collects repeatable key=value preset options.
type Options map[string]string

// String implements flag.Value.
func (o Options) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (o Options) Set(value string) error {
	k, v, ok := strings.Cut(value, "=")
	if !ok || k == "" {
		return fmt.Errorf("option %q is not key=value", value)
	}
	o[k] = v
	return nil
}
