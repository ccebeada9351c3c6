package core

import "sort"

// Preset bundles the local plugins of a named automaton: how neighbors are
// sampled, how states transition, and how many states a cell can hold.
type Preset struct {
	Name    string
	Rank    int
	States  int
	Sampler Sampler
	Rule    Rule
}

// Factory builds a Preset from an optional flag-style configuration map.
type Factory func(cfg map[string]string) (Preset, error)

var presets = map[string]Factory{}

// Register adds a preset factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := presets[name]
	return f, ok
}

// Presets lists registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
