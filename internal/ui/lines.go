// Package ui draws status information over the simulation view.
package ui

import "torus-ca/internal/core"

// Lines flattens a parameter snapshot into "Label: value" rows.
func Lines(snap core.ParameterSnapshot) []string {
	var out []string
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			out = append(out, p.Label+": "+p.Value)
		}
	}
	return out
}
