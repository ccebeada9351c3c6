package life

import (
	"errors"
	"testing"

	"torus-ca/internal/core"
	"torus-ca/internal/neighborhood"
)

func moore(t *testing.T, grid [3][3]core.State) core.Snapshot {
	t.Helper()
	s, err := neighborhood.Moore(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	return s.Sample(func(off core.Coord) core.State { return grid[off[0]+1][off[1]+1] })
}

func TestConwayTransitions(t *testing.T) {
	r := Conway()
	cases := []struct {
		name string
		grid [3][3]core.State
		want core.State
	}{
		{"dead with three is born", [3][3]core.State{{1, 1, 1}, {0, 0, 0}, {0, 0, 0}}, 1},
		{"dead with two stays dead", [3][3]core.State{{1, 1, 0}, {0, 0, 0}, {0, 0, 0}}, 0},
		{"alive with two survives", [3][3]core.State{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"alive with three survives", [3][3]core.State{{1, 0, 1}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"alive with one dies", [3][3]core.State{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}}, 0},
		{"alive with four dies", [3][3]core.State{{1, 1, 1}, {1, 1, 0}, {0, 0, 0}}, 0},
		{"self is not a neighbor", [3][3]core.State{{1, 1, 0}, {0, 1, 0}, {0, 0, 0}}, 1},
	}
	for _, tc := range cases {
		if got := r.Next(moore(t, tc.grid)); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestNextLeavesSnapshotUntouched(t *testing.T) {
	snap := moore(t, [3][3]core.State{{1, 1, 1}, {0, 1, 0}, {0, 0, 0}})
	before := append([]core.State(nil), snap.States...)
	Conway().Next(snap)
	for i := range before {
		if snap.States[i] != before[i] {
			t.Fatalf("rule modified snapshot at %d", i)
		}
	}
}

func TestParse(t *testing.T) {
	for notation, want := range map[string]string{
		"B3/S23":       "B3/S23",
		"s23/b36":      "B36/S23",
		"B2/S":         "B2/S",
		"B3678/S34678": "B3678/S34678",
	} {
		r, err := Parse(notation)
		if err != nil {
			t.Fatalf("Parse(%q): %v", notation, err)
		}
		if r.String() != want {
			t.Fatalf("Parse(%q) = %s, want %s", notation, r, want)
		}
	}
	for _, bad := range []string{"", "B3", "B3/X2", "B3/S2a", "B3/B3", "/S23"} {
		if _, err := Parse(bad); !errors.Is(err, core.ErrMalformedConfiguration) {
			t.Fatalf("Parse(%q): expected malformed configuration, got %v", bad, err)
		}
	}
}

func TestPresetsRegistered(t *testing.T) {
	for _, name := range []string{"life", "highlife", "seeds", "daynight"} {
		f, ok := core.Lookup(name)
		if !ok {
			t.Fatalf("preset %q not registered", name)
		}
		p, err := f(nil)
		if err != nil {
			t.Fatalf("preset %q: %v", name, err)
		}
		if p.Rank != 2 || p.States != 2 || p.Sampler == nil || p.Rule == nil {
			t.Fatalf("preset %q incomplete: %+v", name, p)
		}
	}
	f, _ := core.Lookup("life")
	p, err := f(map[string]string{"rule": "B36/S23", "neighborhood": "hex"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Rule.(*Rule).String() != "B36/S23" {
		t.Fatalf("rule override ignored: %v", p.Rule)
	}
	if _, err := f(map[string]string{"neighborhood": "triangle"}); err == nil {
		t.Fatal("unknown neighborhood must fail")
	}
}
