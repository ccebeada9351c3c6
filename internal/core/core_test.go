package core

import (
	"errors"
	"testing"
	"time"
)

func TestDimsValidate(t *testing.T) {
	if err := (Dims{3, 4}).Validate(); err != nil {
		t.Fatalf("valid dims rejected: %v", err)
	}
	for _, d := range []Dims{nil, {0, 4}, {3, -1}} {
		if err := d.Validate(); !errors.Is(err, ErrMalformedConfiguration) {
			t.Fatalf("dims %v: expected malformed configuration, got %v", d, err)
		}
	}
	if got := (Dims{3, 4, 2}).Cells(); got != 24 {
		t.Fatalf("expected 24 cells, got %d", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	s := Snapshot{
		Offsets: []Coord{{-1, 0}, {0, 0}, {1, 0}},
		States:  []State{1, 2, 3},
		Center:  1,
	}
	if self, ok := s.Self(); !ok || self != 2 {
		t.Fatalf("expected self 2, got %d ok=%v", self, ok)
	}
	if v, ok := s.At(Coord{1, 0}); !ok || v != 3 {
		t.Fatalf("expected 3 at (1,0), got %d ok=%v", v, ok)
	}
	if _, ok := s.At(Coord{0, 1}); ok {
		t.Fatal("unsampled offset must not be found")
	}
	s.Center = -1
	if _, ok := s.Self(); ok {
		t.Fatal("snapshot without center must not report self")
	}
}

func TestOutOfRangePanicsWithSentinel(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("expected ErrOutOfRange panic, got %v", err)
		}
	}()
	OutOfRange("address %d", 9)
}

func TestFixedStepDue(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if got := fs.Due(); got != 1 {
		t.Fatalf("first call should report one step, got %d", got)
	}
	now = now.Add(50 * time.Millisecond)
	if got := fs.Due(); got != 0 {
		t.Fatalf("half a step elapsed, got %d", got)
	}
	now = now.Add(250 * time.Millisecond)
	if got := fs.Due(); got != 3 {
		t.Fatalf("expected three steps after 300ms, got %d", got)
	}
	now = now.Add(10 * time.Second)
	if got := fs.Due(); got != maxCatchUp {
		t.Fatalf("expected catch-up cap %d, got %d", maxCatchUp, got)
	}
	if fs.Rate() != 10 {
		t.Fatalf("expected rate 10, got %d", fs.Rate())
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.State(3), b.State(3); x != y || x >= 3 {
			t.Fatalf("draw %d: %d vs %d", i, x, y)
		}
	}
	if NewRNG(1).Chance(0) || !NewRNG(1).Chance(100) {
		t.Fatal("chance bounds not honored")
	}
}

func TestRegistry(t *testing.T) {
	Register("test-preset", func(map[string]string) (Preset, error) {
		return Preset{Name: "test-preset", Rank: 2, States: 2}, nil
	})
	Register("", nil)
	f, ok := Lookup("test-preset")
	if !ok {
		t.Fatal("registered preset not found")
	}
	p, err := f(nil)
	if err != nil || p.Name != "test-preset" {
		t.Fatalf("unexpected preset %+v err=%v", p, err)
	}
	found := false
	for _, name := range Presets() {
		if name == "test-preset" {
			found = true
		}
		if name == "" {
			t.Fatal("empty name must not register")
		}
	}
	if !found {
		t.Fatal("Presets missing registered name")
	}
}
