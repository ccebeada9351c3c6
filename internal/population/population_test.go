package population

import (
	"errors"
	"testing"

	"torus-ca/internal/core"
)

func mustNew(t *testing.T, size, width int) *Bits {
	t.Helper()
	b, err := New(size, width)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", size, width, err)
	}
	return b
}

func snapshot(b *Bits) []core.State {
	out := make([]core.State, b.Size())
	for i := range out {
		out[i] = b.Read(i)
	}
	return out
}

func expectPanic(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, sentinel) {
			t.Fatalf("expected panic wrapping %v, got %v", sentinel, err)
		}
	}()
	fn()
}

func TestNewRejectsMalformedSizes(t *testing.T) {
	for _, tc := range []struct{ size, width int }{{0, 1}, {-3, 1}, {10, 0}, {10, 9}} {
		if _, err := New(tc.size, tc.width); !errors.Is(err, core.ErrMalformedConfiguration) {
			t.Fatalf("New(%d, %d): expected malformed configuration, got %v", tc.size, tc.width, err)
		}
	}
	if _, err := ForStates(10, 1); !errors.Is(err, core.ErrMalformedConfiguration) {
		t.Fatalf("ForStates with one state: got %v", err)
	}
}

func TestWidthFor(t *testing.T) {
	cases := map[int]int{2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 256: 8}
	for states, want := range cases {
		if got := WidthFor(states); got != want {
			t.Fatalf("WidthFor(%d) = %d, want %d", states, got, want)
		}
	}
}

func TestReadsObserveActiveUntilCommit(t *testing.T) {
	b := mustNew(t, 10, 1)
	b.Seed(Addresses(1, 3))
	b.Write(3, 0)
	b.Write(4, 1)
	if b.Read(3) != 1 || b.Read(4) != 0 {
		t.Fatal("writes must not be visible before commit")
	}
	b.Commit()
	if b.Read(3) != 0 || b.Read(4) != 1 {
		t.Fatalf("commit did not publish staged writes: %v", snapshot(b))
	}
}

func TestWriteAssignsWithoutTouchingNeighbours(t *testing.T) {
	for _, width := range []int{1, 2, 3, 5, 8} {
		size := 70
		b := mustNew(t, size, width)
		top := core.State(1<<width - 1)
		want := make([]core.State, size)
		for i := range want {
			want[i] = core.State(i*7) & top
		}
		// Write a wrong value first, then overwrite: last write must win.
		for i := range want {
			b.Write(i, top)
		}
		for i := size - 1; i >= 0; i-- {
			b.Write(i, want[i])
		}
		b.Commit()
		for i, v := range snapshot(b) {
			if v != want[i] {
				t.Fatalf("width %d: cell %d = %d, want %d", width, i, v, want[i])
			}
		}
	}
}

func TestCommitClearsStagingTail(t *testing.T) {
	// 130 cells leave a partially used final word.
	b := mustNew(t, 130, 1)
	for i := 0; i < b.Size(); i++ {
		b.Write(i, 1)
	}
	b.Commit()
	if got := b.PopulationCount(); got != 130 {
		t.Fatalf("expected 130 alive, got %d", got)
	}
	b.Commit()
	if got := b.PopulationCount(); got != 0 {
		t.Fatalf("empty staging must commit an empty generation, %d cells survived", got)
	}
	if b.Read(129) != 0 {
		t.Fatal("tail cell kept a stale value")
	}
}

func TestSeedThenIdentitySweepIsIdempotent(t *testing.T) {
	b := mustNew(t, 77, 2)
	b.Seed(Random(42, 4))
	seeded := snapshot(b)
	for i, v := range seeded {
		b.Write(i, v)
	}
	b.Commit()
	for i, v := range snapshot(b) {
		if v != seeded[i] {
			t.Fatalf("cell %d changed from %d to %d", i, seeded[i], v)
		}
	}
}

func TestSeedLeavesStagingUntouched(t *testing.T) {
	b := mustNew(t, 40, 1)
	b.Seed(Fill(1))
	for _, w := range b.staging {
		if w != 0 {
			t.Fatal("seed wrote into staging")
		}
	}
}

func TestPopulationCount(t *testing.T) {
	for _, width := range []int{1, 2, 3} {
		b := mustNew(t, 101, width)
		b.Seed(Fill(1))
		if got := b.PopulationCount(); got != 101 {
			t.Fatalf("width %d: all alive count %d", width, got)
		}
		b.Seed(Fill(0))
		if got := b.PopulationCount(); got != 0 {
			t.Fatalf("width %d: all dead count %d", width, got)
		}
	}
}

func TestRandomSeedDeterministic(t *testing.T) {
	a, c := mustNew(t, 200, 1), mustNew(t, 200, 1)
	a.Seed(Random(9, 2))
	c.Seed(Random(9, 2))
	sa, sc := snapshot(a), snapshot(c)
	for i := range sa {
		if sa[i] != sc[i] {
			t.Fatalf("cell %d differs for equal seeds", i)
		}
	}
	d := mustNew(t, 1000, 1)
	d.Seed(Density(3, 25))
	if n := d.PopulationCount(); n < 150 || n > 350 {
		t.Fatalf("25%% density produced %d alive of 1000", n)
	}
}

func TestOutOfRange(t *testing.T) {
	b := mustNew(t, 8, 1)
	expectPanic(t, core.ErrOutOfRange, func() { b.Read(8) })
	expectPanic(t, core.ErrOutOfRange, func() { b.Write(-1, 1) })
	expectPanic(t, core.ErrOutOfRange, func() { b.Write(0, 2) })
}
