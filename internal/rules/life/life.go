// Package life implements Conway's Game of Life and the Life-like family of
// two-state birth/survival rules.
package life

import (
	"strconv"
	"strings"

	"torus-ca/internal/core"
)

// maxNeighbors bounds the neighbor sums a rule can express.
const maxNeighbors = 63

// Rule is a two-state totalistic rule. A dead cell is born when the sum of
// its neighbors is in the birth set; a live cell survives when the sum is in
// the survival set. The cell itself never counts toward the sum.
type Rule struct {
	birth   uint64
	survive uint64
}

// Conway returns B3/S23.
func Conway() *Rule {
	return &Rule{birth: 1 << 3, survive: 1<<2 | 1<<3}
}

// New builds a rule from explicit birth and survival counts.
func New(birth, survive []int) (*Rule, error) {
	r := &Rule{}
	for _, n := range birth {
		if n < 0 || n > maxNeighbors {
			return nil, core.Malformed("birth count %d", n)
		}
		r.birth |= 1 << n
	}
	for _, n := range survive {
		if n < 0 || n > maxNeighbors {
			return nil, core.Malformed("survival count %d", n)
		}
		r.survive |= 1 << n
	}
	return r, nil
}

// Parse reads B/S notation such as "B3/S23" or "S23/B36". Either half may be
// empty ("B2/S" is Seeds).
func Parse(notation string) (*Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(notation)), "/")
	if len(parts) != 2 {
		return nil, core.Malformed("rule %q is not B/S notation", notation)
	}
	var birth, survive []int
	var haveB, haveS bool
	for _, part := range parts {
		if part == "" {
			return nil, core.Malformed("rule %q has an empty half", notation)
		}
		digits, err := parseDigits(part[1:])
		if err != nil {
			return nil, core.Malformed("rule %q: %v", notation, err)
		}
		switch part[0] {
		case 'B':
			birth, haveB = digits, true
		case 'S':
			survive, haveS = digits, true
		default:
			return nil, core.Malformed("rule %q: unexpected %q", notation, part[0])
		}
	}
	if !haveB || !haveS {
		return nil, core.Malformed("rule %q needs both B and S", notation)
	}
	return New(birth, survive)
}

func parseDigits(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, r := range s {
		n, err := strconv.Atoi(string(r))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// States reports that cells are either dead (0) or alive (1).
func (r *Rule) States() int { return 2 }

// Next returns the cell's state in the following generation.
func (r *Rule) Next(s core.Snapshot) core.State {
	self, _ := s.Self()
	sum := 0
	for i, v := range s.States {
		if i == s.Center {
			continue
		}
		sum += int(v)
	}
	if sum > maxNeighbors {
		return 0
	}
	set := r.birth
	if self != 0 {
		set = r.survive
	}
	if set&(1<<sum) != 0 {
		return 1
	}
	return 0
}

// String formats the rule in B/S notation.
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.birth)
	b.WriteString("/S")
	writeCounts(&b, r.survive)
	return b.String()
}

func writeCounts(b *strings.Builder, set uint64) {
	for n := 0; n <= maxNeighbors; n++ {
		if set&(1<<n) != 0 {
			b.WriteString(strconv.Itoa(n))
		}
	}
}
