package life

import (
	"fmt"
	"strings"
)

// MaxNeighbors is the size of the Moore neighbourhood.
const MaxNeighbors = 8

// Rule is an outer-totalistic birth/survive rule. Bit n of each mask is set
// when a neighbour count of n triggers the transition.
type Rule struct {
	birth   uint16
	survive uint16
}

// Conway is the classic B3/S23 rule.
var Conway = Rule{birth: 1 << 3, survive: 1<<2 | 1<<3}

// NewRule builds a Rule from birth and survive neighbour counts. Duplicates
// are ignored; any count outside [0,8] yields ErrInvalidRule.
func NewRule(birth, survive []int) (Rule, error) {
	var r Rule
	for _, n := range birth {
		if n < 0 || n > MaxNeighbors {
			return Rule{}, fmt.Errorf("%w: birth count %d outside [0,%d]", ErrInvalidRule, n, MaxNeighbors)
		}
		r.birth |= 1 << n
	}
	for _, n := range survive {
		if n < 0 || n > MaxNeighbors {
			return Rule{}, fmt.Errorf("%w: survive count %d outside [0,%d]", ErrInvalidRule, n, MaxNeighbors)
		}
		r.survive |= 1 << n
	}
	return r, nil
}

// MustRule is like NewRule but panics on invalid input. Intended for static
// preset tables.
func MustRule(birth, survive []int) Rule {
	r, err := NewRule(birth, survive)
	if err != nil {
		panic(err)
	}
	return r
}

// Applies reports the next state of a cell with the given current state and
// live neighbour count.
func (r Rule) Applies(alive bool, neighbors int) bool {
	if alive {
		return r.survive&(1<<neighbors) != 0
	}
	return r.birth&(1<<neighbors) != 0
}

// Birth returns the birth counts in ascending order.
func (r Rule) Birth() []int { return maskCounts(r.birth) }

// Survive returns the survive counts in ascending order.
func (r Rule) Survive() []int { return maskCounts(r.survive) }

// String renders the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, n := range r.Birth() {
		b.WriteByte(byte('0' + n))
	}
	b.WriteString("/S")
	for _, n := range r.Survive() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// ParseRule parses B/S notation such as "B3/S23" or "s23/b3". Either part may
// list no digits.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w: %q is not in B/S notation", ErrInvalidRule, s)
	}
	var birth, survive []int
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return Rule{}, fmt.Errorf("%w: %q has an empty section", ErrInvalidRule, s)
		}
		counts, err := parseCounts(part[1:])
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %q: %v", ErrInvalidRule, s, err)
		}
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return Rule{}, fmt.Errorf("%w: %q repeats the birth section", ErrInvalidRule, s)
			}
			seenB, birth = true, counts
		case 'S', 's':
			if seenS {
				return Rule{}, fmt.Errorf("%w: %q repeats the survive section", ErrInvalidRule, s)
			}
			seenS, survive = true, counts
		default:
			return Rule{}, fmt.Errorf("%w: %q: section must start with B or S", ErrInvalidRule, s)
		}
	}
	return NewRule(birth, survive)
}

func parseCounts(digits string) ([]int, error) {
	counts := make([]int, 0, len(digits))
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("unexpected character %q", ch)
		}
		counts = append(counts, int(ch-'0'))
	}
	return counts, nil
}

func maskCounts(mask uint16) []int {
	counts := []int{}
	for n := 0; n <= MaxNeighbors; n++ {
		if mask&(1<<n) != 0 {
			counts = append(counts, n)
		}
	}
	return counts
}
