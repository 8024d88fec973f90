package img2ascii

import (
	"fmt"
	"sort"
)

// Printable ASCII bounds accepted in character ranges.
const (
	FirstPrintable rune = 32
	LastPrintable  rune = 126
)

// CharacterSet is a set of runes iterated in ascending code point order.
// Its version changes on every mutation that alters membership.
type CharacterSet struct {
	members map[rune]struct{}
	version uint64
}

// NewCharacterSet returns a set holding runes.
func NewCharacterSet(runes ...rune) *CharacterSet {
	cs := &CharacterSet{members: make(map[rune]struct{})}
	for _, r := range runes {
		cs.members[r] = struct{}{}
	}
	return cs
}

// ParseCharRange parses a range expression: a single printable character,
// "space", "all" (every printable ASCII character) or "x-y" with both ends
// printable, in either order.
func ParseCharRange(s string) (lo, hi rune, err error) {
	r := []rune(s)
	switch {
	case len(r) == 1 && isPrintable(r[0]):
		return r[0], r[0], nil
	case s == "space":
		return ' ', ' ', nil
	case s == "all":
		return FirstPrintable, LastPrintable, nil
	case len(r) == 3 && r[1] == '-' && isPrintable(r[0]) && isPrintable(r[2]):
		lo, hi = r[0], r[2]
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo, hi, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCharRange, s)
}

func isPrintable(r rune) bool {
	return r >= FirstPrintable && r <= LastPrintable
}

// Add inserts every rune in [lo, hi].
func (cs *CharacterSet) Add(lo, hi rune) {
	changed := false
	for r := lo; r <= hi; r++ {
		if _, ok := cs.members[r]; !ok {
			cs.members[r] = struct{}{}
			changed = true
		}
	}
	if changed {
		cs.version++
	}
}

// Remove deletes every rune in [lo, hi].
func (cs *CharacterSet) Remove(lo, hi rune) {
	changed := false
	for r := lo; r <= hi; r++ {
		if _, ok := cs.members[r]; ok {
			delete(cs.members, r)
			changed = true
		}
	}
	if changed {
		cs.version++
	}
}

// AddRange parses expr with ParseCharRange and adds the result.
func (cs *CharacterSet) AddRange(expr string) error {
	lo, hi, err := ParseCharRange(expr)
	if err != nil {
		return err
	}
	cs.Add(lo, hi)
	return nil
}

// RemoveRange parses expr with ParseCharRange and removes the result.
func (cs *CharacterSet) RemoveRange(expr string) error {
	lo, hi, err := ParseCharRange(expr)
	if err != nil {
		return err
	}
	cs.Remove(lo, hi)
	return nil
}

// Contains reports whether r is in the set.
func (cs *CharacterSet) Contains(r rune) bool {
	_, ok := cs.members[r]
	return ok
}

// Len returns the number of runes in the set.
func (cs *CharacterSet) Len() int {
	return len(cs.members)
}

// Runes returns the members in ascending code point order.
func (cs *CharacterSet) Runes() []rune {
	runes := make([]rune, 0, len(cs.members))
	for r := range cs.members {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// Version returns a counter that changes whenever membership changes.
func (cs *CharacterSet) Version() uint64 {
	return cs.version
}
