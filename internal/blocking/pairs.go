package blocking

import (
	"cmp"
	"slices"

	"camlink/internal/identification"
)

// Pair is an unordered match between two record ids, stored with Left < Right.
type Pair struct {
	Left  string
	Right string
}

// NewPair orders a and b. It reports false when a and b are the same id.
func NewPair(a, b string) (Pair, bool) {
	switch {
	case a < b:
		return Pair{Left: a, Right: b}, true
	case a > b:
		return Pair{Left: b, Right: a}, true
	default:
		return Pair{}, false
	}
}

// PairSet is a set of pairs.
type PairSet map[Pair]struct{}

// Has reports whether the pair of a and b, in either order, is in the set.
func (s PairSet) Has(a, b string) bool {
	pair, ok := NewPair(a, b)
	if !ok {
		return false
	}
	_, found := s[pair]
	return found
}

// Union adds every pair of other to s and returns s.
func (s PairSet) Union(other PairSet) PairSet {
	for pair := range other {
		s[pair] = struct{}{}
	}
	return s
}

// Sorted returns the pairs ordered by Left, then Right.
func (s PairSet) Sorted() []Pair {
	out := make([]Pair, 0, len(s))
	for pair := range s {
		out = append(out, pair)
	}
	slices.SortFunc(out, func(a, b Pair) int {
		if c := cmp.Compare(a.Left, b.Left); c != 0 {
			return c
		}
		return cmp.Compare(a.Right, b.Right)
	})
	return out
}

// Result holds the pairs found by each blocking pass and their union.
type Result struct {
	Solved   PairSet
	Unsolved PairSet
	All      PairSet
}

// Generate clusters solved records by identity and unsolved records by
// normalized title, and returns the pairs of both passes.
func Generate(solved, unsolved []identification.Record) Result {
	bySolved := BySolvedIdentity(solved).Pairs()
	byTitle := ByNormalizedTitle(unsolved).Pairs()
	all := make(PairSet, len(bySolved)+len(byTitle))
	all.Union(bySolved).Union(byTitle)
	return Result{Solved: bySolved, Unsolved: byTitle, All: all}
}
