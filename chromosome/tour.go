// Package chromosome provides the tour representation shared by every GA
// component: an ordered sequence of N distinct node indices, optionally
// pinned at a fixed origin in position 0 (spec.md §3/§4.3).
//
// Design: tours are ordered sequences, not sets. A canonical byte/string form
// (Key) is exposed purely as a uniqueness scaffold for population
// de-duplication — it is never relied on for iteration order. This mirrors
// the teacher's tsp/tour.go permutation helpers, adapted from a closed
// (n+1)-length cycle representation to spec.md's open n-length, fixed-origin
// representation.
package chromosome

import (
	"fmt"
	"strconv"
	"strings"
)

// Tour is an ordered sequence of N distinct node indices in [0,N).
type Tour []int

// New returns a Tour wrapping a copy of perm, so the caller's slice may be
// reused or mutated afterwards without affecting the returned Tour.
//
// Complexity: O(n).
func New(perm []int) Tour {
	t := make(Tour, len(perm))
	copy(t, perm)
	return t
}

// Clone returns an independent copy of t.
//
// Complexity: O(n).
func (t Tour) Clone() Tour {
	return New(t)
}

// Key returns the canonical string form of t, used as a map key for
// population de-duplication. Two tours are equal iff their Keys are equal.
//
// Complexity: O(n).
func (t Tour) Key() string {
	var sb strings.Builder
	for i, v := range t {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// Equal reports whether t and other have element-wise identical sequences.
//
// Complexity: O(n).
func (t Tour) Equal(other Tour) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// ValidatePermutation checks that t is a permutation of [0,n) of length n,
// and, when hasOrigin is set, that t[0] == origin.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(t Tour, n int, hasOrigin bool, origin int) error {
	if len(t) != n {
		return fmt.Errorf("chromosome: tour has length %d, want %d", len(t), n)
	}
	seen := make([]bool, n)
	for _, v := range t {
		if v < 0 || v >= n {
			return fmt.Errorf("chromosome: gene %d out of range [0,%d)", v, n)
		}
		if seen[v] {
			return fmt.Errorf("chromosome: gene %d repeated", v)
		}
		seen[v] = true
	}
	if hasOrigin && (len(t) == 0 || t[0] != origin) {
		return fmt.Errorf("chromosome: fixed origin violated: tour=%v, want tour[0]=%d", t, origin)
	}
	return nil
}

// SameGenes reports whether a and b carry the same multiset of genes,
// irrespective of order — the invariant mutation and crossover must preserve.
//
// Complexity: O(n²) (insertion sort of both copies).
func SameGenes(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}
	ca := a.Clone()
	cb := b.Clone()
	sortInts(ca)
	sortInts(cb)
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}
	return true
}

func sortInts(s []int) {
	// Small n (<=100 per spec.md GAConfig.dimension); insertion sort is simple
	// and fast enough, and keeps this package free of a sort-package
	// dependency for a single call site.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
