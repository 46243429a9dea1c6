package ga

import (
	"math/rand"

	"github.com/katalvlaran/tspga/chromosome"
	"github.com/katalvlaran/tspga/tsperr"
)

// Mutate produces one offspring from t by segment-inversion-plus-
// displacement, per spec.md §4.7:
//  1. choose distinct positions a < b (excluding position 0 if origin fixed)
//  2. reverse the sub-sequence [a,b]
//  3. remove that block and reinsert it at a random displacement position
//
// Complexity: O(N²), dominated by the SameGenes gene-multiset check.
func Mutate(t chromosome.Tour, cfg GAConfig, rng *rand.Rand) (chromosome.Tour, error) {
	n := len(t)
	lo := 0
	if cfg.HasFixedOrigin() {
		lo = 1
	}

	a, b := choosePositions(lo, n, rng)

	work := t.Clone()
	reverseSegment(work, a, b)

	block := make([]int, b-a+1)
	copy(block, work[a:b+1])
	rest := make([]int, 0, n-len(block))
	rest = append(rest, work[:a]...)
	rest = append(rest, work[b+1:]...)

	// displacement position: [1,len(rest)] fixed-origin (never before index
	// 0), [0,len(rest)] otherwise.
	insLo := 0
	if cfg.HasFixedOrigin() {
		insLo = 1
	}
	insPos := insLo + rng.Intn(len(rest)-insLo+1)

	out := make([]int, 0, n)
	out = append(out, rest[:insPos]...)
	out = append(out, block...)
	out = append(out, rest[insPos:]...)

	mutant := chromosome.New(out)
	if !chromosome.SameGenes(t, mutant) {
		return nil, tsperr.ErrMutationGeneCountMismatch
	}
	return mutant, nil
}

// choosePositions draws two distinct positions in [lo,n) and returns them
// sorted ascending.
func choosePositions(lo, n int, rng *rand.Rand) (int, int) {
	a := lo + rng.Intn(n-lo)
	b := lo + rng.Intn(n-lo)
	for b == a {
		b = lo + rng.Intn(n-lo)
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}

func reverseSegment(t chromosome.Tour, a, b int) {
	for a < b {
		t[a], t[b] = t[b], t[a]
		a++
		b--
	}
}

// Crossover takes an ordered pair (A,B) and returns an ordered pair (A',B')
// by the position-based partial scheme of spec.md §4.7: L distinct loci
// (excluding position 0 when origin is fixed) are selected; each child
// starts as a copy of its like-indexed parent with the other parent's gene
// at each locus punched out as a hole, then holes are refilled in ascending
// locus order from the other parent's genes at those loci.
//
// Complexity: O(N²), dominated by sorting the loci and the SameGenes checks.
func Crossover(a, b chromosome.Tour, cfg GAConfig, rng *rand.Rand) (chromosome.Tour, chromosome.Tour, error) {
	n := len(a)
	lo := 0
	if cfg.HasFixedOrigin() {
		lo = 1
	}

	span := n - lo
	l := 1 + rng.Intn(span) // random(1, span): at least 1, at most span.
	loci := chooseLoci(lo, n, l, rng)

	childA, holesA, err := punchHoles(a, b, loci)
	if err != nil {
		return nil, nil, err
	}
	childB, holesB, err := punchHoles(b, a, loci)
	if err != nil {
		return nil, nil, err
	}

	if len(holesA) != len(loci) || len(holesB) != len(loci) {
		return nil, nil, tsperr.ErrCrossoverHoleMismatch
	}

	fillHoles(childA, holesA, loci, b)
	fillHoles(childB, holesB, loci, a)

	ca := chromosome.New(childA)
	cb := chromosome.New(childB)
	if !chromosome.SameGenes(a, ca) || !chromosome.SameGenes(b, cb) {
		return nil, nil, tsperr.ErrCrossoverHoleMismatch
	}
	return ca, cb, nil
}

const holeMarker = -1

// chooseLoci draws l distinct positions from [lo,n) without replacement.
func chooseLoci(lo, n, l int, rng *rand.Rand) []int {
	pool := make([]int, 0, n-lo)
	for i := lo; i < n; i++ {
		pool = append(pool, i)
	}
	shuffle(pool, rng)
	loci := append([]int(nil), pool[:l]...)
	sortInts(loci)
	return loci
}

// punchHoles copies self, then for each locus replaces self's gene with a
// hole marker (deleting other's gene at that locus from self), returning
// the resulting slice and the list of hole positions in ascending order.
func punchHoles(self, other chromosome.Tour, loci []int) ([]int, []int, error) {
	child := make([]int, len(self))
	copy(child, self)

	otherGenes := make(map[int]bool, len(loci))
	for _, locus := range loci {
		otherGenes[other[locus]] = true
	}

	var holes []int
	for i, gene := range child {
		if otherGenes[gene] {
			child[i] = holeMarker
			holes = append(holes, i)
		}
	}
	if len(holes) != len(loci) {
		return nil, nil, tsperr.ErrCrossoverHoleMismatch
	}
	return child, holes, nil
}

// fillHoles iterates loci in ascending order, filling the first remaining
// hole in child with other[locus], per spec.md §4.7 step 3.
func fillHoles(child []int, holes []int, loci []int, other chromosome.Tour) {
	next := 0
	for _, locus := range loci {
		child[holes[next]] = other[locus]
		next++
	}
}

// sortInts is a small ascending insertion sort, matching the helper already
// used in package chromosome for the same reason: a single call site too
// small to justify importing sort.
func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
