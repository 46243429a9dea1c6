package ga

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/tspga/chromosome"
	"github.com/katalvlaran/tspga/costtable"
)

// Population is a set of distinct chromosomes, uniqueness keyed on the
// ordered sequence (spec.md §3).
type Population []chromosome.Tour

// SeedPopulation builds the initial population: an NNA pool plus a random
// pool, deduplicated against each other, per spec.md §4.4.
//
// Complexity: O(N²) per NNA tour built (duplicates are rebuilt), plus O(N)
// per random tour drawn, O(P * N) expected for the random pool.
func SeedPopulation(cfg GAConfig, costs *costtable.CostTable, rng *rand.Rand) Population {
	target := cfg.PopulationSize
	nnaTarget := nnaPoolSize(cfg)

	seen := make(map[string]bool, target)
	pop := make(Population, 0, target)

	for len(pop) < nnaTarget {
		t := buildNNATour(cfg, costs, rng)
		key := t.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		pop = append(pop, t)
	}

	for len(pop) < target {
		t := randomTour(cfg, rng)
		key := t.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		pop = append(pop, t)
	}

	return pop
}

// nnaPoolSize computes round(nnaPercentage*P/100), capped at N-1 with a
// fixed origin (else N), per spec.md §4.4.
func nnaPoolSize(cfg GAConfig) int {
	raw := math.Round(float64(cfg.PopulationSize) * float64(cfg.NNAPercentage) / 100.0)
	n := int(raw)

	limit := cfg.Dimension
	if cfg.HasFixedOrigin() {
		limit = cfg.Dimension - 1
	}
	if n > limit {
		n = limit
	}
	if n < 0 {
		n = 0
	}
	return n
}

// buildNNATour constructs one nearest-neighbor chromosome: the fixed origin
// (if any) is placed first, then a random unvisited start, then each
// successive node is the minimum-cost unvisited neighbor of the current
// tail, ties broken by scan order.
func buildNNATour(cfg GAConfig, costs *costtable.CostTable, rng *rand.Rand) chromosome.Tour {
	n := cfg.Dimension
	visited := make([]bool, n)
	tour := make([]int, 0, n)

	if cfg.HasFixedOrigin() {
		tour = append(tour, cfg.FixedOriginIndex)
		visited[cfg.FixedOriginIndex] = true
	}

	candidates := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !visited[i] {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) > 0 {
		start := candidates[rng.Intn(len(candidates))]
		tour = append(tour, start)
		visited[start] = true
	}

	for len(tour) < n {
		tail := tour[len(tour)-1]
		row, err := costs.Row(tail)
		if err != nil {
			// costs is built for exactly [0,n); tail is always in range.
			panic("ga: unreachable: " + err.Error())
		}
		best := -1
		bestCost := math.Inf(1)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if row[j] < bestCost {
				bestCost = row[j]
				best = j
			}
		}
		tour = append(tour, best)
		visited[best] = true
	}

	return chromosome.New(tour)
}

// randomTour returns a uniform random permutation with the fixed origin (if
// any) pinned at position 0.
func randomTour(cfg GAConfig, rng *rand.Rand) chromosome.Tour {
	n := cfg.Dimension
	if !cfg.HasFixedOrigin() {
		return chromosome.New(permRange(n, rng))
	}

	free := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != cfg.FixedOriginIndex {
			free = append(free, i)
		}
	}
	shuffle(free, rng)

	tour := make([]int, 0, n)
	tour = append(tour, cfg.FixedOriginIndex)
	tour = append(tour, free...)
	return chromosome.New(tour)
}
