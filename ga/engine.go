// Package ga implements the genetic-algorithm engine: population seeding,
// fitness evaluation, selection, variation, survival, and the generational
// state machine that ties them together (spec.md §4.4-§4.9).
//
// The engine is single-threaded cooperative: one Solve call runs without
// internal parallelism, and is cancellable only at generation boundaries.
package ga

import (
	"context"
	"math/rand"
	"time"

	"github.com/katalvlaran/tspga/chromosome"
	"github.com/katalvlaran/tspga/costtable"
)

// SolvedProblem is the terminal record of one solve, per spec.md §3.
type SolvedProblem struct {
	BestTour             chromosome.Tour
	BestCost             float64
	BestCostGeneration   int
	WorstCost            float64
	WorstCostGeneration  int
	BestCostHistory      []float64
	WorstCostHistory     []float64
	TotalGenerations     int
	SolvedInMilliseconds int64
}

// Solve runs the S0 Init -> S1 Evolving state machine described in
// spec.md §4.9 to completion and returns the resulting SolvedProblem.
//
// ctx is consulted only at generation boundaries (spec.md §5); cfg must
// already have passed Normalize.
func Solve(ctx context.Context, cfg GAConfig, costs *costtable.CostTable) (SolvedProblem, error) {
	start := time.Now()
	rng := rngFromSeed(cfg.Seed)

	// S0 Init: seed + evaluate + register first stats.
	pop := SeedPopulation(cfg, costs, rng)
	evaluated, err := Evaluate(pop, costs, cfg)
	if err != nil {
		return SolvedProblem{}, err
	}

	sp := SolvedProblem{}
	generation := 1
	registerStats(&sp, evaluated, generation, start)

	if cfg.IsSmallProblem() {
		return sp, nil
	}

	large := true // IsSmallProblem() is false here, so the space exceeds P.
	prevGen := sortedByFitness(evaluated)

	for {
		if generation >= cfg.MaxGens {
			break
		}
		if generation-sp.BestCostGeneration > cfg.MaxChrAge {
			break
		}
		select {
		case <-ctx.Done():
			return sp, nil
		default:
		}

		genRNG := genStream(rng, generation)
		newPop, err := evolveOnce(cfg, prevGen, large, genRNG)
		if err != nil {
			return SolvedProblem{}, err
		}

		newEvaluated, err := Evaluate(newPop, costs, cfg)
		if err != nil {
			return SolvedProblem{}, err
		}

		survived := Survive(prevGen, newEvaluated, cfg.EliteCount)
		generation++
		registerStats(&sp, survived, generation, start)

		prevGen = survived
	}

	sp.TotalGenerations = generation
	sp.SolvedInMilliseconds = time.Since(start).Milliseconds()
	return sp, nil
}

// evolveOnce builds one new generation: a mutation pool of
// cfg.MutationCount() chromosomes, then crossover offspring filling the
// remainder up to cfg.PopulationSize, per spec.md §4.9 step S1(a)-(b).
func evolveOnce(cfg GAConfig, prevGen EvaluatedPopulation, large bool, rng *rand.Rand) (Population, error) {
	target := cfg.PopulationSize
	admitted := make(map[string]bool, target)
	newPop := make(Population, 0, target)

	var prevKeys map[string]bool
	if large {
		prevKeys = make(map[string]bool, len(prevGen))
		for _, e := range prevGen {
			prevKeys[e.Tour.Key()] = true
		}
	}

	maxAttempts := target * attemptsPerSlot

	mutationTarget := cfg.MutationCount()
	attempts := 0
	for len(newPop) < mutationTarget && attempts < maxAttempts {
		attempts++
		parent, err := SelectRandom(prevGen, rng)
		if err != nil {
			return nil, err
		}
		mutant, err := Mutate(parent.Tour, cfg, rng)
		if err != nil {
			return nil, err
		}
		if !admit(mutant, admitted, prevKeys, large) {
			continue
		}
		newPop = append(newPop, mutant)
	}

	for len(newPop) < target && attempts < maxAttempts {
		attempts++
		a, b, err := SelectRoulette(prevGen, rng)
		if err != nil {
			return nil, err
		}
		childA, childB, err := Crossover(a.Tour, b.Tour, cfg, rng)
		if err != nil {
			return nil, err
		}
		for _, child := range [2]chromosome.Tour{childA, childB} {
			if len(newPop) >= target {
				break
			}
			if !admit(child, admitted, prevKeys, large) {
				continue
			}
			newPop = append(newPop, child)
		}
	}

	// Pad with fresh random tours so the generation still reaches
	// PopulationSize, capped the same way as the two loops above. When
	// prevGen already holds most of a small permutation space, tours
	// disjoint from both newPop and prevGen can run out entirely; retry
	// once allowing repeats against prevGen (still unique within newPop),
	// and if even that is exhausted, shrink the generation instead of
	// spinning forever.
	padAttempts := 0
	maxPadAttempts := (target - len(newPop) + 1) * attemptsPerSlot
	for len(newPop) < target && padAttempts < maxPadAttempts {
		padAttempts++
		t := randomTour(cfg, rng)
		if !admit(t, admitted, prevKeys, large) {
			continue
		}
		newPop = append(newPop, t)
	}

	padAttempts = 0
	for len(newPop) < target && padAttempts < maxPadAttempts {
		padAttempts++
		t := randomTour(cfg, rng)
		if !admit(t, admitted, nil, false) {
			continue
		}
		newPop = append(newPop, t)
	}

	// Free space exhausted even ignoring prevGen overlap: the generation
	// comes up short rather than looping indefinitely. Survival/evaluation
	// operate correctly on a generation smaller than PopulationSize.
	return newPop, nil
}

// attemptsPerSlot bounds how many resampling attempts evolveOnce spends per
// population slot before falling back to fresh random tours.
const attemptsPerSlot = 64

func admit(t chromosome.Tour, admitted, prevKeys map[string]bool, large bool) bool {
	key := t.Key()
	if admitted[key] {
		return false
	}
	if large && prevKeys[key] {
		return false
	}
	admitted[key] = true
	return true
}

// registerStats sorts evaluated ascending by fitness, updates the
// best/worst records if improved, and appends to the history sequences,
// per spec.md §4.9's "Registering stats" rule.
func registerStats(sp *SolvedProblem, evaluated EvaluatedPopulation, generation int, start time.Time) {
	sorted := sortedByFitness(evaluated)
	worst := sorted[0]
	best := sorted[len(sorted)-1]

	bestCost := 1.0 / best.Fitness
	worstCost := 1.0 / worst.Fitness

	if sp.BestCostHistory == nil || bestCost < sp.BestCost {
		sp.BestCost = bestCost
		sp.BestCostGeneration = generation
		sp.BestTour = best.Tour
	}
	if sp.WorstCostHistory == nil || worstCost > sp.WorstCost {
		sp.WorstCost = worstCost
		sp.WorstCostGeneration = generation
	}

	sp.BestCostHistory = append(sp.BestCostHistory, bestCost)
	sp.WorstCostHistory = append(sp.WorstCostHistory, worstCost)
	sp.TotalGenerations = generation
	sp.SolvedInMilliseconds = time.Since(start).Milliseconds()
}
