package ga

import (
	"github.com/katalvlaran/tspga/chromosome"
	"github.com/katalvlaran/tspga/costtable"
)

// Evaluated pairs a chromosome with its fitness, the unit EvaluatedPopulation
// is built from (spec.md §3).
type Evaluated struct {
	Tour    chromosome.Tour
	Fitness float64
}

// EvaluatedPopulation is an evaluated generation; iteration order is the
// order used by selection's accumulator walk within one call (spec.md §4.6).
type EvaluatedPopulation []Evaluated

// Evaluate computes fitness = 1/cost(C) for every chromosome in pop. Each
// tour is checked against cfg's permutation invariant (right length, each
// index present exactly once, fixed origin pinned at position 0 when
// configured) before costing it, the same defensive check the teacher's
// tsp/tour.go applies to tours it is about to score.
//
// Complexity: O(P * N).
func Evaluate(pop Population, costs *costtable.CostTable, cfg GAConfig) (EvaluatedPopulation, error) {
	out := make(EvaluatedPopulation, 0, len(pop))
	for _, tour := range pop {
		if err := chromosome.ValidatePermutation(tour, cfg.Dimension, cfg.HasFixedOrigin(), cfg.FixedOriginIndex); err != nil {
			return nil, err
		}
		cost, err := costs.TourCost(tour, cfg.ReturnToOrigin)
		if err != nil {
			return nil, err
		}
		out = append(out, Evaluated{Tour: tour, Fitness: 1.0 / cost})
	}
	return out, nil
}
