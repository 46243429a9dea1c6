package ga

import (
	"math/rand"

	"github.com/katalvlaran/tspga/tsperr"
)

// SelectRandom returns one uniformly chosen chromosome from pop, per
// spec.md §4.6. Requires len(pop) >= 2.
func SelectRandom(pop EvaluatedPopulation, rng *rand.Rand) (Evaluated, error) {
	if len(pop) < 2 {
		return Evaluated{}, tsperr.ErrSelectionPopulationTooSmall
	}
	return pop[rng.Intn(len(pop))], nil
}

// SelectRoulette returns two distinct chromosomes drawn by fitness-weighted
// roulette-wheel selection, per spec.md §4.6: total fitness T, a draw
// r = U(0,T) walks pop's fixed iteration order accumulating fitness and
// returns the first entry whose running sum is >= r. The second draw is
// resampled until it differs from the first.
//
// Complexity: O(P) per draw; resampling is expected O(1) additional draws.
func SelectRoulette(pop EvaluatedPopulation, rng *rand.Rand) (Evaluated, Evaluated, error) {
	if len(pop) < 2 {
		return Evaluated{}, Evaluated{}, tsperr.ErrSelectionPopulationTooSmall
	}

	total := 0.0
	for _, e := range pop {
		total += e.Fitness
	}

	first := rouletteDraw(pop, total, rng)
	second := rouletteDraw(pop, total, rng)
	for second.Tour.Equal(first.Tour) {
		second = rouletteDraw(pop, total, rng)
	}
	return first, second, nil
}

func rouletteDraw(pop EvaluatedPopulation, total float64, rng *rand.Rand) Evaluated {
	r := rng.Float64() * total
	acc := 0.0
	for _, e := range pop {
		acc += e.Fitness
		if acc >= r {
			return e
		}
	}
	// floating-point rounding may leave r just above the final accumulator;
	// the last entry is the correct fallback.
	return pop[len(pop)-1]
}
