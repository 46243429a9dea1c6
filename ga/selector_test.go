package ga_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tspga/chromosome"
	"github.com/katalvlaran/tspga/ga"
	"github.com/katalvlaran/tspga/tsperr"
	"github.com/stretchr/testify/require"
)

func evaluatedFrom(tours [][]int, fitness []float64) ga.EvaluatedPopulation {
	out := make(ga.EvaluatedPopulation, len(tours))
	for i, tour := range tours {
		out[i] = ga.Evaluated{Tour: chromosome.New(tour), Fitness: fitness[i]}
	}
	return out
}

func TestSelectRandomRequiresAtLeastTwo(t *testing.T) {
	pop := evaluatedFrom([][]int{{0, 1, 2}}, []float64{1.0})
	_, err := ga.SelectRandom(pop, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, tsperr.ErrSelectionPopulationTooSmall)
}

func TestSelectRandomReturnsMember(t *testing.T) {
	pop := evaluatedFrom([][]int{{0, 1}, {1, 0}}, []float64{1.0, 2.0})
	picked, err := ga.SelectRandom(pop, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Contains(t, []string{pop[0].Tour.Key(), pop[1].Tour.Key()}, picked.Tour.Key())
}

func TestSelectRouletteReturnsDistinctPair(t *testing.T) {
	pop := evaluatedFrom(
		[][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}},
		[]float64{1.0, 1.0, 1.0},
	)
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		a, b, err := ga.SelectRoulette(pop, rng)
		require.NoError(t, err)
		require.False(t, a.Tour.Equal(b.Tour))
	}
}

func TestSelectRouletteRequiresAtLeastTwo(t *testing.T) {
	pop := evaluatedFrom([][]int{{0, 1, 2}}, []float64{1.0})
	_, _, err := ga.SelectRoulette(pop, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, tsperr.ErrSelectionPopulationTooSmall)
}
