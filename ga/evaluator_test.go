package ga_test

import (
	"testing"

	"github.com/katalvlaran/tspga/chromosome"
	"github.com/katalvlaran/tspga/costtable"
	"github.com/katalvlaran/tspga/ga"
	"github.com/stretchr/testify/require"
)

func TestEvaluateComputesFitnessFromCost(t *testing.T) {
	rows := [][]float64{
		{0, 1, 2, 3},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{3, 2, 1, 0},
	}
	ct, err := costtable.New(4)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, ct.Set(i, j, v))
		}
	}

	pop := ga.Population{chromosome.New([]int{0, 1, 2, 3})}

	cfg := ga.DefaultGAConfig(4)
	cfg.ReturnToOrigin = true
	evaluated, err := ga.Evaluate(pop, ct, cfg)
	require.NoError(t, err)
	require.Len(t, evaluated, 1)
	require.InDelta(t, 1.0/6.0, evaluated[0].Fitness, 1e-9)

	cfg.ReturnToOrigin = false
	evaluated, err = ga.Evaluate(pop, ct, cfg)
	require.NoError(t, err)
	require.InDelta(t, 1.0/3.0, evaluated[0].Fitness, 1e-9)
}

func TestEvaluateRejectsInvalidPermutation(t *testing.T) {
	ct, err := costtable.New(4)
	require.NoError(t, err)

	cfg := ga.DefaultGAConfig(4)
	pop := ga.Population{chromosome.New([]int{0, 1, 1, 3})} // repeated gene.
	_, err = ga.Evaluate(pop, ct, cfg)
	require.Error(t, err)
}
