package ga_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/tspga/costtable"
	"github.com/katalvlaran/tspga/ga"
	"github.com/stretchr/testify/require"
)

func TestSolveSmallProblemTerminatesAfterFirstGeneration(t *testing.T) {
	// spec.md §8 scenario 2/3: a 3-node problem's free permutation space
	// (N-1)!=2 or N!=6 is tiny; the solve must terminate right after seeding.
	cfg := ga.DefaultGAConfig(3)
	cfg.PopulationSize = 50
	require.NoError(t, cfg.Normalize())
	require.True(t, cfg.IsSmallProblem())

	costs := buildSquareCosts(t, 3)
	sp, err := ga.Solve(context.Background(), cfg, costs)
	require.NoError(t, err)
	require.Equal(t, 1, sp.TotalGenerations)
	require.Len(t, sp.BestCostHistory, 1)
	require.Len(t, sp.WorstCostHistory, 1)
}

func TestSolveProgressesAndTerminates(t *testing.T) {
	cfg := ga.DefaultGAConfig(10)
	cfg.PopulationSize = 24
	cfg.MaxGens = 40
	cfg.MaxChrAge = 15
	require.NoError(t, cfg.Normalize())
	require.False(t, cfg.IsSmallProblem())

	costs := buildSquareCosts(t, 10)
	sp, err := ga.Solve(context.Background(), cfg, costs)
	require.NoError(t, err)

	require.GreaterOrEqual(t, sp.TotalGenerations, 1)
	require.LessOrEqual(t, sp.TotalGenerations, cfg.MaxGens)
	require.NotEmpty(t, sp.BestTour)
	require.GreaterOrEqual(t, sp.BestCost, 0.0)
	// best cost can only improve or hold, never worsen across history.
	for i := 1; i < len(sp.BestCostHistory); i++ {
		require.LessOrEqual(t, sp.BestCostHistory[i], sp.BestCostHistory[i-1])
	}
}

func TestSolveRespectsContextCancellation(t *testing.T) {
	cfg := ga.DefaultGAConfig(10)
	cfg.PopulationSize = 24
	cfg.MaxGens = 1000
	cfg.MaxChrAge = 1000
	require.NoError(t, cfg.Normalize())

	costs := buildSquareCosts(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sp, err := ga.Solve(ctx, cfg, costs)
	require.NoError(t, err)
	require.Equal(t, 1, sp.TotalGenerations)
}
