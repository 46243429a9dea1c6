package ga_test

import (
	"testing"

	"github.com/katalvlaran/tspga/ga"
	"github.com/katalvlaran/tspga/tsperr"
	"github.com/stretchr/testify/require"
)

func TestDefaultGAConfigNormalize(t *testing.T) {
	cfg := ga.DefaultGAConfig(10)
	require.NoError(t, cfg.Normalize())
	require.Equal(t, 100, cfg.PopulationSize)
}

func TestNormalizeRejectsOutOfRangeDimension(t *testing.T) {
	cfg := ga.DefaultGAConfig(2)
	require.ErrorIs(t, cfg.Normalize(), tsperr.ErrDimensionOutOfRange)

	cfg = ga.DefaultGAConfig(101)
	require.ErrorIs(t, cfg.Normalize(), tsperr.ErrDimensionOutOfRange)
}

func TestNormalizeCapsPopulationForSmallProblem(t *testing.T) {
	// N=3 with no fixed origin: free space is 3! = 6 permutations.
	cfg := ga.DefaultGAConfig(3)
	cfg.PopulationSize = 100
	require.NoError(t, cfg.Normalize())
	require.Equal(t, 6, cfg.PopulationSize)
	require.True(t, cfg.IsSmallProblem())
}

func TestIsSmallProblemFalseForLargeDimension(t *testing.T) {
	cfg := ga.DefaultGAConfig(20)
	require.NoError(t, cfg.Normalize())
	require.False(t, cfg.IsSmallProblem())
}

func TestMutationCountAlwaysAtLeastOne(t *testing.T) {
	cfg := ga.DefaultGAConfig(10)
	cfg.PopulationSize = 10
	cfg.MutationRatePct = 0
	require.Equal(t, 1, cfg.MutationCount())
}

func TestNormalizeAcceptsZeroMaxGens(t *testing.T) {
	// spec.md §8: maxGens=0 is a valid boundary producing stats from the
	// seed generation only, not a configuration error.
	cfg := ga.DefaultGAConfig(10)
	cfg.MaxGens = 0
	require.NoError(t, cfg.Normalize())

	cfg.MaxGens = -1
	require.ErrorIs(t, cfg.Normalize(), tsperr.ErrInvalidConfig)
}
