package ga

import "github.com/katalvlaran/tspga/tsperr"

// noOrigin marks GAConfig.FixedOriginIndex as "no fixed origin configured".
const noOrigin = -1

// GAConfig parameterizes one solve: population shape, termination
// thresholds, and variation rates, per spec.md §3.
type GAConfig struct {
	Dimension        int  // N, number of nodes; must be in [3,100].
	FixedOriginIndex int  // O in [0,N), or noOrigin for "unfixed".
	ReturnToOrigin   bool // whether the tour closes back to position 0.
	PopulationSize   int  // P; capped to the permutation-space size.
	NNAPercentage    int  // percent of P drawn from nearest-neighbor seeding.
	MaxGens          int  // hard generation ceiling.
	MaxChrAge        int  // generations tolerated without a best-cost improvement.
	MutationRatePct  int  // percent of P mutated each generation; always >=1 result.
	EliteCount       int  // E, elites preserved across generations.

	// Seed deterministically drives every RNG stream used by this solve. A
	// zero value is mapped to rootSeed by rngFromSeed.
	Seed int64
}

// DefaultGAConfig returns the spec-mandated defaults for a solve of the
// given dimension, with no fixed origin.
func DefaultGAConfig(dimension int) GAConfig {
	return GAConfig{
		Dimension:        dimension,
		FixedOriginIndex: noOrigin,
		ReturnToOrigin:   true,
		PopulationSize:   100,
		NNAPercentage:    40,
		MaxGens:          1000,
		MaxChrAge:        250,
		MutationRatePct:  2,
		EliteCount:       2,
	}
}

// HasFixedOrigin reports whether c pins a chromosome's position 0.
func (c GAConfig) HasFixedOrigin() bool {
	return c.FixedOriginIndex != noOrigin
}

// Normalize validates c and caps PopulationSize to the permutation-space
// size, per spec.md §3's "capped to (N-1)! when O is fixed, else N!" rule.
//
// Complexity: O(1).
func (c *GAConfig) Normalize() error {
	if c.Dimension < 3 || c.Dimension > 100 {
		return tsperr.ErrDimensionOutOfRange
	}
	if c.HasFixedOrigin() && (c.FixedOriginIndex < 0 || c.FixedOriginIndex >= c.Dimension) {
		return tsperr.Wrap(tsperr.ErrInvalidConfig, "fixedOriginIndex out of range")
	}
	if c.PopulationSize <= 0 {
		return tsperr.Wrap(tsperr.ErrInvalidConfig, "populationSize must be positive")
	}
	if c.NNAPercentage < 0 || c.NNAPercentage > 100 {
		return tsperr.Wrap(tsperr.ErrInvalidConfig, "nnaPercentage out of range")
	}
	if c.MaxGens < 0 {
		return tsperr.Wrap(tsperr.ErrInvalidConfig, "maxGens must not be negative")
	}
	if c.MaxChrAge <= 0 {
		return tsperr.Wrap(tsperr.ErrInvalidConfig, "maxChrAge must be positive")
	}
	if c.MutationRatePct < 0 || c.MutationRatePct > 100 {
		return tsperr.Wrap(tsperr.ErrInvalidConfig, "mutationRate out of range")
	}
	if c.EliteCount < 0 || c.EliteCount >= c.PopulationSize {
		return tsperr.Wrap(tsperr.ErrInvalidConfig, "eliteCount out of range")
	}

	freeNodes := c.Dimension
	if c.HasFixedOrigin() {
		freeNodes = c.Dimension - 1
	}
	if space, exceeds := permutationSpace(freeNodes, c.PopulationSize); !exceeds && space < c.PopulationSize {
		c.PopulationSize = space
	}
	return nil
}

// permutationSpace computes freeNodes!, stopping as soon as the running
// product exceeds limit: spec.md only needs to distinguish "the space is
// fully enumerable within limit" from "it is larger", so the second return
// value, not the exact product, is what callers beyond this point rely on
// for large factorials.
func permutationSpace(freeNodes, limit int) (space int, exceeds bool) {
	space = 1
	for k := 2; k <= freeNodes; k++ {
		space *= k
		if space > limit {
			return space, true
		}
	}
	return space, false
}

// IsSmallProblem reports whether the permutation space is fully enumerated
// by a population of size PopulationSize already, per spec.md §4.9's
// "small problem" termination condition.
func (c GAConfig) IsSmallProblem() bool {
	freeNodes := c.Dimension
	if c.HasFixedOrigin() {
		freeNodes = c.Dimension - 1
	}
	_, exceeds := permutationSpace(freeNodes, c.PopulationSize)
	return !exceeds
}

// MutationCount returns max(1, floor(P*mutationRate/100)), per spec.md
// §4.9's "always at least one resulting chromosome" rule.
func (c GAConfig) MutationCount() int {
	n := (c.PopulationSize * c.MutationRatePct) / 100
	if n < 1 {
		n = 1
	}
	return n
}
