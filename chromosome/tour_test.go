package chromosome_test

import (
	"testing"

	"github.com/katalvlaran/tspga/chromosome"
	"github.com/stretchr/testify/require"
)

func TestKeyEquality(t *testing.T) {
	a := chromosome.New([]int{0, 2, 1, 3})
	b := chromosome.New([]int{0, 2, 1, 3})
	c := chromosome.New([]int{0, 1, 2, 3})

	require.Equal(t, a.Key(), b.Key())
	require.NotEqual(t, a.Key(), c.Key())
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestCloneIsIndependent(t *testing.T) {
	a := chromosome.New([]int{0, 1, 2})
	b := a.Clone()
	b[1] = 9
	require.Equal(t, 1, a[1])
}

func TestValidatePermutation(t *testing.T) {
	require.NoError(t, chromosome.ValidatePermutation(chromosome.New([]int{2, 0, 1}), 3, false, 0))
	require.Error(t, chromosome.ValidatePermutation(chromosome.New([]int{0, 0, 1}), 3, false, 0))
	require.Error(t, chromosome.ValidatePermutation(chromosome.New([]int{0, 1}), 3, false, 0))

	require.NoError(t, chromosome.ValidatePermutation(chromosome.New([]int{2, 0, 1}), 3, true, 2))
	require.Error(t, chromosome.ValidatePermutation(chromosome.New([]int{0, 1, 2}), 3, true, 2))
}

func TestSameGenes(t *testing.T) {
	a := chromosome.New([]int{0, 1, 2, 3})
	b := chromosome.New([]int{3, 1, 0, 2})
	require.True(t, chromosome.SameGenes(a, b))

	c := chromosome.New([]int{0, 1, 1, 3})
	require.False(t, chromosome.SameGenes(a, c))
}
