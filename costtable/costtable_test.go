package costtable_test

import (
	"testing"

	"github.com/katalvlaran/tspga/costtable"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositive(t *testing.T) {
	_, err := costtable.New(0)
	require.Error(t, err)
}

func TestAtSetRoundTrip(t *testing.T) {
	ct, err := costtable.New(3)
	require.NoError(t, err)

	require.NoError(t, ct.Set(0, 1, 5))
	require.NoError(t, ct.Set(1, 2, 7))

	v, err := ct.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	// untouched diagonal remains zero.
	d, err := ct.At(2, 2)
	require.NoError(t, err)
	require.Zero(t, d)
}

func TestAtOutOfRange(t *testing.T) {
	ct, err := costtable.New(2)
	require.NoError(t, err)

	_, err = ct.At(2, 0)
	require.Error(t, err)
	_, err = ct.At(0, -1)
	require.Error(t, err)
}

func TestValidateDiagonal(t *testing.T) {
	ct, err := costtable.New(4)
	require.NoError(t, err)
	require.NoError(t, ct.ValidateDiagonal())

	require.NoError(t, ct.Set(2, 2, 1))
	require.Error(t, ct.ValidateDiagonal())
}

func TestTourCost(t *testing.T) {
	// Symmetric 4-node instance from spec.md §8 scenario 1.
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

	cost, err := ct.TourCost([]int{0, 1, 2, 3}, true)
	require.NoError(t, err)
	require.Equal(t, 6.0, cost)

	cost, err = ct.TourCost([]int{0, 1, 2, 3}, false)
	require.NoError(t, err)
	require.Equal(t, 3.0, cost)
}

func TestRow(t *testing.T) {
	ct, err := costtable.New(3)
	require.NoError(t, err)
	require.NoError(t, ct.Set(1, 0, 4))
	require.NoError(t, ct.Set(1, 2, 9))

	row, err := ct.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 0, 9}, row)
}
