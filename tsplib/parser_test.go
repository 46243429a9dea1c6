package tsplib_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/tspga/tsperr"
	"github.com/katalvlaran/tspga/tsplib"
	"github.com/stretchr/testify/require"
)

const sampleEUC2D = `NAME: sample4
TYPE: TSP
DIMENSION: 4
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 0 3
3 4 3
4 4 0
EOF
`

func TestParseEUC2D(t *testing.T) {
	inst, err := tsplib.Parse(strings.NewReader(sampleEUC2D))
	require.NoError(t, err)

	require.Equal(t, "sample4", inst.Name)
	require.Equal(t, 4, inst.Dimension)
	require.Equal(t, "EUC_2D", inst.EdgeWeightType)
	require.NoError(t, inst.Costs.ValidateDiagonal())

	// node 0 (1,0,0) -> node 1 (2,0,3): distance 3.
	d, err := inst.Costs.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, d)

	// node 0 -> node 2 (4,3): distance 5.
	d, err = inst.Costs.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, d)
}

func TestParseRejectsUnsupportedEdgeWeightType(t *testing.T) {
	body := strings.Replace(sampleEUC2D, "EUC_2D", "GEO", 1)
	_, err := tsplib.Parse(strings.NewReader(body))
	require.ErrorIs(t, err, tsperr.ErrProblemTypeNotSupported)
}

func TestParseRejectsEmptyCoordinates(t *testing.T) {
	body := `NAME: empty
TYPE: TSP
DIMENSION: 0
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
EOF
`
	_, err := tsplib.Parse(strings.NewReader(body))
	require.ErrorIs(t, err, tsperr.ErrCoordinatesFileEmpty)
}

func TestParseFileMissing(t *testing.T) {
	_, err := tsplib.ParseFile("/nonexistent/path/instance.tsp")
	require.ErrorIs(t, err, tsperr.ErrInstanceFileNotFound)
}
