package dataprep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImputeMean(t *testing.T) {
	col := []float64{1, math.NaN(), 3, math.NaN()}
	filled := ImputeMean(col)
	require.Equal(t, 2, filled)
	require.Equal(t, []float64{1, 2, 3, 2}, col)
}

func TestImputeMeanNoMissing(t *testing.T) {
	col := []float64{1, 2, 3}
	require.Equal(t, 0, ImputeMean(col))
	require.Equal(t, []float64{1, 2, 3}, col)
}

func TestImputeMedian(t *testing.T) {
	col := []float64{1, 9, math.NaN(), 3}
	filled := ImputeMedian(col)
	require.Equal(t, 1, filled)
	require.Equal(t, []float64{1, 9, 3, 3}, col)
}

func TestImputeMatrixMean(t *testing.T) {
	X := [][]float64{
		{1, math.NaN()},
		{3, 4},
		{math.NaN(), 8},
	}
	filled := ImputeMatrixMean(X)
	require.Equal(t, 2, filled)
	require.Equal(t, [][]float64{{1, 6}, {3, 4}, {2, 8}}, X)
}
