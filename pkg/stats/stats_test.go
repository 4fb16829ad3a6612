package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanVarianceStd(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.Equal(t, 5.0, Mean(x))
	assert.Equal(t, 4.0, Variance(x))
	assert.Equal(t, 2.0, Std(x))

	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Variance(nil))
}

func TestMinMax(t *testing.T) {
	lo, hi := MinMax([]float64{3, -1, 7, 0})
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 7.0, hi)

	lo, hi = MinMax(nil)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
	assert.Equal(t, 0.0, Median(nil))

	// input must not be reordered
	x := []float64{5, 1, 3}
	Median(x)
	require.Equal(t, []float64{5, 1, 3}, x)
}

func TestNaNHelpers(t *testing.T) {
	x := []float64{1, math.NaN(), 3, math.NaN()}
	assert.Equal(t, 2.0, NaNMean(x))
	assert.Equal(t, 2, NaNCount(x))

	assert.Equal(t, 0.0, NaNMean([]float64{math.NaN()}))
	assert.Equal(t, 0, NaNCount(nil))
}
