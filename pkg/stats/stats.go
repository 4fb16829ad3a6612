// Package stats holds the small slice-level statistics the generator report
// and the model code share.
package stats

import (
	"math"
	"sort"
)

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(n)
}

// Variance computes the population variance of a slice in a single pass.
func Variance(x []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	sum, sumSq := 0.0, 0.0
	for _, v := range x {
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	return (sumSq / n) - (mean * mean)
}

// Std computes the standard deviation of a slice.
func Std(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	min, max := x[0], x[0]
	for i := 1; i < len(x); i++ {
		if x[i] < min {
			min = x[i]
		} else if x[i] > max {
			max = x[i]
		}
	}
	return min, max
}

// Median returns the median value of the slice (allocates a copy).
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	mid := n >> 1
	if n&1 == 0 {
		return (cp[mid-1] + cp[mid]) * 0.5
	}
	return cp[mid]
}

// NaNMean averages the non-NaN entries of a slice. A slice with no valid
// entries yields 0.
func NaNMean(x []float64) float64 {
	sum, cnt := 0.0, 0
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		cnt++
	}
	if cnt == 0 {
		return 0
	}
	return sum / float64(cnt)
}

// NaNCount returns the number of NaN entries in a slice.
func NaNCount(x []float64) int {
	c := 0
	for _, v := range x {
		if math.IsNaN(v) {
			c++
		}
	}
	return c
}
