package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegressionMetrics(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}
	yPred := []float64{1, 2, 3, 4}
	require.Equal(t, 0.0, MSE(yTrue, yPred))
	require.Equal(t, 0.0, MAE(yTrue, yPred))
	require.Equal(t, 1.0, R2(yTrue, yPred))

	yPred = []float64{2, 3, 4, 5}
	require.Equal(t, 1.0, MSE(yTrue, yPred))
	require.Equal(t, 1.0, MAE(yTrue, yPred))
	require.Equal(t, 1.0, RMSE(yTrue, yPred))
	require.Less(t, R2(yTrue, yPred), 1.0)
}

func TestR2ConstantTarget(t *testing.T) {
	require.Equal(t, 0.0, R2([]float64{2, 2, 2}, []float64{2, 2, 2}))
}

func TestClassificationMetrics(t *testing.T) {
	yTrue := []int{1, 1, 0, 0, 1}
	yPred := []int{1, 0, 0, 1, 1}
	require.InDelta(t, 0.6, Accuracy(yTrue, yPred), 1e-12)

	prec, rec, f1 := PrecisionRecallF1(yTrue, yPred)
	require.InDelta(t, 2.0/3.0, prec, 1e-12)
	require.InDelta(t, 2.0/3.0, rec, 1e-12)
	require.InDelta(t, 2.0/3.0, f1, 1e-12)
}
