package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomForestSeparableData(t *testing.T) {
	X, y := stepData(200)
	rf := NewRandomForest(WithNEstimators(25), WithForestSeed(3))
	require.NoError(t, rf.Fit(X, y))

	require.Equal(t, y, rf.Predict(X))

	oob, ok := rf.OOBError()
	require.True(t, ok)
	require.GreaterOrEqual(t, oob, 0.0)
	require.Less(t, oob, 0.2, "OOB error should be small on separable data")
}

func TestRandomForestDeterministic(t *testing.T) {
	X, y := stepData(120)
	a := NewRandomForest(WithNEstimators(15), WithForestSeed(9))
	b := NewRandomForest(WithNEstimators(15), WithForestSeed(9))
	require.NoError(t, a.Fit(X, y))
	require.NoError(t, b.Fit(X, y))

	require.Equal(t, a.Predict(X), b.Predict(X))
	require.Equal(t, a.Importances(), b.Importances())
	aOOB, _ := a.OOBError()
	bOOB, _ := b.OOBError()
	require.Equal(t, aOOB, bOOB)
}

func TestRandomForestImportancesNormalized(t *testing.T) {
	X, y := stepData(150)
	rf := NewRandomForest(WithNEstimators(20), WithForestSeed(1))
	require.NoError(t, rf.Fit(X, y))

	imp := rf.Importances()
	require.Len(t, imp, 2)
	sum := 0.0
	for _, v := range imp {
		require.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	require.InDelta(t, 1.0, sum, 1e-9)
	require.Greater(t, imp[0], imp[1], "the informative feature must rank first")
}

func TestRandomForestWithoutBootstrap(t *testing.T) {
	X, y := stepData(80)
	rf := NewRandomForest(WithNEstimators(5), WithBootstrap(false), WithForestSeed(2))
	require.NoError(t, rf.Fit(X, y))
	_, ok := rf.OOBError()
	require.False(t, ok, "no OOB estimate without bootstrap")
	require.Equal(t, y, rf.Predict(X))
}

func TestRandomForestProba(t *testing.T) {
	X, y := stepData(100)
	rf := NewRandomForest(WithNEstimators(11), WithForestSeed(4))
	require.NoError(t, rf.Fit(X, y))
	for _, probs := range rf.PredictProba(X) {
		require.Len(t, probs, 2)
		require.InDelta(t, 1.0, probs[0]+probs[1], 1e-12)
	}
}

func TestRandomForestInputValidation(t *testing.T) {
	rf := NewRandomForest()
	require.Error(t, rf.Fit(nil, nil))
	require.Error(t, rf.Fit([][]float64{{1}}, []int{0, 1}))
	rf = NewRandomForest(WithNEstimators(0))
	require.Error(t, rf.Fit([][]float64{{1}}, []int{0}))
}
