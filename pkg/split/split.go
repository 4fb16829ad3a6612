// Package split partitions row indices for hold-out and cross-validation.
// Every function takes an explicit *rand.Rand so resampling is reproducible;
// nothing here touches package-level random state.
package split

import "math/rand"

// TrainTest shuffles the indices 0..n-1 and splits them by testRatio.
func TrainTest(rng *rand.Rand, n int, testRatio float64) (trainIdx, testIdx []int) {
	perm := rng.Perm(n)
	nTest := int(float64(n) * testRatio)
	testIdx = append(testIdx, perm[:nTest]...)
	trainIdx = append(trainIdx, perm[nTest:]...)
	return trainIdx, testIdx
}

// KFold shuffles the indices 0..n-1 and deals them into k folds round-robin.
// The folds partition the index set; sizes differ by at most one.
func KFold(rng *rand.Rand, n, k int) [][]int {
	perm := rng.Perm(n)
	folds := make([][]int, k)
	for i, idx := range perm {
		folds[i%k] = append(folds[i%k], idx)
	}
	return folds
}

// Complement returns all indices 0..n-1 not present in fold, preserving
// ascending order. Used to build the training set for a held-out fold.
func Complement(n int, fold []int) []int {
	in := make([]bool, n)
	for _, i := range fold {
		in[i] = true
	}
	out := make([]int, 0, n-len(fold))
	for i := 0; i < n; i++ {
		if !in[i] {
			out = append(out, i)
		}
	}
	return out
}

// Take gathers the rows of X and entries of y at the given indices.
func Take(X [][]float64, y []float64, idx []int) ([][]float64, []float64) {
	Xs := make([][]float64, len(idx))
	ys := make([]float64, len(idx))
	for i, j := range idx {
		Xs[i] = X[j]
		ys[i] = y[j]
	}
	return Xs, ys
}

// TakeInt gathers the rows of X and integer labels at the given indices.
func TakeInt(X [][]float64, y []int, idx []int) ([][]float64, []int) {
	Xs := make([][]float64, len(idx))
	ys := make([]int, len(idx))
	for i, j := range idx {
		Xs[i] = X[j]
		ys[i] = y[j]
	}
	return Xs, ys
}
