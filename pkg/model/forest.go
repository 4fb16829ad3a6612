package model

import (
	"errors"
	"math"
	"math/rand"
	"sync"
)

// RandomForest is a bagged ensemble of DecisionTrees. Trees grow in parallel
// but each from its own seed (Seed + tree index), and all cross-tree
// aggregation happens in tree order, so a fitted forest is a pure function of
// (X, y, options).
//
// Out-of-bag error and impurity-based feature importances come for free from
// the bootstrap and are the quantities the downstream report cares about.
type RandomForest struct {
	NEstimators     int
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	MaxFeatures     int // 0 => floor(sqrt(p))
	Bootstrap       bool
	Seed            int64

	Trees []*DecisionTree

	classes     []int
	importances []float64
	oobErr      float64
	oobValid    bool
}

// ForestOption is functional config for RandomForest.
type ForestOption func(*RandomForest)

func WithNEstimators(n int) ForestOption { return func(rf *RandomForest) { rf.NEstimators = n } }
func WithBootstrap(b bool) ForestOption  { return func(rf *RandomForest) { rf.Bootstrap = b } }
func WithForestSeed(s int64) ForestOption {
	return func(rf *RandomForest) { rf.Seed = s }
}
func WithForestMaxDepth(d int) ForestOption {
	return func(rf *RandomForest) { rf.MaxDepth = d }
}
func WithForestMaxFeatures(k int) ForestOption {
	return func(rf *RandomForest) { rf.MaxFeatures = k }
}
func WithForestMinSamplesLeaf(n int) ForestOption {
	return func(rf *RandomForest) { rf.MinSamplesLeaf = n }
}

// NewRandomForest initializes the forest with sensible defaults.
func NewRandomForest(opts ...ForestOption) *RandomForest {
	rf := &RandomForest{
		NEstimators:     100,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		Bootstrap:       true,
	}
	for _, o := range opts {
		o(rf)
	}
	return rf
}

// Fit trains the forest. With Bootstrap, each tree sees an n-sized sample
// drawn with replacement and the held-out rows feed the OOB estimate.
func (rf *RandomForest) Fit(X [][]float64, y []int) error {
	n := len(X)
	if n == 0 {
		return errors.New("forest: empty X")
	}
	if len(y) != n {
		return errors.New("forest: X and y length mismatch")
	}
	if rf.NEstimators <= 0 {
		return errors.New("forest: need at least one estimator")
	}
	p := len(X[0])
	maxFeat := rf.MaxFeatures
	if maxFeat == 0 {
		maxFeat = int(math.Sqrt(float64(p)))
		if maxFeat < 1 {
			maxFeat = 1
		}
	}

	rf.classes = uniqueClasses(y)
	rf.Trees = make([]*DecisionTree, rf.NEstimators)
	oobIdx := make([][]int, rf.NEstimators)

	var wg sync.WaitGroup
	errs := make([]error, rf.NEstimators)
	for i := 0; i < rf.NEstimators; i++ {
		wg.Add(1)
		go func(ti int) {
			defer wg.Done()
			treeRand := rand.New(rand.NewSource(rf.Seed + int64(ti)))

			sample := make([]int, n)
			if rf.Bootstrap {
				inBag := make([]bool, n)
				for j := 0; j < n; j++ {
					k := treeRand.Intn(n)
					sample[j] = k
					inBag[k] = true
				}
				for j := 0; j < n; j++ {
					if !inBag[j] {
						oobIdx[ti] = append(oobIdx[ti], j)
					}
				}
			} else {
				for j := 0; j < n; j++ {
					sample[j] = j
				}
			}

			tree := NewDecisionTree(
				WithMaxDepth(rf.MaxDepth),
				WithMinSamplesSplit(rf.MinSamplesSplit),
				WithMinSamplesLeaf(rf.MinSamplesLeaf),
				WithMaxFeatures(maxFeat),
				WithTreeSeed(rf.Seed+int64(ti)),
			)
			if err := tree.fitSubset(X, y, sample, rf.classes); err != nil {
				errs[ti] = err
				return
			}
			rf.Trees[ti] = tree
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	rf.aggregateImportances(p)
	rf.aggregateOOB(X, y, oobIdx)
	return nil
}

// Predict returns the majority vote across trees, tie-broken toward the
// lower class label.
func (rf *RandomForest) Predict(X [][]float64) []int {
	votes := rf.voteCounts(X)
	out := make([]int, len(X))
	for i := range X {
		out[i] = rf.classes[argmaxCounts(votes[i])]
	}
	return out
}

// PredictProba returns the fraction of trees voting for each class.
func (rf *RandomForest) PredictProba(X [][]float64) [][]float64 {
	votes := rf.voteCounts(X)
	out := make([][]float64, len(X))
	for i := range out {
		out[i] = countsToProbas(votes[i])
	}
	return out
}

// Classes returns the label set, ascending.
func (rf *RandomForest) Classes() []int { return rf.classes }

// OOBError is the out-of-bag misclassification rate. ok is false when the
// forest was fitted without bootstrap or no row was ever out of bag.
func (rf *RandomForest) OOBError() (float64, bool) { return rf.oobErr, rf.oobValid }

// Importances returns mean impurity-decrease feature importances, normalized
// to sum to one.
func (rf *RandomForest) Importances() []float64 { return rf.importances }

func (rf *RandomForest) voteCounts(X [][]float64) [][]int {
	preds := make([][]int, len(rf.Trees))
	var wg sync.WaitGroup
	for ti, tree := range rf.Trees {
		wg.Add(1)
		go func(ti int, t *DecisionTree) {
			defer wg.Done()
			preds[ti] = t.Predict(X)
		}(ti, tree)
	}
	wg.Wait()

	votes := make([][]int, len(X))
	for i := range votes {
		votes[i] = make([]int, len(rf.classes))
	}
	for _, treePred := range preds {
		for i, label := range treePred {
			votes[i][rf.classIndex(label)]++
		}
	}
	return votes
}

func (rf *RandomForest) aggregateImportances(p int) {
	sum := make([]float64, p)
	for _, tree := range rf.Trees {
		for j, v := range tree.Importances() {
			sum[j] += v
		}
	}
	total := 0.0
	for _, v := range sum {
		total += v
	}
	rf.importances = make([]float64, p)
	if total == 0 {
		return
	}
	for j, v := range sum {
		rf.importances[j] = v / total
	}
}

func (rf *RandomForest) aggregateOOB(X [][]float64, y []int, oobIdx [][]int) {
	rf.oobValid = false
	if !rf.Bootstrap {
		return
	}
	n := len(X)
	votes := make([][]int, n)
	for i := range votes {
		votes[i] = make([]int, len(rf.classes))
	}
	for ti, tree := range rf.Trees {
		if len(oobIdx[ti]) == 0 {
			continue
		}
		rows := make([][]float64, len(oobIdx[ti]))
		for k, i := range oobIdx[ti] {
			rows[k] = X[i]
		}
		pred := tree.Predict(rows)
		for k, i := range oobIdx[ti] {
			votes[i][rf.classIndex(pred[k])]++
		}
	}

	wrong, scored := 0, 0
	for i := 0; i < n; i++ {
		total := 0
		for _, c := range votes[i] {
			total += c
		}
		if total == 0 {
			continue // never out of bag
		}
		scored++
		if rf.classes[argmaxCounts(votes[i])] != y[i] {
			wrong++
		}
	}
	if scored == 0 {
		return
	}
	rf.oobErr = float64(wrong) / float64(scored)
	rf.oobValid = true
}

func (rf *RandomForest) classIndex(label int) int {
	for i, c := range rf.classes {
		if c == label {
			return i
		}
	}
	return 0
}
