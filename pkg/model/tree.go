package model

import (
	"errors"
	"math/rand"
	"sort"
)

// DecisionTree is a CART-style classifier with gini impurity and numeric
// threshold splits. Split search is sequential and tie-breaks are fixed, so
// a given seed always grows the same tree. Inputs must be dense (impute
// before fitting).
type DecisionTree struct {
	MaxDepth        int // 0 => unlimited
	MinSamplesSplit int
	MinSamplesLeaf  int
	MaxFeatures     int // 0 => all features
	Seed            int64

	root        *treeNode
	classes     []int
	importances []float64
	nFit        int
}

type treeNode struct {
	isLeaf    bool
	feature   int
	threshold float64 // x <= threshold goes left
	left      *treeNode
	right     *treeNode

	n         int
	probas    []float64
	predIndex int
}

// TreeOption is functional config for DecisionTree.
type TreeOption func(*DecisionTree)

func WithMaxDepth(d int) TreeOption        { return func(t *DecisionTree) { t.MaxDepth = d } }
func WithMinSamplesSplit(n int) TreeOption { return func(t *DecisionTree) { t.MinSamplesSplit = n } }
func WithMinSamplesLeaf(n int) TreeOption  { return func(t *DecisionTree) { t.MinSamplesLeaf = n } }
func WithMaxFeatures(k int) TreeOption     { return func(t *DecisionTree) { t.MaxFeatures = k } }
func WithTreeSeed(seed int64) TreeOption   { return func(t *DecisionTree) { t.Seed = seed } }

// NewDecisionTree returns a classifier with sensible defaults.
func NewDecisionTree(opts ...TreeOption) *DecisionTree {
	t := &DecisionTree{
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Fit trains on all rows of X.
func (t *DecisionTree) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("tree: empty X")
	}
	if len(y) != len(X) {
		return errors.New("tree: X and y length mismatch")
	}
	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	return t.fitSubset(X, y, idx, uniqueClasses(y))
}

// fitSubset trains on the rows named by idx (with repetition allowed, for
// bootstrap samples). classes fixes the label set so every tree in a forest
// shares the same probability layout.
func (t *DecisionTree) fitSubset(X [][]float64, y []int, idx []int, classes []int) error {
	if len(idx) == 0 {
		return errors.New("tree: empty sample")
	}
	p := len(X[0])
	for _, row := range X {
		if len(row) != p {
			return errors.New("tree: inconsistent number of features in X rows")
		}
	}
	t.classes = classes
	t.importances = make([]float64, p)
	t.nFit = len(idx)

	rnd := rand.New(rand.NewSource(t.Seed))
	t.root = t.buildNode(X, y, idx, 0, rnd)
	return nil
}

// Classes returns the label set, ascending.
func (t *DecisionTree) Classes() []int { return t.classes }

// Importances returns the per-feature impurity decrease, normalized to sum
// to one over features that contributed any split.
func (t *DecisionTree) Importances() []float64 {
	out := make([]float64, len(t.importances))
	total := 0.0
	for _, v := range t.importances {
		total += v
	}
	if total == 0 {
		return out
	}
	for i, v := range t.importances {
		out[i] = v / total
	}
	return out
}

// Predict returns the majority-class label per row.
func (t *DecisionTree) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i, row := range X {
		leaf := t.walk(row)
		out[i] = t.classes[leaf.predIndex]
	}
	return out
}

// PredictProba returns per-class probability vectors aligned with Classes.
func (t *DecisionTree) PredictProba(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		leaf := t.walk(row)
		probs := make([]float64, len(leaf.probas))
		copy(probs, leaf.probas)
		out[i] = probs
	}
	return out
}

func (t *DecisionTree) walk(x []float64) *treeNode {
	node := t.root
	for !node.isLeaf {
		if x[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node
}

func (t *DecisionTree) buildNode(X [][]float64, y []int, idx []int, depth int, rnd *rand.Rand) *treeNode {
	node := &treeNode{n: len(idx)}
	counts := t.countClasses(y, idx)

	leaf := func() *treeNode {
		node.isLeaf = true
		node.probas = countsToProbas(counts)
		node.predIndex = argmaxCounts(counts)
		return node
	}

	if isPure(counts) || len(idx) < t.MinSamplesSplit {
		return leaf()
	}
	if t.MaxDepth > 0 && depth >= t.MaxDepth {
		return leaf()
	}

	best := t.findBestSplit(X, y, idx, counts, rnd)
	if best.feature < 0 || best.gain <= 0 {
		return leaf()
	}

	// CART importance: impurity decrease weighted by the fraction of the
	// training sample reaching this node.
	t.importances[best.feature] += float64(len(idx)) / float64(t.nFit) * best.gain

	node.feature = best.feature
	node.threshold = best.threshold
	node.left = t.buildNode(X, y, best.leftIdx, depth+1, rnd)
	node.right = t.buildNode(X, y, best.rightIdx, depth+1, rnd)
	return node
}

type split struct {
	gain      float64
	feature   int
	threshold float64
	leftIdx   []int
	rightIdx  []int
}

// findBestSplit scans candidate features in a seeded random order and keeps
// the strictly best gain, so the choice is reproducible. When the sampled
// subset yields no usable split, the search widens to all features rather
// than forcing an impure leaf.
func (t *DecisionTree) findBestSplit(X [][]float64, y []int, idx []int, counts []int, rnd *rand.Rand) split {
	p := len(X[0])
	feats := make([]int, p)
	for j := range feats {
		feats[j] = j
	}
	if t.MaxFeatures > 0 && t.MaxFeatures < p {
		rnd.Shuffle(p, func(a, b int) { feats[a], feats[b] = feats[b], feats[a] })
		best := t.bestOverFeatures(X, y, idx, counts, feats[:t.MaxFeatures])
		if best.feature >= 0 {
			return best
		}
	}
	return t.bestOverFeatures(X, y, idx, counts, feats)
}

func (t *DecisionTree) bestOverFeatures(X [][]float64, y []int, idx []int, counts []int, feats []int) split {
	parent := gini(counts)
	best := split{feature: -1}

	ordered := make([]int, len(idx))
	for _, f := range feats {
		copy(ordered, idx)
		sort.Slice(ordered, func(a, b int) bool { return X[ordered[a]][f] < X[ordered[b]][f] })

		// single left-to-right sweep with incremental class counts
		leftCounts := make([]int, len(counts))
		rightCounts := make([]int, len(counts))
		copy(rightCounts, counts)
		nTot := len(ordered)
		for s := 1; s < nTot; s++ {
			ci := t.classIndex(y[ordered[s-1]])
			leftCounts[ci]++
			rightCounts[ci]--
			if X[ordered[s]][f] == X[ordered[s-1]][f] {
				continue
			}
			if s < t.MinSamplesLeaf || nTot-s < t.MinSamplesLeaf {
				continue
			}
			weighted := float64(s)/float64(nTot)*gini(leftCounts) +
				float64(nTot-s)/float64(nTot)*gini(rightCounts)
			gain := parent - weighted
			if gain > best.gain {
				thr := (X[ordered[s-1]][f] + X[ordered[s]][f]) / 2
				best = split{
					gain:      gain,
					feature:   f,
					threshold: thr,
					leftIdx:   append([]int(nil), ordered[:s]...),
					rightIdx:  append([]int(nil), ordered[s:]...),
				}
			}
		}
	}
	return best
}

func (t *DecisionTree) countClasses(y []int, idx []int) []int {
	counts := make([]int, len(t.classes))
	for _, i := range idx {
		counts[t.classIndex(y[i])]++
	}
	return counts
}

func (t *DecisionTree) classIndex(label int) int {
	for i, c := range t.classes {
		if c == label {
			return i
		}
	}
	return 0
}

func uniqueClasses(y []int) []int {
	seen := map[int]bool{}
	var out []int
	for _, v := range y {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

func gini(counts []int) float64 {
	n := 0
	for _, c := range counts {
		n += c
	}
	if n == 0 {
		return 0
	}
	res := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		res -= p * p
	}
	return res
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

func countsToProbas(counts []int) []float64 {
	n := 0
	for _, c := range counts {
		n += c
	}
	out := make([]float64, len(counts))
	if n == 0 {
		return out
	}
	for i, c := range counts {
		out[i] = float64(c) / float64(n)
	}
	return out
}

// argmaxCounts tie-breaks toward the lower class index.
func argmaxCounts(counts []int) int {
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return best
}
