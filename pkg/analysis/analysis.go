// Package analysis fits the baseline models to a generated dataset and
// reports how well they recover the generative structure: OLS coefficients
// against the equation weights, cross-validated R², random-forest OOB error
// and feature-importance ranking.
package analysis

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/drnleelavathy-code/rf-arima-sustainability-india/pkg/data"
	"github.com/drnleelavathy-code/rf-arima-sustainability-india/pkg/dataprep"
	"github.com/drnleelavathy-code/rf-arima-sustainability-india/pkg/model"
	"github.com/drnleelavathy-code/rf-arima-sustainability-india/pkg/split"
	"github.com/drnleelavathy-code/rf-arima-sustainability-india/pkg/stats"
	"github.com/drnleelavathy-code/rf-arima-sustainability-india/pkg/synth"
)

// Options tune the baseline fits.
type Options struct {
	Trees    int   // random forest size
	MaxDepth int   // 0 => unlimited
	Folds    int   // k for cross-validated R²
	Seed     int64 // resampling and forest seed
}

// DefaultOptions mirrors the reference analysis: 200 trees, 5-fold CV.
func DefaultOptions() Options {
	return Options{Trees: 200, MaxDepth: 12, Folds: 5, Seed: 7}
}

// Result carries everything the report prints.
type Result struct {
	Features []string
	Rows     int
	Imputed  int

	Intercept  float64
	Coef       []float64
	LinearR2   float64
	LinearRMSE float64
	CVR2Mean   float64
	CVR2Std    float64

	TrainAccuracy float64
	OOBError      float64
	OOBValid      bool
	Importances   []float64
}

// FeatureColumns returns the 12 model inputs: the behavioural and attitudinal
// columns plus the scaled demographic transforms. The age, city and income
// codes are omitted because their scaled versions carry the same information;
// education keeps its raw code since it has no scaled counterpart.
func FeatureColumns() []string {
	return []string{
		synth.ColEduCode,
		synth.ColHousehold,
		synth.ColPurchase,
		synth.ColTransaction,
		synth.ColDigital,
		synth.ColAwareness,
		synth.ColPrice,
		synth.ColAvailability,
		synth.ColAgeScaled,
		synth.ColTierScaled,
		synth.ColIncomeScaled,
		synth.ColQuality,
	}
}

// GenerativeCoef returns the equation weight each feature should recover
// under OLS, in FeatureColumns order. Price sensitivity enters Equation 1 as
// w·(1−x), so its recoverable coefficient is −w; features outside the
// equation should come back near zero.
func GenerativeCoef(w synth.EquationWeights) []float64 {
	return []float64{
		0, // edu_level_code
		0, // household_size
		0, // purchase_freq_raw
		0, // transaction_value_inr
		0, // digital_literacy
		w.Awareness,
		-w.PriceInverse,
		w.Availability,
		w.Age,
		w.Tier,
		w.Income,
		w.Quality,
	}
}

// Run loads the feature matrix and both targets from the frame, mean-imputes
// the missing cells, then fits the linear baseline and the random forest.
func Run(frame *data.Frame, opts Options) (*Result, error) {
	if opts.Trees <= 0 {
		return nil, errors.New("analysis: trees must be positive")
	}
	if opts.Folds < 2 {
		return nil, errors.New("analysis: need at least 2 folds")
	}

	features := FeatureColumns()
	X, err := frame.Matrix(features)
	if err != nil {
		return nil, err
	}
	score, err := frame.FloatColumn(synth.ColScore)
	if err != nil {
		return nil, err
	}
	binary, err := frame.IntColumn(synth.ColBinary)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Features: features,
		Rows:     len(X),
		Imputed:  dataprep.ImputeMatrixMean(X),
	}

	// Linear baseline on the continuous target.
	lin := model.NewLinearRegression()
	if err := lin.Fit(X, score); err != nil {
		return nil, err
	}
	pred := lin.Predict(X)
	res.Intercept = lin.Intercept
	res.Coef = lin.Coef
	res.LinearR2 = model.R2(score, pred)
	res.LinearRMSE = model.RMSE(score, pred)

	mean, std, err := crossValidateR2(X, score, opts)
	if err != nil {
		return nil, err
	}
	res.CVR2Mean, res.CVR2Std = mean, std

	// Random forest on the binary label.
	rf := model.NewRandomForest(
		model.WithNEstimators(opts.Trees),
		model.WithForestMaxDepth(opts.MaxDepth),
		model.WithForestSeed(opts.Seed),
	)
	if err := rf.Fit(X, binary); err != nil {
		return nil, err
	}
	res.TrainAccuracy = model.Accuracy(binary, rf.Predict(X))
	res.OOBError, res.OOBValid = rf.OOBError()
	res.Importances = rf.Importances()
	return res, nil
}

// crossValidateR2 fits a fresh OLS per fold and scores it on the held-out
// rows.
func crossValidateR2(X [][]float64, y []float64, opts Options) (mean, std float64, err error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	folds := split.KFold(rng, len(X), opts.Folds)
	scores := make([]float64, 0, opts.Folds)
	for _, fold := range folds {
		trainIdx := split.Complement(len(X), fold)
		Xtr, ytr := split.Take(X, y, trainIdx)
		Xte, yte := split.Take(X, y, fold)

		lin := model.NewLinearRegression()
		if err := lin.Fit(Xtr, ytr); err != nil {
			return 0, 0, fmt.Errorf("analysis: fold fit: %w", err)
		}
		scores = append(scores, model.R2(yte, lin.Predict(Xte)))
	}
	return stats.Mean(scores), stats.Std(scores), nil
}

// RankedImportances pairs features with their importances, descending.
func (r *Result) RankedImportances() []FeatureImportance {
	out := make([]FeatureImportance, len(r.Features))
	for i, name := range r.Features {
		out[i] = FeatureImportance{Feature: name, Importance: r.Importances[i]}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Importance > out[b].Importance })
	return out
}

// FeatureImportance is one row of the importance ranking.
type FeatureImportance struct {
	Feature    string
	Importance float64
}
