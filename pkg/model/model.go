package model

// Regressor is a supervised model over a continuous target.
type Regressor interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) []float64
}

// Classifier is a supervised model over integer class labels.
type Classifier interface {
	Fit(X [][]float64, y []int) error
	Predict(X [][]float64) []int
}
