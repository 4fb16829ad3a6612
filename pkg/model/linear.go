package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearRegression is an ordinary-least-squares fit with intercept, solved by
// QR decomposition. For a target that really is a linear combination of the
// features, the fitted coefficients recover the generative weights directly.
type LinearRegression struct {
	Coef      []float64
	Intercept float64
}

// NewLinearRegression returns an unfitted model.
func NewLinearRegression() *LinearRegression { return &LinearRegression{} }

// Fit solves min ||[1 X]β − y||₂ for β. X is row-major, n×p, with n > p.
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 {
		return errors.New("linear: empty X")
	}
	if len(y) != n {
		return errors.New("linear: X and y length mismatch")
	}
	p := len(X[0])
	if n <= p {
		return fmt.Errorf("linear: need more rows (%d) than features (%d)", n, p)
	}

	a := mat.NewDense(n, p+1, nil)
	for i, row := range X {
		if len(row) != p {
			return errors.New("linear: inconsistent number of features in X rows")
		}
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}

	var qr mat.QR
	qr.Factorize(a)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, mat.NewVecDense(n, y)); err != nil {
		return fmt.Errorf("linear: solve: %w", err)
	}

	m.Intercept = beta.AtVec(0)
	m.Coef = make([]float64, p)
	for j := 0; j < p; j++ {
		m.Coef[j] = beta.AtVec(j + 1)
	}
	return nil
}

// Predict returns ŷ = Xβ + intercept for each row of X.
func (m *LinearRegression) Predict(X [][]float64) []float64 {
	pred := make([]float64, len(X))
	for i, row := range X {
		sum := m.Intercept
		for j, v := range row {
			sum += m.Coef[j] * v
		}
		pred[i] = sum
	}
	return pred
}
