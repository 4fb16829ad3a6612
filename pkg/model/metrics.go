package model

import "math"

func MSE(yTrue, yPred []float64) float64 {
	n := float64(len(yTrue))
	if n == 0 {
		return 0
	}
	s := 0.0
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		s += d * d
	}
	return s / n
}

func MAE(yTrue, yPred []float64) float64 {
	n := float64(len(yTrue))
	if n == 0 {
		return 0
	}
	s := 0.0
	for i := range yTrue {
		s += math.Abs(yPred[i] - yTrue[i])
	}
	return s / n
}

func RMSE(yTrue, yPred []float64) float64 { return math.Sqrt(MSE(yTrue, yPred)) }

// R2 is the coefficient of determination. A constant yTrue yields 0.
func R2(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	m := 0.0
	for _, v := range yTrue {
		m += v
	}
	m /= float64(len(yTrue))
	ssTot, ssRes := 0.0, 0.0
	for i := range yTrue {
		d := yTrue[i] - m
		ssTot += d * d
		r := yTrue[i] - yPred[i]
		ssRes += r * r
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}

// Accuracy is the fraction of matching labels.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// PrecisionRecallF1 computes binary classification metrics for labels 0/1.
func PrecisionRecallF1(yTrue, yPred []int) (prec, rec, f1 float64) {
	tp, fp, fn := 0, 0, 0
	for i := range yTrue {
		switch {
		case yPred[i] == 1 && yTrue[i] == 1:
			tp++
		case yPred[i] == 1 && yTrue[i] == 0:
			fp++
		case yPred[i] == 0 && yTrue[i] == 1:
			fn++
		}
	}
	if tp+fp > 0 {
		prec = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		rec = float64(tp) / float64(tp+fn)
	}
	if prec+rec > 0 {
		f1 = 2 * prec * rec / (prec + rec)
	}
	return
}
