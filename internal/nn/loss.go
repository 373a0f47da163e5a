package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Loss is a scalar cost over a prediction/target pair.
//
// Grad returns dCost/dPred with the same shape as pred; it is consumed only
// by the analytic gradient provider, never by the training loop itself.
type Loss interface {
	Cost(pred, target *mat.Dense) float64
	Grad(pred, target *mat.Dense) *mat.Dense
}

// MSE is mean squared error over every entry of the prediction matrix.
type MSE struct{}

// Cost returns mean((pred - target)²).
func (MSE) Cost(pred, target *mat.Dense) float64 {
	rows, cols := pred.Dims()
	var sum float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d := pred.At(r, c) - target.At(r, c)
			sum += d * d
		}
	}
	return sum / float64(rows*cols)
}

// Grad returns 2(pred - target)/n.
func (MSE) Grad(pred, target *mat.Dense) *mat.Dense {
	rows, cols := pred.Dims()
	n := float64(rows * cols)
	g := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(r, c, 2.0*(pred.At(r, c)-target.At(r, c))/n)
		}
	}
	return g
}

// bceEps keeps log and division arguments away from 0 and 1.
const bceEps = 1e-12

// BinaryCrossEntropy is the mean binary cross-entropy loss. Predictions are
// expected in (0, 1), e.g. from a sigmoid output layer; values are clamped
// to [bceEps, 1-bceEps] for numerical stability.
type BinaryCrossEntropy struct{}

// Cost returns -mean(t·log(p) + (1-t)·log(1-p)).
func (BinaryCrossEntropy) Cost(pred, target *mat.Dense) float64 {
	rows, cols := pred.Dims()
	var sum float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := clamp(pred.At(r, c))
			t := target.At(r, c)
			sum += t*math.Log(p) + (1.0-t)*math.Log(1.0-p)
		}
	}
	return -sum / float64(rows*cols)
}

// Grad returns (p - t) / (p(1-p)n).
func (BinaryCrossEntropy) Grad(pred, target *mat.Dense) *mat.Dense {
	rows, cols := pred.Dims()
	n := float64(rows * cols)
	g := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := clamp(pred.At(r, c))
			t := target.At(r, c)
			g.Set(r, c, (p-t)/(p*(1.0-p)*n))
		}
	}
	return g
}

func clamp(p float64) float64 {
	if p < bceEps {
		return bceEps
	}
	if p > 1.0-bceEps {
		return 1.0 - bceEps
	}
	return p
}
