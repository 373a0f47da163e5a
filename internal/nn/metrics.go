package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Metric scores predictions against targets. Metrics are reporting-only:
// nothing differentiates them, so any scalar function will do.
type Metric func(pred, target *mat.Dense) float64

// BinaryAccuracy returns the fraction of entries whose thresholded
// prediction matches the target class. Targets are read as class 1 when
// at least 0.5.
func BinaryAccuracy(threshold float64) Metric {
	return func(pred, target *mat.Dense) float64 {
		rows, cols := pred.Dims()
		hits := 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p := pred.At(r, c) >= threshold
				t := target.At(r, c) >= 0.5
				if p == t {
					hits++
				}
			}
		}
		return float64(hits) / float64(rows*cols)
	}
}

// MAE returns the negated mean absolute error, so that like the accuracy
// metrics, larger is better.
func MAE() Metric {
	return func(pred, target *mat.Dense) float64 {
		rows, cols := pred.Dims()
		var sum float64
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				sum += math.Abs(pred.At(r, c) - target.At(r, c))
			}
		}
		return -sum / float64(rows*cols)
	}
}
