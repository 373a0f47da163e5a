// Package data slices full datasets into the mini-batches consumed by one
// training epoch. Datasets are column-per-example matrices, so batching is
// column slicing and never copies the underlying values.
package data

import (
	"iter"

	"gonum.org/v1/gonum/mat"

	"github.com/dnet-ml/dnet/internal/nn"
)

// Batch is one mini-batch of a dataset: column-slice views over the full
// input and output matrices. A Batch is only valid for the duration of one
// gradient computation and must not be retained across steps.
type Batch struct {
	Inputs  *mat.Dense
	Outputs *mat.Dense
}

// BatchIterator partitions a dataset into ordered mini-batches of a fixed
// size. The same iterator is reused every epoch; each call to Iterate walks
// the full dataset again from the start.
type BatchIterator struct {
	size int
}

// NewBatchIterator returns an iterator producing batches of size columns.
// The final batch of a pass may be short when the example count is not a
// multiple of size.
func NewBatchIterator(size int) *BatchIterator {
	return &BatchIterator{size: size}
}

// Size reports the configured batch size.
func (it *BatchIterator) Size() int { return it.size }

// Check validates that x and y describe the same examples. Callers are
// expected to run it once before iterating.
func (it *BatchIterator) Check(x, y *mat.Dense) error {
	_, xc := x.Dims()
	_, yc := y.Dims()
	if xc != yc {
		return &nn.ShapeError{Op: "batch", Detail: "inputs and outputs disagree on example count"}
	}
	return nil
}

// Iterate returns a lazy, finite, restartable sequence of batches covering
// every column of (x, y) in order.
func (it *BatchIterator) Iterate(x, y *mat.Dense) iter.Seq[Batch] {
	xr, cols := x.Dims()
	yr, _ := y.Dims()
	return func(yield func(Batch) bool) {
		for start := 0; start < cols; start += it.size {
			end := start + it.size
			if end > cols {
				end = cols
			}
			b := Batch{
				Inputs:  x.Slice(0, xr, start, end).(*mat.Dense),
				Outputs: y.Slice(0, yr, start, end).(*mat.Dense),
			}
			if !yield(b) {
				return
			}
		}
	}
}
