package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dnet-ml/dnet/internal/data"
	"github.com/dnet-ml/dnet/internal/nn"
)

// dataset returns x (2×n) and y (1×n) with column i holding the value i.
func dataset(n int) (*mat.Dense, *mat.Dense) {
	x := mat.NewDense(2, n, nil)
	y := mat.NewDense(1, n, nil)
	for i := 0; i < n; i++ {
		x.Set(0, i, float64(i))
		x.Set(1, i, float64(i))
		y.Set(0, i, float64(i))
	}
	return x, y
}

func TestIterate_PartitionsInOrder(t *testing.T) {
	x, y := dataset(10)
	it := data.NewBatchIterator(4)
	require.NoError(t, it.Check(x, y))

	var widths []int
	next := 0.0
	for batch := range it.Iterate(x, y) {
		_, cols := batch.Inputs.Dims()
		_, ycols := batch.Outputs.Dims()
		assert.Equal(t, cols, ycols)
		widths = append(widths, cols)

		for c := 0; c < cols; c++ {
			assert.Equal(t, next, batch.Inputs.At(0, c))
			assert.Equal(t, next, batch.Outputs.At(0, c))
			next++
		}
	}

	// 10 examples at batch size 4: one short final batch.
	assert.Equal(t, []int{4, 4, 2}, widths)
	assert.Equal(t, 10.0, next, "iteration did not cover the full dataset")
}

func TestIterate_Restartable(t *testing.T) {
	x, y := dataset(8)
	it := data.NewBatchIterator(3)

	collect := func() []float64 {
		var out []float64
		for batch := range it.Iterate(x, y) {
			_, cols := batch.Inputs.Dims()
			for c := 0; c < cols; c++ {
				out = append(out, batch.Inputs.At(0, c))
			}
		}
		return out
	}

	assert.Equal(t, collect(), collect(), "second pass differs from first")
}

func TestIterate_EarlyBreak(t *testing.T) {
	x, y := dataset(9)
	it := data.NewBatchIterator(3)

	seen := 0
	for range it.Iterate(x, y) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestIterate_ViewsNotCopies(t *testing.T) {
	x, y := dataset(4)
	it := data.NewBatchIterator(2)

	for batch := range it.Iterate(x, y) {
		// A batch is a window over the dataset: writing through the view
		// must show up in the original matrix.
		batch.Inputs.Set(0, 0, -1)
		break
	}
	assert.Equal(t, -1.0, x.At(0, 0))
}

func TestCheck_ExampleCountMismatch(t *testing.T) {
	x := mat.NewDense(2, 5, nil)
	y := mat.NewDense(1, 4, nil)
	it := data.NewBatchIterator(2)

	var shapeErr *nn.ShapeError
	require.ErrorAs(t, it.Check(x, y), &shapeErr)
}
