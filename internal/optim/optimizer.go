// Package optim implements gradient-based training loops for
// fully-connected networks.
//
// This package provides:
//   - Optimizer interface: the training contract every algorithm satisfies
//   - SGD: plain stochastic gradient descent
//   - Momentum: gradient descent with a bias-corrected velocity accumulator
//
// Both algorithms share one evaluation core (initialization, forward pass,
// cost, accuracy, per-epoch bookkeeping) and differ only in the update rule
// applied after each batch gradient.
//
// Example usage:
//
//	opt, err := optim.NewSGD(optim.Config{
//	    Layers:   layers,
//	    Loss:     nn.BinaryCrossEntropy{},
//	    Accuracy: nn.BinaryAccuracy(0.5),
//	    Epochs:   50,
//	    LR:       0.1,
//	})
//	if err != nil {
//	    return err
//	}
//	if err := opt.Train(inputs, outputs); err != nil {
//	    return err
//	}
//	hist := opt.History() // one cost and accuracy entry per epoch
package optim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/dnet-ml/dnet/internal/autodiff"
	"github.com/dnet-ml/dnet/internal/data"
	"github.com/dnet-ml/dnet/internal/nn"
)

// Optimizer is the training contract shared by all algorithms.
//
// Train runs the full loop to completion: it initializes the parameter
// stack from the dataset's feature count, then performs Epochs passes over
// the mini-batches, updating parameters in place after every batch. There
// is no early stopping and no cancellation; a Train call either finishes
// or returns the first error it hits.
//
// History and Params expose the per-epoch bookkeeping and the final
// parameter stack once Train has returned. An Optimizer instance owns its
// parameters, history, and any accumulator state exclusively; it must not
// be shared between concurrent Train calls.
type Optimizer interface {
	Train(x, y *mat.Dense) error
	History() History
	Params() []nn.Params
}

// Unimplemented is the abstract base of the Optimizer hierarchy: its Train
// always fails with ErrNotImplemented. Embed it when building a new
// algorithm incrementally.
type Unimplemented struct{}

// Train reports that no training algorithm has been provided.
func (Unimplemented) Train(_, _ *mat.Dense) error { return ErrNotImplemented }

// History returns an empty history.
func (Unimplemented) History() History { return History{} }

// Params returns nil: nothing was ever initialized.
func (Unimplemented) Params() []nn.Params { return nil }

// History records one cost and one accuracy value per completed epoch, in
// epoch order. Both slices are append-only and always the same length.
type History struct {
	Cost     []float64
	Accuracy []float64
}

// rule is the per-batch update strategy that distinguishes the algorithms.
// start runs once per training run, after parameter initialization; step
// applies one batch's gradient to the parameter stack in place.
type rule interface {
	start(params []nn.Params)
	step(params []nn.Params, grads []nn.Grads)
}

// core is the evaluation machinery shared by every algorithm: the
// validated configuration plus the parameter stack and history owned by
// one training run.
type core struct {
	layers   []nn.FC
	loss     nn.Loss
	metric   nn.Metric
	epochs   int
	lr       float64
	beta     float64
	seed     uint64
	iterator *data.BatchIterator
	grad     autodiff.Provider
	logger   zerolog.Logger

	params  []nn.Params
	history History
}

// initParams creates the parameter stack from the dataset's feature count.
func (c *core) initParams(x *mat.Dense) error {
	features, _ := x.Dims()
	params, err := nn.Init(c.layers, features, c.seed)
	if err != nil {
		return err
	}
	c.params = params
	return nil
}

// predict runs the forward pass over the given parameter snapshot.
func (c *core) predict(params []nn.Params, x *mat.Dense) (*mat.Dense, error) {
	return nn.Predict(c.layers, params, x)
}

// cost composes the forward pass with the configured loss.
func (c *core) cost(params []nn.Params, x, y *mat.Dense) (float64, error) {
	pred, err := c.predict(params, x)
	if err != nil {
		return 0, err
	}
	return c.loss.Cost(pred, y), nil
}

// accuracy scores already-computed predictions with the configured metric.
func (c *core) accuracy(pred, y *mat.Dense) float64 {
	return c.metric(pred, y)
}

// evaluate scores the current parameters over a full dataset. It runs once
// per epoch, never per batch.
func (c *core) evaluate(x, y *mat.Dense) (float64, error) {
	pred, err := c.predict(c.params, x)
	if err != nil {
		return 0, err
	}
	return c.accuracy(pred, y), nil
}

// run is the training loop shared by every algorithm. The sequence per
// batch is fixed: gradient, in-place update via the rule, then the cost of
// the batch under the just-updated parameters. Epoch cost is the sum of
// those post-update batch costs; epoch accuracy is evaluated over the full
// dataset after the last batch.
func (c *core) run(x, y *mat.Dense, r rule) error {
	if err := c.iterator.Check(x, y); err != nil {
		return err
	}
	yRows, _ := y.Dims()
	if want := c.layers[len(c.layers)-1].Units; yRows != want {
		return &nn.ShapeError{
			Op:     "train",
			Detail: fmt.Sprintf("outputs have %d rows, final layer has %d units", yRows, want),
		}
	}
	if err := c.initParams(x); err != nil {
		return err
	}
	r.start(c.params)

	runID := uuid.NewString()
	for epoch := 1; epoch <= c.epochs; epoch++ {
		var loss float64
		for batch := range c.iterator.Iterate(x, y) {
			grads, err := c.grad.Grad(c.params, batch.Inputs, batch.Outputs)
			if err != nil {
				return err
			}
			r.step(c.params, grads)

			batchCost, err := c.cost(c.params, batch.Inputs, batch.Outputs)
			if err != nil {
				return err
			}
			loss += batchCost
		}

		acc, err := c.evaluate(x, y)
		if err != nil {
			return err
		}
		c.history.Cost = append(c.history.Cost, loss)
		c.history.Accuracy = append(c.history.Accuracy, acc)
		c.logger.Info().
			Str("run", runID).
			Int("epoch", epoch).
			Float64("cost", loss).
			Float64("accuracy", acc).
			Msg("epoch complete")
	}
	return nil
}

// axpy adds a*src to dst, entry for entry. Both matrices are full dense
// allocations, so the raw backing slices line up.
func axpy(dst, src *mat.Dense, a float64) {
	d := dst.RawMatrix().Data
	s := src.RawMatrix().Data
	for i := range d {
		d[i] += a * s[i]
	}
}
