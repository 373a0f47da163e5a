package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dnet-ml/dnet/internal/nn"
)

// SGD implements plain stochastic gradient descent.
//
// Update rule, applied in place after every batch gradient:
//
//	W -= lr * gW
//	B -= lr * gB
//
// Example:
//
//	opt, err := optim.NewSGD(optim.Config{
//	    Layers:   layers,
//	    Loss:     nn.MSE{},
//	    Accuracy: nn.MAE(),
//	    Epochs:   100,
//	    LR:       0.01,
//	})
type SGD struct {
	Unimplemented
	core *core
}

// NewSGD creates an SGD optimizer. Invalid hyperparameters are rejected
// here, before any training work begins.
func NewSGD(cfg Config) (*SGD, error) {
	c, err := newCore(cfg)
	if err != nil {
		return nil, err
	}
	return &SGD{core: c}, nil
}

// Train runs the full SGD loop over x and y.
func (s *SGD) Train(x, y *mat.Dense) error {
	return s.core.run(x, y, &sgdRule{lr: s.core.lr})
}

// History returns the per-epoch cost and accuracy records.
func (s *SGD) History() History { return s.core.history }

// Params returns the parameter stack owned by this optimizer.
func (s *SGD) Params() []nn.Params { return s.core.params }

// sgdRule is the plain gradient-descent update strategy.
type sgdRule struct {
	lr float64
}

func (*sgdRule) start([]nn.Params) {}

func (r *sgdRule) step(params []nn.Params, grads []nn.Grads) {
	for i := range params {
		axpy(params[i].W, grads[i].W, -r.lr)
		axpy(params[i].B, grads[i].B, -r.lr)
	}
}
