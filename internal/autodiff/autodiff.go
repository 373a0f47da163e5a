// Package autodiff turns the scalar training cost into a gradient over the
// parameter stack.
//
// Two providers are available: Backprop, an analytic reverse-mode
// differentiation of the forward pass, and Numeric, central finite
// differences over the flattened parameter vector. Both are compiled once
// from a topology and a loss, and both honor the same contract: given a
// parameter stack and a batch, return a fresh gradient stack of identical
// shapes, with no observable side effects.
package autodiff

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dnet-ml/dnet/internal/nn"
)

// Provider computes the gradient of the cost with respect to every weight
// and bias, evaluated at the given parameters and batch.
//
// Implementations must be deterministic and side-effect-free: params, x,
// and y are never mutated, and the returned stack is freshly allocated on
// every call.
type Provider interface {
	Grad(params []nn.Params, x, y *mat.Dense) ([]nn.Grads, error)
}
