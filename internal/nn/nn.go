// Package nn implements the building blocks of a fully-connected network:
// layer definitions, parameter initialization, the forward pass, and the
// loss and metric functions used during training.
//
// Matrices follow a column-per-example layout: an input batch with f
// features and m examples is an f×m *mat.Dense. A layer with u units then
// owns a u×prev weight matrix and a u×1 bias vector, where prev is the
// feature count of whatever feeds it.
//
// Example:
//
//	layers := []nn.FC{
//	    {Units: 4, Activation: nn.Tanh{}},
//	    {Units: 1, Activation: nn.Sigmoid{}},
//	}
//	params, err := nn.Init(layers, 3, 0)
//	pred, err := nn.Predict(layers, params, inputs)
package nn

import (
	"gonum.org/v1/gonum/mat"
)

// FC describes one fully-connected layer: a unit count paired with an
// activation function. An ordered slice of FC values defines the network
// topology; depth is the slice length.
type FC struct {
	Units      int
	Activation Activation
}

// Params holds the trainable state of one layer.
//
// W has shape (units, prev) and B has shape (units, 1), where prev is the
// input feature count for the first layer and the preceding layer's unit
// count otherwise. Shapes are fixed at initialization and must never change
// for the lifetime of a training run.
type Params struct {
	W *mat.Dense
	B *mat.Dense
}

// Grads is the gradient of the cost with respect to one layer's Params.
// It is structurally identical to Params: same fields, same shapes.
type Grads = Params

// ZerosLike returns a Params value with the same shapes as p and all
// entries zero. Used for velocity accumulators and zero-gradient tests.
func (p Params) ZerosLike() Params {
	wr, wc := p.W.Dims()
	br, bc := p.B.Dims()
	return Params{
		W: mat.NewDense(wr, wc, nil),
		B: mat.NewDense(br, bc, nil),
	}
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	return Params{
		W: mat.DenseCopyOf(p.W),
		B: mat.DenseCopyOf(p.B),
	}
}

// CloneAll deep-copies a whole parameter stack.
func CloneAll(params []Params) []Params {
	out := make([]Params, len(params))
	for i, p := range params {
		out[i] = p.Clone()
	}
	return out
}
