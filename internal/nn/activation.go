package nn

import "math"

// Activation is an elementwise activation function with a derivative.
//
// Apply maps a pre-activation z to the layer output; Deriv is dApply/dz at
// the same z and is consumed only by the analytic gradient provider.
type Activation interface {
	Apply(z float64) float64
	Deriv(z float64) float64
	String() string
}

// Sigmoid is the logistic activation 1/(1+e^-z).
type Sigmoid struct{}

func (Sigmoid) Apply(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }

func (s Sigmoid) Deriv(z float64) float64 {
	a := s.Apply(z)
	return a * (1.0 - a)
}

func (Sigmoid) String() string { return "sigmoid" }

// Tanh is the hyperbolic-tangent activation.
type Tanh struct{}

func (Tanh) Apply(z float64) float64 { return math.Tanh(z) }

func (Tanh) Deriv(z float64) float64 {
	a := math.Tanh(z)
	return 1.0 - a*a
}

func (Tanh) String() string { return "tanh" }

// ReLU is the rectified-linear activation max(0, z).
type ReLU struct{}

func (ReLU) Apply(z float64) float64 {
	if z > 0 {
		return z
	}
	return 0
}

func (ReLU) Deriv(z float64) float64 {
	if z > 0 {
		return 1
	}
	return 0
}

func (ReLU) String() string { return "relu" }

// Identity passes pre-activations through unchanged. Useful for the
// output layer of a regression network.
type Identity struct{}

func (Identity) Apply(z float64) float64 { return z }

func (Identity) Deriv(float64) float64 { return 1 }

func (Identity) String() string { return "identity" }
