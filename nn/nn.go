// Copyright 2025 The dnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn exposes the network building blocks: layer definitions,
// parameter initialization, the forward pass, and loss/metric functions.
package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dnet-ml/dnet/internal/nn"
)

// FC describes one fully-connected layer: a unit count paired with an
// activation function. An ordered slice of FC values defines the topology.
type FC = nn.FC

// Params holds one layer's weight matrix and bias vector.
type Params = nn.Params

// Grads is the gradient structure, shape-isomorphic to Params.
type Grads = nn.Grads

// Activation is an elementwise activation function with a derivative.
type Activation = nn.Activation

// Activations

// Sigmoid is the logistic activation.
type Sigmoid = nn.Sigmoid

// Tanh is the hyperbolic-tangent activation.
type Tanh = nn.Tanh

// ReLU is the rectified-linear activation.
type ReLU = nn.ReLU

// Identity passes pre-activations through unchanged.
type Identity = nn.Identity

// Losses and metrics

// Loss is a scalar cost with an analytic gradient over predictions.
type Loss = nn.Loss

// MSE is mean squared error.
type MSE = nn.MSE

// BinaryCrossEntropy is mean binary cross-entropy.
type BinaryCrossEntropy = nn.BinaryCrossEntropy

// Metric scores predictions against targets for reporting.
type Metric = nn.Metric

// ShapeError reports a topology/data dimension mismatch.
type ShapeError = nn.ShapeError

// Init creates per-layer parameters: seeded scaled-normal weights and zero
// biases. Deterministic for a fixed seed, topology, and input width.
//
// Example:
//
//	layers := []nn.FC{
//	    {Units: 4, Activation: nn.Tanh{}},
//	    {Units: 1, Activation: nn.Sigmoid{}},
//	}
//	params, err := nn.Init(layers, 3, 0)
func Init(layers []FC, inputDim int, seed uint64) ([]Params, error) {
	return nn.Init(layers, inputDim, seed)
}

// Predict propagates x through every layer and returns the final
// activation. Pure: params and x are never mutated.
func Predict(layers []FC, params []Params, x *mat.Dense) (*mat.Dense, error) {
	return nn.Predict(layers, params, x)
}

// BinaryAccuracy returns the fraction of thresholded predictions matching
// the target class.
func BinaryAccuracy(threshold float64) Metric {
	return nn.BinaryAccuracy(threshold)
}

// MAE returns the negated mean absolute error.
func MAE() Metric {
	return nn.MAE()
}
