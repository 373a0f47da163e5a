// Copyright 2025 The dnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff exposes the gradient providers that differentiate the
// training cost with respect to the parameter stack.
package autodiff

import (
	"github.com/dnet-ml/dnet/internal/autodiff"
	"github.com/dnet-ml/dnet/internal/nn"
)

// Provider computes cost gradients for a parameter stack and a batch.
type Provider = autodiff.Provider

// Backprop is the analytic reverse-mode provider.
type Backprop = autodiff.Backprop

// Numeric is the central finite-difference provider.
type Numeric = autodiff.Numeric

// NewBackprop compiles an analytic gradient provider for the given
// topology and loss.
func NewBackprop(layers []nn.FC, loss nn.Loss) *Backprop {
	return autodiff.NewBackprop(layers, loss)
}

// NewNumeric compiles a finite-difference provider. step is the
// perturbation size; zero selects the default.
func NewNumeric(layers []nn.FC, loss nn.Loss, step float64) *Numeric {
	return autodiff.NewNumeric(layers, loss, step)
}
