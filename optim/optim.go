// Copyright 2025 The dnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/dnet-ml/dnet/internal/optim"
)

// Optimizer is the training contract shared by all algorithms.
type Optimizer = optim.Optimizer

// Config represents the construction parameters for optimizers.
type Config = optim.Config

// History records one cost and one accuracy value per completed epoch.
type History = optim.History

// Unimplemented is the abstract base whose Train always fails with
// ErrNotImplemented.
type Unimplemented = optim.Unimplemented

// ConfigError reports an invalid hyperparameter, raised at construction.
type ConfigError = optim.ConfigError

// ErrNotImplemented is returned when Train is invoked without a concrete
// training algorithm.
var ErrNotImplemented = optim.ErrNotImplemented

// SGD (Stochastic Gradient Descent)

// SGD implements plain stochastic gradient descent.
type SGD = optim.SGD

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	opt, err := optim.NewSGD(optim.Config{
//	    Layers:   layers,
//	    Loss:     nn.BinaryCrossEntropy{},
//	    Accuracy: nn.BinaryAccuracy(0.5),
//	    Epochs:   100,
//	    LR:       0.1,
//	})
func NewSGD(cfg Config) (*SGD, error) {
	return optim.NewSGD(cfg)
}

// Momentum (bias-corrected velocity)

// Momentum implements gradient descent with a bias-corrected velocity
// accumulator.
type Momentum = optim.Momentum

// NewMomentum creates a new Momentum optimizer.
//
// Example:
//
//	opt, err := optim.NewMomentum(optim.Config{
//	    Layers:   layers,
//	    Loss:     nn.BinaryCrossEntropy{},
//	    Accuracy: nn.BinaryAccuracy(0.5),
//	    Epochs:   100,
//	    LR:       0.1,
//	    Beta:     0.9,
//	})
func NewMomentum(cfg Config) (*Momentum, error) {
	return optim.NewMomentum(cfg)
}
