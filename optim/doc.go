// Copyright 2025 The dnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the training loops for fully-connected networks.
//
// # Overview
//
// This package contains:
//   - SGD: plain stochastic gradient descent
//   - Momentum: gradient descent with a bias-corrected velocity accumulator
//   - Optimizer interface shared by both
//
// Both algorithms own their parameter stack for the duration of one Train
// call: parameters are initialized from the dataset's feature count, then
// updated in place after every mini-batch gradient. The per-epoch summed
// batch cost and the full-dataset accuracy are recorded in History.
//
// # Basic Usage
//
//	import (
//	    "github.com/dnet-ml/dnet/nn"
//	    "github.com/dnet-ml/dnet/optim"
//	)
//
//	func main() {
//	    layers := []nn.FC{
//	        {Units: 4, Activation: nn.Tanh{}},
//	        {Units: 1, Activation: nn.Sigmoid{}},
//	    }
//
//	    opt, err := optim.NewMomentum(optim.Config{
//	        Layers:    layers,
//	        Loss:      nn.BinaryCrossEntropy{},
//	        Accuracy:  nn.BinaryAccuracy(0.5),
//	        Epochs:    200,
//	        LR:        0.5,
//	        BatchSize: 32,
//	        Beta:      0.9,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := opt.Train(inputs, outputs); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    hist := opt.History()
//	    final := opt.Params()
//	}
//
// # Training Loop Contract
//
// Per epoch, per batch, in strict sequence:
//
//  1. Compute the batch gradient at the current parameters.
//  2. Apply the algorithm's update rule in place.
//  3. Add the batch cost under the freshly updated parameters to the
//     epoch's loss accumulator.
//
// After the last batch of an epoch, the summed loss and the accuracy over
// the full dataset are appended to History. Training is single-threaded
// and synchronous; an Optimizer must not be shared between concurrent
// Train calls.
package optim
