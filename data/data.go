// Copyright 2025 The dnet Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data exposes mini-batch iteration over column-per-example
// datasets.
package data

import (
	"github.com/dnet-ml/dnet/internal/data"
)

// Batch is one mini-batch: column-slice views over the full dataset.
type Batch = data.Batch

// BatchIterator partitions a dataset into ordered mini-batches.
type BatchIterator = data.BatchIterator

// NewBatchIterator returns an iterator producing batches of size columns.
//
// Example:
//
//	it := data.NewBatchIterator(32)
//	for batch := range it.Iterate(inputs, outputs) {
//	    // one gradient step per batch
//	}
func NewBatchIterator(size int) *BatchIterator {
	return data.NewBatchIterator(size)
}
