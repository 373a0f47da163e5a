package optim

import "errors"

// ErrNotImplemented is returned by the Unimplemented base when Train is
// invoked without a concrete training algorithm.
var ErrNotImplemented = errors.New("optim: training algorithm not implemented")
