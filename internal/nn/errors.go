package nn

import "fmt"

// ShapeError reports a mismatch between the declared network topology and
// the data (or parameters) it was asked to process. It is not recoverable:
// the surrounding training run must be aborted.
type ShapeError struct {
	Op     string // operation that detected the mismatch, e.g. "init"
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("nn: %s: %s", e.Op, e.Detail)
}

func shapeErrf(op, format string, args ...any) *ShapeError {
	return &ShapeError{Op: op, Detail: fmt.Sprintf(format, args...)}
}
