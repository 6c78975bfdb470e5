package linalg

import "errors"

// Every operation that can fail returns one of these sentinels; match them
// with errors.Is. Shape problems are always reported to the caller, never
// papered over by truncating or zero-padding an operand.
var (
	// ErrBadShape is returned when a requested shape is invalid (zero or
	// negative rows or columns).
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrRaggedRows is returned by NewMatrix when the rows do not all have
	// the same length.
	ErrRaggedRows = errors.New("linalg: rows have differing lengths")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub on different shapes, Dot on different lengths,
	// or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")
)
