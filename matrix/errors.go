// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with
// method context via %w); tests check them with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that a requested size is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonBinary indicates a value other than 0 or 1.
	ErrNonBinary = errors.New("matrix: value must be 0 or 1")

	// ErrDimensionMismatch indicates a vector whose length differs from the matrix size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInconsistent indicates that A·x = b has no solution over GF(2).
	ErrInconsistent = errors.New("matrix: system has no solution")

	// ErrTooManySolutions indicates a null space too large to enumerate.
	ErrTooManySolutions = errors.New("matrix: too many solutions to enumerate")
)
