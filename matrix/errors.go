// SPDX-License-Identifier: MIT
package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for the matrix package. Algorithms return these directly
// or wrapped via matrixErrorf; callers branch with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfRange indicates a row or column index outside valid bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates a nil Matrix was passed where one was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDeterminantZero is returned when an entire pivot column is zero at or
	// below the pivot row, so no viable pivot exists.
	ErrDeterminantZero = errors.New("matrix: determinant is zero")

	// ErrSingularValueWasZero is returned when a selected pivot value is
	// exactly zero after row selection.
	ErrSingularValueWasZero = errors.New("matrix: singular pivot value")

	// ErrZeroDuringInversion is returned on numerical degeneracy detected
	// mid-pass during Gauss-Jordan elimination.
	ErrZeroDuringInversion = errors.New("matrix: zero encountered during inversion")
)

// matrixErrorf wraps an underlying error with the calling method's name for
// consistent, greppable diagnostics.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("matrix.%s: %w", method, err)
}
