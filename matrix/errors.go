// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors, accessors and Add MUST return these sentinels (wrapped
// with call-site context) and tests MUST check them via errors.Is. No exported
// function panics on user-triggered error conditions; panics are reserved for
// programmer errors (nil handler, nil option func, unmatched variant tags).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// The five roots below form the error taxonomy; every specific sentinel wraps
// exactly one root, so errors.Is(err, ErrInvalidArgument) matches all shape and
// structure rejections while errors.Is(err, ErrNonSquare) stays precise.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> shape -> length -> structure (square, symmetric, diagonal).

var (
	// ErrInvalidArgument is the root of every construction-time rejection:
	// bad size, non-square shape, asymmetric or non-diagonal input, wrong length.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrNilArgument indicates that a required argument (slice, row, operand,
	// combining function) was nil.
	ErrNilArgument = errors.New("matrix: nil argument")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrStructuralWrite signals a write the compact storage of a variant cannot
	// represent (an off-diagonal Set on a Diagonal matrix).
	ErrStructuralWrite = errors.New("matrix: write not representable by matrix structure")

	// ErrDimensionMismatch indicates operands of different shapes in Add.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrReentrantWrite is returned by Set when it is called on a matrix from
	// inside one of that matrix's own change handlers.
	ErrReentrantWrite = errors.New("matrix: write during change notification")
)

// Specific construction sentinels; each wraps ErrInvalidArgument.
var (
	// ErrBadShape is returned when a row or column count is < 1, or an input
	// slice is empty.
	ErrBadShape = fmt.Errorf("%w: rows and columns must be > 0", ErrInvalidArgument)

	// ErrRaggedRows is returned when the rows of a two-dimensional input differ
	// in length from the first row.
	ErrRaggedRows = fmt.Errorf("%w: rows have different lengths", ErrInvalidArgument)

	// ErrLengthMismatch is returned when a flattened input does not hold exactly
	// rows*cols elements.
	ErrLengthMismatch = fmt.Errorf("%w: data length does not match shape", ErrInvalidArgument)

	// ErrNotPerfectSquare is returned when a square shape is inferred from a
	// flattened input whose length has no integer square root.
	ErrNotPerfectSquare = fmt.Errorf("%w: data length is not a perfect square", ErrInvalidArgument)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidArgument)

	// ErrAsymmetry signals that some mirrored pair M[i,j], M[j,i] differs.
	ErrAsymmetry = fmt.Errorf("%w: matrix must be symmetric", ErrInvalidArgument)

	// ErrNonDiagonal signals a non-zero off-diagonal entry in Diagonal input.
	ErrNonDiagonal = fmt.Errorf("%w: matrix must be diagonal", ErrInvalidArgument)
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// accessErrorf wraps an error with a uniform "<Kind>.<method>(row,col)" context.
func accessErrorf(k Kind, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", k.label(), method, row, col, err)
}

// reject wraps err with the constructor tag and traces the rejection.
func reject(tag string, err error) error {
	err = matrixErrorf(tag, err)
	tracer().Debugf("%v", err)

	return err
}
