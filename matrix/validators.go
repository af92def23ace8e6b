// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for construction-time checks.
//  - Keep constructors minimal by delegating shape/nil/structure checks here.
//  - Return plain sentinel errors (coordinates added, no call-site tag) so
//    constructors can wrap uniformly with their own tag.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; they allocate nothing.
//  - Structure checks run O(n²) over the upper triangle only (pairs i<j).
//
// Note:
//  - Structure checks read through an accessor func so the same code serves
//    two-dimensional input, flattened input and live matrices (Validate).
//  - The symmetric check rejects when mirrored entries DIFFER.

package matrix

import (
	"fmt"
	"math"
)

// cellFunc reads the element at (i, j) of some input representation.
type cellFunc[T comparable] func(i, j int) T

// rowsCell reads from a two-dimensional input.
func rowsCell[T comparable](rows [][]T) cellFunc[T] {
	return func(i, j int) T { return rows[i][j] }
}

// flatCell reads from a row-major flattened input with cols columns.
func flatCell[T comparable](data []T, cols int) cellFunc[T] {
	return func(i, j int) T { return data[i*cols+j] }
}

// validateShape ensures both counts are >= 1 and that rows*cols fits in int.
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrBadShape
	}
	if rows > math.MaxInt/cols {
		return fmt.Errorf("%dx%d overflows the cell count: %w", rows, cols, ErrBadShape)
	}

	return nil
}

// shapeOfRows validates a two-dimensional input and returns its shape.
//
// Order: nil outer -> nil row -> empty -> ragged.
// Complexity: O(r).
func shapeOfRows[T comparable](rows [][]T) (Shape, error) {
	if rows == nil {
		return Shape{}, ErrNilArgument
	}
	for i, row := range rows {
		if row == nil {
			return Shape{}, fmt.Errorf("row %d: %w", i, ErrNilArgument)
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Shape{}, ErrBadShape
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return Shape{}, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), cols, ErrRaggedRows)
		}
	}

	return Shape{Rows: len(rows), Cols: cols}, nil
}

// validateFlat checks a flattened input against an explicit rows×cols shape.
// Order: nil -> shape -> length.
// Complexity: O(1).
func validateFlat[T comparable](data []T, rows, cols int) error {
	if data == nil {
		return ErrNilArgument
	}
	if err := validateShape(rows, cols); err != nil {
		return err
	}
	if len(data) != rows*cols {
		return fmt.Errorf("len %d != %d*%d: %w", len(data), rows, cols, ErrLengthMismatch)
	}

	return nil
}

// requireSquare ensures Rows == Cols.
func requireSquare(s Shape) error {
	if !s.IsSquare() {
		return fmt.Errorf("shape %s: %w", s, ErrNonSquare)
	}

	return nil
}

// squareSizeOf infers the side of a flattened square input.
// Returns ErrNotPerfectSquare when n has no integer square root.
// Complexity: O(log n).
func squareSizeOf(n int) (int, error) {
	if n < 1 {
		return 0, ErrBadShape
	}
	// Integer Newton iteration; avoids float rounding on large n.
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	if x*x != n {
		return 0, fmt.Errorf("len %d: %w", n, ErrNotPerfectSquare)
	}

	return x, nil
}

// checkSymmetric verifies at(i,j) == at(j,i) for every pair i<j of an n×n input.
// Returns ErrAsymmetry with the first offending coordinates.
// Complexity: O(n²) time, O(1) space.
func checkSymmetric[T comparable](n int, at cellFunc[T], eq func(a, b T) bool) error {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !eq(at(i, j), at(j, i)) {
				return fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// checkDiagonal verifies that both mirrored off-diagonal cells of every pair
// i<j equal the zero value of T. One-sided non-zeros are rejected as well.
// Complexity: O(n²) time, O(1) space.
func checkDiagonal[T comparable](n int, at cellFunc[T], eq func(a, b T) bool) error {
	var zero T
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !eq(at(i, j), zero) {
				return fmt.Errorf("(%d,%d): %w", i, j, ErrNonDiagonal)
			}
			if !eq(at(j, i), zero) {
				return fmt.Errorf("(%d,%d): %w", j, i, ErrNonDiagonal)
			}
		}
	}

	return nil
}

// checkStructure runs the structural check that belongs to kind over an
// r×c input. Rectangular has none; Square needs r == c; Symmetric and
// Diagonal add their pairwise checks.
func checkStructure[T comparable](kind Kind, s Shape, at cellFunc[T], eq func(a, b T) bool) error {
	switch kind {
	case KindRectangular:
		return nil
	case KindSquare:
		return requireSquare(s)
	case KindSymmetric:
		if err := requireSquare(s); err != nil {
			return err
		}
		return checkSymmetric(s.Rows, at, eq)
	case KindDiagonal:
		if err := requireSquare(s); err != nil {
			return err
		}
		return checkDiagonal(s.Rows, at, eq)
	default:
		panic(fmt.Sprintf("matrix: no structural check for kind %v", kind))
	}
}
