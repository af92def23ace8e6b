// SPDX-License-Identifier: MIT

// Package matrix - conversions and whole-matrix helpers that work on any
// Matrix[T] implementation through the capability contract only.
package matrix

import "fmt"

const (
	opToRows   = "ToRows"
	opValidate = "Validate"
	opFromRows = "FromRows"
)

// isNil reports whether m is a nil interface or wraps a nil pointer to one
// of this package's variants. Foreign implementations are only checked for
// the nil interface.
func isNil[T comparable](m Matrix[T]) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *Rectangular[T]:
		return v == nil
	case *Square[T]:
		return v == nil
	case *Symmetric[T]:
		return v == nil
	case *Diagonal[T]:
		return v == nil
	default:
		return false
	}
}

// ToRows returns a dense [][]T snapshot of m in row-major order.
// Complexity: O(r*c).
func ToRows[T comparable](m Matrix[T]) ([][]T, error) {
	if isNil(m) {
		return nil, matrixErrorf(opToRows, ErrNilArgument)
	}
	r, c := m.Rows(), m.Cols()
	buf := make([]T, r*c)
	out := make([][]T, r)
	for i := 0; i < r; i++ {
		out[i] = buf[i*c : (i+1)*c : (i+1)*c]
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opToRows, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and the same elements
// under ==. Variant kinds are not compared. Nil operands are never equal.
// Complexity: O(r*c).
func Equal[T comparable](a, b Matrix[T]) bool {
	if isNil(a) || isNil(b) || a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, err1 := a.At(i, j)
			y, err2 := b.At(i, j)
			if err1 != nil || err2 != nil || x != y {
				return false
			}
		}
	}

	return true
}

// Validate re-runs the structural check of m.Kind() against m's current
// contents. Writes through Set are trusted and never re-checked, so this is
// how callers detect a Symmetric matrix made asymmetric by single-cell writes.
// Equality is == unless opts supply WithEqual.
//
// Errors: ErrNilArgument (nil interface or nil variant pointer), ErrAsymmetry,
// ErrNonDiagonal, ErrNonSquare; ErrInvalidArgument when m reports KindUnknown
// or a tag outside Kinds().
// Complexity: O(n²) for square kinds, O(1) for Rectangular.
func Validate[T comparable](m Matrix[T], opts ...Option[T]) error {
	if isNil(m) {
		return matrixErrorf(opValidate, ErrNilArgument)
	}
	if k := m.Kind(); k == KindUnknown || int(k) >= kindCount {
		return matrixErrorf(opValidate, fmt.Errorf("kind %v: %w", k, ErrInvalidArgument))
	}
	o := gatherOptions(opts)
	at := func(i, j int) T {
		v, _ := m.At(i, j) // indices stay within Rows/Cols
		return v
	}
	s := Shape{Rows: m.Rows(), Cols: m.Cols()}
	if err := checkStructure(m.Kind(), s, at, o.equal); err != nil {
		return matrixErrorf(opValidate, err)
	}

	return nil
}

// FromRows builds a matrix of the requested kind from a two-dimensional input,
// running that kind's constructor (and therefore its validation). Diagonal
// input is compacted.
// Errors: those of the selected constructor; ErrInvalidArgument for KindUnknown.
func FromRows[T comparable](kind Kind, rows [][]T, opts ...Option[T]) (Matrix[T], error) {
	var (
		m   Matrix[T]
		err error
	)
	switch kind {
	case KindRectangular:
		var r *Rectangular[T]
		r, err = NewRectangularFromRows(rows, opts...)
		m = r
	case KindSquare:
		var s *Square[T]
		s, err = NewSquareFromRows(rows, opts...)
		m = s
	case KindSymmetric:
		var s *Symmetric[T]
		s, err = NewSymmetricFromRows(rows, opts...)
		m = s
	case KindDiagonal:
		var d *Diagonal[T]
		d, err = NewDiagonalFromRows(rows, opts...)
		m = d
	default:
		err = matrixErrorf(opFromRows, fmt.Errorf("kind %v: %w", kind, ErrInvalidArgument))
	}
	if err != nil {
		return nil, err // never a typed-nil interface
	}

	return m, nil
}
