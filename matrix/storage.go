// SPDX-License-Identifier: MIT

// Package matrix - backing storage strategies.
//
// Purpose:
//   - Separate "where the numbers live" from "which invariant the variant holds".
//   - denseStore keeps the full two-dimensional array (Rectangular, Square, Symmetric).
//   - diagStore keeps only the main diagonal (Diagonal): O(n) instead of O(n²).
//
// Contract:
//   - Callers bounds-check before get/put; stores index without checks.
//   - put returns ErrStructuralWrite when the cell has no slot in the store;
//     storage is left untouched in that case.
package matrix

// storage is the strategy every variant's base delegates element access to.
type storage[T comparable] interface {
	get(i, j int) T
	put(i, j int, v T) error
	clone() storage[T]
}

// denseStore is a row-per-slice two-dimensional array.
// Rows may be adopted from the caller (AdoptRectangularRows) or freshly allocated.
type denseStore[T comparable] struct {
	rows [][]T
}

// newDenseStore allocates a zero-filled r×c store as one contiguous buffer
// sliced into rows.
// Complexity: O(r*c) time and memory.
func newDenseStore[T comparable](r, c int) *denseStore[T] {
	buf := make([]T, r*c)
	rows := make([][]T, r)
	for i := range rows {
		rows[i] = buf[i*c : (i+1)*c : (i+1)*c]
	}

	return &denseStore[T]{rows: rows}
}

func (s *denseStore[T]) get(i, j int) T { return s.rows[i][j] }

func (s *denseStore[T]) put(i, j int, v T) error {
	s.rows[i][j] = v

	return nil
}

func (s *denseStore[T]) clone() storage[T] {
	r := len(s.rows)
	c := len(s.rows[0])
	cp := newDenseStore[T](r, c)
	for i := 0; i < r; i++ {
		copy(cp.rows[i], s.rows[i])
	}

	return cp
}

// diagStore keeps the main diagonal only. Off-diagonal reads yield the zero
// value without touching the slice; off-diagonal writes are refused.
type diagStore[T comparable] struct {
	diag []T
}

func (s *diagStore[T]) get(i, j int) T {
	if i != j {
		var zero T
		return zero
	}

	return s.diag[i]
}

func (s *diagStore[T]) put(i, j int, v T) error {
	if i != j {
		return ErrStructuralWrite
	}
	s.diag[i] = v

	return nil
}

func (s *diagStore[T]) clone() storage[T] {
	cp := make([]T, len(s.diag))
	copy(cp, s.diag)

	return &diagStore[T]{diag: cp}
}
