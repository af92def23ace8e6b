// SPDX-License-Identifier: MIT

package matrix

const (
	tagNewSquare           = "NewSquare"
	tagNewSquareFromRows   = "NewSquareFromRows"
	tagNewSquareFromSlice  = "NewSquareFromSlice"
	tagNewSquareFromSliceN = "NewSquareFromSliceN"
)

// Square is a dense variant with rows == cols == Size().
type Square[T comparable] struct {
	base[T]
}

var _ Matrix[int] = (*Square[int])(nil)

// NewSquare creates a size×size zero matrix.
// Errors: ErrBadShape when size < 1.
func NewSquare[T comparable](size int, opts ...Option[T]) (*Square[T], error) {
	m := &Square[T]{}
	if err := m.initZero(KindSquare, tagNewSquare, size, size, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return m, nil
}

// NewSquareFromRows copies a two-dimensional input whose row count equals its
// column count.
// Errors: those of NewRectangularFromRows, plus ErrNonSquare.
func NewSquareFromRows[T comparable](rows [][]T, opts ...Option[T]) (*Square[T], error) {
	m := &Square[T]{}
	if err := m.initRows(KindSquare, tagNewSquareFromRows, rows, false, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return m, nil
}

// NewSquareFromSlice infers the side as the integer square root of len(data).
// Errors: ErrNilArgument, ErrBadShape (empty), ErrNotPerfectSquare.
func NewSquareFromSlice[T comparable](data []T, opts ...Option[T]) (*Square[T], error) {
	m := &Square[T]{}
	if err := m.initFlatSquare(KindSquare, tagNewSquareFromSlice, data, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return m, nil
}

// NewSquareFromSliceN lays a flattened input out as size×size.
// Errors: ErrNilArgument, ErrBadShape, ErrLengthMismatch.
func NewSquareFromSliceN[T comparable](data []T, size int, opts ...Option[T]) (*Square[T], error) {
	m := &Square[T]{}
	if err := m.initFlat(KindSquare, tagNewSquareFromSliceN, data, size, size, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return m, nil
}

// Size returns the side length.
func (m *Square[T]) Size() int { return m.shape.Rows }

// Clone returns a deep copy without subscriptions.
func (m *Square[T]) Clone() *Square[T] {
	cp := &Square[T]{}
	m.cloneInto(&cp.base)

	return cp
}
