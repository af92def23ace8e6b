// SPDX-License-Identifier: MIT

package matrix

// Constructor tags used in error wrappers.
const (
	tagNewRectangular          = "NewRectangular"
	tagNewRectangularFromRows  = "NewRectangularFromRows"
	tagAdoptRectangularRows    = "AdoptRectangularRows"
	tagNewRectangularFromSlice = "NewRectangularFromSlice"
)

// Rectangular is the baseline dense variant: arbitrary rows×cols, full storage,
// no structural invariant beyond rows, cols >= 1.
type Rectangular[T comparable] struct {
	base[T]
}

// Compile-time assertion of Matrix conformance.
var _ Matrix[int] = (*Rectangular[int])(nil)

// NewRectangular creates a rows×cols matrix with every cell at the zero value.
//
// Errors:
//   - ErrBadShape when rows < 1 or cols < 1.
//
// Complexity: O(rows*cols).
func NewRectangular[T comparable](rows, cols int, opts ...Option[T]) (*Rectangular[T], error) {
	m := &Rectangular[T]{}
	if err := m.initZero(KindRectangular, tagNewRectangular, rows, cols, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return m, nil
}

// NewRectangularFromRows copies a two-dimensional input into a new matrix.
// The shape is taken from len(rows) and len(rows[0]); every row must have the
// same length. The caller keeps ownership of rows.
//
// Errors:
//   - ErrNilArgument when rows or any row is nil.
//   - ErrBadShape when rows or the first row is empty.
//   - ErrRaggedRows when a row differs in length from the first.
//
// Complexity: O(rows*cols).
func NewRectangularFromRows[T comparable](rows [][]T, opts ...Option[T]) (*Rectangular[T], error) {
	m := &Rectangular[T]{}
	if err := m.initRows(KindRectangular, tagNewRectangularFromRows, rows, false, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return m, nil
}

// AdoptRectangularRows is the zero-copy form of NewRectangularFromRows.
// Ownership of rows transfers to the matrix: the caller must not read or write
// rows afterwards, because the matrix uses it as its backing storage and
// writes made behind its back skip change notification.
//
// Errors: as NewRectangularFromRows.
// Complexity: O(rows) validation, no copy.
func AdoptRectangularRows[T comparable](rows [][]T, opts ...Option[T]) (*Rectangular[T], error) {
	m := &Rectangular[T]{}
	if err := m.initRows(KindRectangular, tagAdoptRectangularRows, rows, true, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return m, nil
}

// NewRectangularFromSlice lays a flattened row-major input out as rows×cols.
//
// Errors:
//   - ErrNilArgument when data is nil.
//   - ErrBadShape when rows < 1 or cols < 1.
//   - ErrLengthMismatch when len(data) != rows*cols.
//
// Complexity: O(rows*cols).
func NewRectangularFromSlice[T comparable](data []T, rows, cols int, opts ...Option[T]) (*Rectangular[T], error) {
	m := &Rectangular[T]{}
	if err := m.initFlat(KindRectangular, tagNewRectangularFromSlice, data, rows, cols, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return m, nil
}

// Clone returns a deep copy without subscriptions.
// Complexity: O(rows*cols).
func (m *Rectangular[T]) Clone() *Rectangular[T] {
	cp := &Rectangular[T]{}
	m.cloneInto(&cp.base)

	return cp
}
