// SPDX-License-Identifier: MIT

// Package matrix - Diagonal variant (compact storage).
//
// Purpose:
//   - Store only the main diagonal: O(n) memory instead of O(n²).
//   - Answer off-diagonal reads with the zero value of T, without touching storage.
//   - Refuse off-diagonal writes (ErrStructuralWrite): the compact store has no
//     slot for them, and silently dropping the value would hide a caller bug.
//
// Construction paths (selected by name/arity, never inferred):
//   - NewDiagonal(size)              zero diagonal
//   - NewDiagonalFromRows(rows)      full n×n input, validated, then compacted
//   - NewDiagonalFromSlice(data)     flattened input, side inferred from len(data)
//   - NewDiagonalFromSliceN(data, n) flattened n×n input, validated, then compacted
//   - NewDiagonalFromValues(diag)    diagonal values only; nothing to validate
//
// Complexity quicksheet:
//   - At/Set: O(1); full-input constructors: O(n²) validation + O(n) copy.
package matrix

const (
	tagNewDiagonal           = "NewDiagonal"
	tagNewDiagonalFromRows   = "NewDiagonalFromRows"
	tagNewDiagonalFromSlice  = "NewDiagonalFromSlice"
	tagNewDiagonalFromSliceN = "NewDiagonalFromSliceN"
	tagNewDiagonalFromValues = "NewDiagonalFromValues"
)

// Diagonal is a square variant whose off-diagonal entries are always zero.
type Diagonal[T comparable] struct {
	base[T]
}

var _ Matrix[int] = (*Diagonal[int])(nil)

// NewDiagonal creates a size×size matrix with a zero diagonal.
// Errors: ErrBadShape when size < 1.
// Complexity: O(size).
func NewDiagonal[T comparable](size int, opts ...Option[T]) (*Diagonal[T], error) {
	if err := validateShape(size, size); err != nil {
		return nil, reject(tagNewDiagonal, err)
	}
	m := &Diagonal[T]{}
	m.init(KindDiagonal, Shape{Rows: size, Cols: size}, &diagStore[T]{diag: make([]T, size)}, gatherOptions(opts))

	return m, nil
}

// NewDiagonalFromRows validates a full two-dimensional input and keeps only
// its diagonal.
//
// Implementation:
//   - Stage 1: shape checks shared with Rectangular (nil, empty, ragged).
//   - Stage 2: require square (ErrNonSquare).
//   - Stage 3: every pair i<j must be zero in BOTH rows[i][j] and rows[j][i]
//     (ErrNonDiagonal), so one-sided near-diagonal input is rejected too.
//   - Stage 4: copy rows[i][i] into the compact store.
//
// Complexity: O(n²) validation, O(n) storage.
func NewDiagonalFromRows[T comparable](rows [][]T, opts ...Option[T]) (*Diagonal[T], error) {
	o := gatherOptions(opts)
	s, err := shapeOfRows(rows)
	if err != nil {
		return nil, reject(tagNewDiagonalFromRows, err)
	}
	if err = checkStructure(KindDiagonal, s, rowsCell(rows), o.equal); err != nil {
		return nil, reject(tagNewDiagonalFromRows, err)
	}

	return newCompacted(s.Rows, rowsCell(rows), o), nil
}

// NewDiagonalFromSlice infers the side from len(data), which must be a
// perfect square, then behaves like NewDiagonalFromSliceN.
// Errors: ErrNilArgument, ErrBadShape, ErrNotPerfectSquare, ErrNonDiagonal.
func NewDiagonalFromSlice[T comparable](data []T, opts ...Option[T]) (*Diagonal[T], error) {
	if data == nil {
		return nil, reject(tagNewDiagonalFromSlice, ErrNilArgument)
	}
	n, err := squareSizeOf(len(data))
	if err != nil {
		return nil, reject(tagNewDiagonalFromSlice, err)
	}
	o := gatherOptions(opts)
	at := flatCell(data, n)
	if err = checkDiagonal(n, at, o.equal); err != nil {
		return nil, reject(tagNewDiagonalFromSlice, err)
	}

	return newCompacted(n, at, o), nil
}

// NewDiagonalFromSliceN validates a flattened size×size input the same way as
// NewDiagonalFromRows, then compacts it.
// Errors: ErrNilArgument, ErrBadShape, ErrLengthMismatch, ErrNonDiagonal.
// Complexity: O(n²) validation, O(n) storage.
func NewDiagonalFromSliceN[T comparable](data []T, size int, opts ...Option[T]) (*Diagonal[T], error) {
	o := gatherOptions(opts)
	if err := validateFlat(data, size, size); err != nil {
		return nil, reject(tagNewDiagonalFromSliceN, err)
	}
	at := flatCell(data, size)
	if err := checkDiagonal(size, at, o.equal); err != nil {
		return nil, reject(tagNewDiagonalFromSliceN, err)
	}

	return newCompacted(size, at, o), nil
}

// NewDiagonalFromValues takes diag directly as the main diagonal; the matrix
// side is len(diag). The slice is copied.
// Errors: ErrNilArgument when diag is nil, ErrBadShape when it is empty.
// Complexity: O(n).
func NewDiagonalFromValues[T comparable](diag []T, opts ...Option[T]) (*Diagonal[T], error) {
	if diag == nil {
		return nil, reject(tagNewDiagonalFromValues, ErrNilArgument)
	}
	if len(diag) == 0 {
		return nil, reject(tagNewDiagonalFromValues, ErrBadShape)
	}
	cp := make([]T, len(diag))
	copy(cp, diag)
	m := &Diagonal[T]{}
	m.init(KindDiagonal, Shape{Rows: len(cp), Cols: len(cp)}, &diagStore[T]{diag: cp}, gatherOptions(opts))

	return m, nil
}

// newCompacted copies the diagonal of an already validated n×n input.
func newCompacted[T comparable](n int, at cellFunc[T], o Options[T]) *Diagonal[T] {
	diag := make([]T, n)
	for i := 0; i < n; i++ {
		diag[i] = at(i, i)
	}
	m := &Diagonal[T]{}
	m.init(KindDiagonal, Shape{Rows: n, Cols: n}, &diagStore[T]{diag: diag}, o)

	return m
}

// Size returns the side length.
func (m *Diagonal[T]) Size() int { return m.shape.Rows }

// Diagonal returns a copy of the main diagonal.
// Complexity: O(n).
func (m *Diagonal[T]) Diagonal() []T {
	src := m.cells.(*diagStore[T]).diag
	out := make([]T, len(src))
	copy(out, src)

	return out
}

// Clone returns a deep copy without subscriptions.
func (m *Diagonal[T]) Clone() *Diagonal[T] {
	cp := &Diagonal[T]{}
	m.cloneInto(&cp.base)

	return cp
}
