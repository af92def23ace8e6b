// SPDX-License-Identifier: MIT

package matrix

const (
	tagNewSymmetric           = "NewSymmetric"
	tagNewSymmetricFromRows   = "NewSymmetricFromRows"
	tagNewSymmetricFromSlice  = "NewSymmetricFromSlice"
	tagNewSymmetricFromSliceN = "NewSymmetricFromSliceN"
)

// Symmetric is a square variant whose input satisfies M[i,j] == M[j,i].
//
// Storage stays fully dense: no triangle compaction. Writes go to a single
// cell and are not mirrored, so Set(i, j, v) with i != j leaves the matrix
// asymmetric until the mirrored cell is written too. The invariant is checked
// once at construction; Validate re-checks it on demand.
type Symmetric[T comparable] struct {
	base[T]
}

var _ Matrix[int] = (*Symmetric[int])(nil)

// NewSymmetric creates a size×size zero matrix (trivially symmetric).
// Errors: ErrBadShape when size < 1.
func NewSymmetric[T comparable](size int, opts ...Option[T]) (*Symmetric[T], error) {
	m := &Symmetric[T]{}
	if err := m.initZero(KindSymmetric, tagNewSymmetric, size, size, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return m, nil
}

// NewSymmetricFromRows copies a square two-dimensional input after checking
// every pair i<j for equality of rows[i][j] and rows[j][i].
// Errors: those of NewSquareFromRows, plus ErrAsymmetry.
// Complexity: O(n²).
func NewSymmetricFromRows[T comparable](rows [][]T, opts ...Option[T]) (*Symmetric[T], error) {
	m := &Symmetric[T]{}
	if err := m.initRows(KindSymmetric, tagNewSymmetricFromRows, rows, false, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return m, nil
}

// NewSymmetricFromSlice infers the side from len(data) and checks symmetry.
// Errors: those of NewSquareFromSlice, plus ErrAsymmetry.
func NewSymmetricFromSlice[T comparable](data []T, opts ...Option[T]) (*Symmetric[T], error) {
	m := &Symmetric[T]{}
	if err := m.initFlatSquare(KindSymmetric, tagNewSymmetricFromSlice, data, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return m, nil
}

// NewSymmetricFromSliceN lays data out as size×size and checks symmetry.
// Errors: those of NewSquareFromSliceN, plus ErrAsymmetry.
func NewSymmetricFromSliceN[T comparable](data []T, size int, opts ...Option[T]) (*Symmetric[T], error) {
	m := &Symmetric[T]{}
	if err := m.initFlat(KindSymmetric, tagNewSymmetricFromSliceN, data, size, size, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return m, nil
}

// Size returns the side length.
func (m *Symmetric[T]) Size() int { return m.shape.Rows }

// Clone returns a deep copy without subscriptions.
func (m *Symmetric[T]) Clone() *Symmetric[T] {
	cp := &Symmetric[T]{}
	m.cloneInto(&cp.base)

	return cp
}
