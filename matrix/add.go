// SPDX-License-Identifier: MIT

// Package matrix - variant-aware element-wise addition.
//
// Add combines two matrices of possibly different variants and returns the
// most specific variant still implied by both operands. The operands are
// erased behind Matrix[T]; their Kind() tags select the result variant through
// an explicit, total combination table instead of runtime double dispatch.
//
//	A \ B        diagonal     symmetric    square       rectangular
//	diagonal     diagonal     symmetric    square       rectangular
//	symmetric    symmetric    symmetric    square       rectangular
//	square       square       square       square       rectangular
//	rectangular  rectangular  rectangular  rectangular  rectangular
package matrix

import "fmt"

const opAdd = "Add"

// combineTable maps (kind(a), kind(b)) to the result kind. Rows/columns for
// KindUnknown stay KindUnknown: an unmatched pair is a programming error.
var combineTable = [kindCount][kindCount]Kind{
	KindRectangular: {
		KindRectangular: KindRectangular,
		KindSquare:      KindRectangular,
		KindSymmetric:   KindRectangular,
		KindDiagonal:    KindRectangular,
	},
	KindSquare: {
		KindRectangular: KindRectangular,
		KindSquare:      KindSquare,
		KindSymmetric:   KindSquare,
		KindDiagonal:    KindSquare,
	},
	KindSymmetric: {
		KindRectangular: KindRectangular,
		KindSquare:      KindSquare,
		KindSymmetric:   KindSymmetric,
		KindDiagonal:    KindSymmetric,
	},
	KindDiagonal: {
		KindRectangular: KindRectangular,
		KindSquare:      KindSquare,
		KindSymmetric:   KindSymmetric,
		KindDiagonal:    KindDiagonal,
	},
}

// ResultKind returns the variant Add produces for operands of kinds a and b.
// Panics when the pair is not in the table (KindUnknown or out-of-range tags).
// Complexity: O(1).
func ResultKind(a, b Kind) Kind {
	if int(a) >= kindCount || int(b) >= kindCount || combineTable[a][b] == KindUnknown {
		panic(fmt.Sprintf("matrix: no combination rule for (%v, %v)", a, b))
	}

	return combineTable[a][b]
}

// Add returns combine(a[i,j], b[i,j]) for every cell, typed as the most
// specific variant valid for the operand pair (see ResultKind).
//
// Implementation:
//   - Stage 1: reject nil operands or nil combine (ErrNilArgument). A nil
//     *Rectangular, *Square, *Symmetric or *Diagonal counts as a nil operand.
//   - Stage 2: reject differing shapes (ErrDimensionMismatch).
//   - Stage 3: look up the result kind from both Kind() tags.
//   - Stage 4: fill the result. Diagonal results compute only the n diagonal
//     cells; other results compute all r*c cells in row-major order.
//
// Behavior highlights:
//   - Operands are never mutated; the result is a fresh matrix with no
//     subscribers, configured by opts.
//   - The result is assembled without re-running the structural check of its
//     kind: the table guarantees it for combiners applied uniformly to mirrored
//     cells. Call Validate on the result when combine is impure.
//
// Complexity:
//   - Time O(r*c) (O(n) for Diagonal results), Space O(r*c) (O(n) for Diagonal).
func Add[T comparable](a, b Matrix[T], combine func(x, y T) T, opts ...Option[T]) (Matrix[T], error) {
	if isNil(a) || isNil(b) || combine == nil {
		return nil, matrixErrorf(opAdd, ErrNilArgument)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, matrixErrorf(opAdd, fmt.Errorf("%dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}
	kind := ResultKind(a.Kind(), b.Kind())
	tracer().Debugf("Add: %v + %v -> %v (%dx%d)", a.Kind(), b.Kind(), kind, a.Rows(), a.Cols())

	o := gatherOptions(opts)
	if kind == KindDiagonal {
		return addDiagonal(a, b, combine, o)
	}

	rows, cols := a.Rows(), a.Cols()
	st := newDenseStore[T](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x, y, err := pairAt(a, b, i, j)
			if err != nil {
				return nil, err
			}
			st.rows[i][j] = combine(x, y)
		}
	}

	return assemble(kind, Shape{Rows: rows, Cols: cols}, st, o), nil
}

// addDiagonal fills a compact result from the diagonal cells only.
func addDiagonal[T comparable](a, b Matrix[T], combine func(x, y T) T, o Options[T]) (Matrix[T], error) {
	n := a.Rows()
	diag := make([]T, n)
	for i := 0; i < n; i++ {
		x, y, err := pairAt(a, b, i, i)
		if err != nil {
			return nil, err
		}
		diag[i] = combine(x, y)
	}

	return assemble(KindDiagonal, Shape{Rows: n, Cols: n}, &diagStore[T]{diag: diag}, o), nil
}

// pairAt reads (i, j) from both operands. Errors can only come from foreign
// Matrix implementations that disagree with their own Rows/Cols.
func pairAt[T comparable](a, b Matrix[T], i, j int) (T, T, error) {
	x, err := a.At(i, j)
	if err != nil {
		return x, x, matrixErrorf(opAdd, err)
	}
	y, err := b.At(i, j)
	if err != nil {
		return x, y, matrixErrorf(opAdd, err)
	}

	return x, y, nil
}

// assemble wraps prepared storage into the concrete type of kind without
// running structural checks (trusted internal path).
func assemble[T comparable](kind Kind, s Shape, cells storage[T], o Options[T]) Matrix[T] {
	switch kind {
	case KindRectangular:
		m := &Rectangular[T]{}
		m.init(kind, s, cells, o)
		return m
	case KindSquare:
		m := &Square[T]{}
		m.init(kind, s, cells, o)
		return m
	case KindSymmetric:
		m := &Symmetric[T]{}
		m.init(kind, s, cells, o)
		return m
	case KindDiagonal:
		m := &Diagonal[T]{}
		m.init(kind, s, cells, o)
		return m
	default:
		panic(fmt.Sprintf("matrix: cannot assemble kind %v", kind))
	}
}
