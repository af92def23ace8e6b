// SPDX-License-Identifier: MIT

// Package matrix - construction of dense-backed variants.
//
// Rectangular, Square and Symmetric share one storage layout (full 2-D array)
// and differ only in the structural check run once at construction. The three
// helpers below implement the construction paths for all of them:
//
//   - initZero:  (rows, cols)            -> zero-filled storage
//   - initRows:  [][]T                   -> copied or adopted storage
//   - initFlat:  []T + explicit shape    -> row-major copy
//
// Stage order is always: validate input -> structural check -> allocate -> wire.
package matrix

// initZero allocates a zero-filled dense store of the given shape.
// A zero-filled input is trivially symmetric, so only squareness is checked.
// Complexity: O(r*c).
func (b *base[T]) initZero(kind Kind, tag string, rows, cols int, o Options[T]) error {
	if err := validateShape(rows, cols); err != nil {
		return reject(tag, err)
	}
	s := Shape{Rows: rows, Cols: cols}
	if kind != KindRectangular {
		if err := requireSquare(s); err != nil {
			return reject(tag, err)
		}
	}
	b.init(kind, s, newDenseStore[T](rows, cols), o)

	return nil
}

// initRows validates a two-dimensional input and stores it.
// When adopt is true the caller's rows become the backing storage (no copy);
// otherwise every row is copied into a fresh contiguous buffer.
// Complexity: O(r*c) validation + O(r*c) copy unless adopted.
func (b *base[T]) initRows(kind Kind, tag string, rows [][]T, adopt bool, o Options[T]) error {
	s, err := shapeOfRows(rows)
	if err != nil {
		return reject(tag, err)
	}
	if err = checkStructure(kind, s, rowsCell(rows), o.equal); err != nil {
		return reject(tag, err)
	}
	if adopt {
		b.init(kind, s, &denseStore[T]{rows: rows}, o)
		return nil
	}
	st := newDenseStore[T](s.Rows, s.Cols)
	for i := range rows {
		copy(st.rows[i], rows[i])
	}
	b.init(kind, s, st, o)

	return nil
}

// initFlat validates a flattened row-major input against rows×cols and copies it.
// Complexity: O(r*c).
func (b *base[T]) initFlat(kind Kind, tag string, data []T, rows, cols int, o Options[T]) error {
	if err := validateFlat(data, rows, cols); err != nil {
		return reject(tag, err)
	}
	s := Shape{Rows: rows, Cols: cols}
	if err := checkStructure(kind, s, flatCell(data, cols), o.equal); err != nil {
		return reject(tag, err)
	}
	st := newDenseStore[T](rows, cols)
	for i := 0; i < rows; i++ {
		copy(st.rows[i], data[i*cols:(i+1)*cols])
	}
	b.init(kind, s, st, o)

	return nil
}

// initFlatSquare infers the side from len(data) and delegates to initFlat.
func (b *base[T]) initFlatSquare(kind Kind, tag string, data []T, o Options[T]) error {
	if data == nil {
		return reject(tag, ErrNilArgument)
	}
	n, err := squareSizeOf(len(data))
	if err != nil {
		return reject(tag, err)
	}

	return b.initFlat(kind, tag, data, n, n, o)
}
