// SPDX-License-Identifier: MIT

// Package matrix - shared element access for every variant.
//
// Purpose:
//   - Implement the Matrix contract once: shape, bounds checks, storage dispatch,
//     change notification and the reentrancy guard.
//   - Variants embed base and add only their constructors and extra accessors
//     (Size, Diagonal, Clone).
//
// Complexity quicksheet:
//   - Rows/Cols/Kind: O(1); At: O(1); Set: O(1) + O(h) handlers; Subscribe: O(log h).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// base carries the state common to all variants.
//   - shape is fixed after construction (no resize).
//   - cells is the variant's storage strategy (dense or diagonal-only).
//   - kind is the variant tag reported through Kind().
//   - equal is the element equality resolved from options.
type base[T comparable] struct {
	shape  Shape
	kind   Kind
	cells  storage[T]
	equal  func(a, b T) bool
	events notifier[T]
}

// init wires shape, kind, storage and options into b.
// Handlers from WithHandler are subscribed in argument order.
func (b *base[T]) init(kind Kind, shape Shape, cells storage[T], o Options[T]) {
	b.kind = kind
	b.shape = shape
	b.cells = cells
	b.equal = o.equal
	for _, h := range o.handlers {
		b.events.subscribe(h)
	}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (b *base[T]) Rows() int { return b.shape.Rows }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (b *base[T]) Cols() int { return b.shape.Cols }

// Shape returns the shape descriptor.
func (b *base[T]) Shape() Shape { return b.shape }

// Kind returns the variant tag.
func (b *base[T]) Kind() Kind { return b.kind }

// inBounds reports whether (i, j) lies within the shape.
func (b *base[T]) inBounds(i, j int) bool {
	return i >= 0 && i < b.shape.Rows && j >= 0 && j < b.shape.Cols
}

// At returns the value at (i, j) or ErrOutOfRange.
//
// Implementation:
//   - Stage 1: bounds check against the declared shape (both indices).
//   - Stage 2: delegate the read to the storage strategy.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns the wrapped sentinel.
//   - Diagonal storage answers off-diagonal reads with the zero value.
//
// Complexity:
//   - Time O(1), Space O(1).
func (b *base[T]) At(i, j int) (T, error) {
	if !b.inBounds(i, j) {
		var zero T
		return zero, accessErrorf(b.kind, ctxAt, i, j, ErrOutOfRange)
	}

	return b.cells.get(i, j), nil
}

// Set stores v at (i, j) and notifies subscribers.
//
// Implementation:
//   - Stage 1: bounds check (ErrOutOfRange).
//   - Stage 2: refuse writes issued from inside this matrix's own handlers
//     (ErrReentrantWrite).
//   - Stage 3: write through the storage strategy (ErrStructuralWrite when the
//     cell has no slot, e.g. off-diagonal on Diagonal).
//   - Stage 4: fire Change{i, j, old, v} to every handler, synchronously.
//
// Behavior highlights:
//   - Failed writes leave storage untouched and fire nothing.
//   - The structural invariant of the variant is NOT re-verified: writes are
//     trusted (Symmetric writes are not mirrored). Use Validate to re-check.
//
// Complexity:
//   - Time O(1) + O(h) for h handlers, Space O(h) for the handler snapshot.
func (b *base[T]) Set(i, j int, v T) error {
	if !b.inBounds(i, j) {
		return accessErrorf(b.kind, ctxSet, i, j, ErrOutOfRange)
	}
	if b.events.dispatching {
		return accessErrorf(b.kind, ctxSet, i, j, ErrReentrantWrite)
	}
	old := b.cells.get(i, j)
	if err := b.cells.put(i, j, v); err != nil {
		return accessErrorf(b.kind, ctxSet, i, j, err)
	}
	b.events.fire(Change[T]{Row: i, Col: j, Old: old, New: v})

	return nil
}

// Subscribe registers h for change notifications.
// The returned func removes the subscription; calling it twice is harmless.
// Panics if h is nil.
func (b *base[T]) Subscribe(h ChangeHandler[T]) func() {
	return b.events.subscribe(h)
}

// String provides a readable row-wise dump for diagnostics.
// Complexity: O(r*c).
func (b *base[T]) String() string {
	var sb strings.Builder
	for i := 0; i < b.shape.Rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < b.shape.Cols; j++ {
			fmt.Fprintf(&sb, "%v", b.cells.get(i, j))
			if j+1 < b.shape.Cols {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// cloneInto copies shape, kind, storage and equality into dst; subscriptions
// are not carried over.
func (b *base[T]) cloneInto(dst *base[T]) {
	dst.kind = b.kind
	dst.shape = b.shape
	dst.cells = b.cells.clone()
	dst.equal = b.equal
}
