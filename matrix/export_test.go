// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose UNEXPORTED validators and storage internals to matrix_test ONLY.
//   - Compiled only with the package tests; nothing here ships in production builds.
//
// Provided Surface:
//   - SquareSizeOf_TestOnly: integer square-root inference.
//   - StoredCells_TestOnly: number of elements held by the backing store, to
//     verify Diagonal compaction.
//   - SubscriberCount_TestOnly: live subscriptions of a library matrix.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEqualNil_TestOnly   = panicEqualNil
	PanicHandlerNil_TestOnly = panicHandlerNil
	PanicSubNil_TestOnly     = panicSubNil
)

// SquareSizeOf_TestOnly forwards to squareSizeOf.
func SquareSizeOf_TestOnly(n int) (int, error) { return squareSizeOf(n) }

// baser is satisfied by every variant through the embedded base.
type baser[T comparable] interface {
	self() *base[T]
}

func (b *base[T]) self() *base[T] { return b }

// StoredCells_TestOnly returns how many elements m's storage holds.
func StoredCells_TestOnly[T comparable](m Matrix[T]) int {
	b := m.(baser[T]).self()
	switch st := b.cells.(type) {
	case *denseStore[T]:
		n := 0
		for _, row := range st.rows {
			n += len(row)
		}
		return n
	case *diagStore[T]:
		return len(st.diag)
	default:
		return -1
	}
}

// SubscriberCount_TestOnly returns the number of live subscriptions.
func SubscriberCount_TestOnly[T comparable](m Matrix[T]) int {
	return m.(baser[T]).self().events.count()
}
