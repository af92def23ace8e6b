// SPDX-License-Identifier: MIT

package matrix

import "github.com/emirpasic/gods/maps/treemap"

// notifier is the per-matrix observer registration point.
//   - subs maps a monotonically increasing subscription id to its handler, so
//     iteration follows subscription order and removal is O(log h).
//   - dispatching is set while handlers run; Set consults it to refuse
//     reentrant writes (delivery is serialized).
//
// The zero value is ready to use; the tree is allocated on first Subscribe.
type notifier[T comparable] struct {
	subs        *treemap.Map // int -> ChangeHandler[T]
	nextID      int
	dispatching bool
}

// subscribe registers h and returns its idempotent unsubscribe func.
// Panics if h is nil.
func (n *notifier[T]) subscribe(h ChangeHandler[T]) func() {
	if h == nil {
		panic(panicSubNil)
	}
	if n.subs == nil {
		n.subs = treemap.NewWithIntComparator()
	}
	id := n.nextID
	n.nextID++
	n.subs.Put(id, h)

	// Remove on an absent key is a no-op, which makes the closure idempotent.
	return func() { n.subs.Remove(id) }
}

// count returns the number of live subscriptions.
func (n *notifier[T]) count() int {
	if n.subs == nil {
		return 0
	}

	return n.subs.Size()
}

// fire delivers ev to a snapshot of the current handlers.
// Subscriptions added or removed by a handler apply from the next write on.
func (n *notifier[T]) fire(ev Change[T]) {
	if n.count() == 0 {
		return
	}
	handlers := n.subs.Values() // snapshot in id order

	n.dispatching = true
	defer func() { n.dispatching = false }()
	for _, h := range handlers {
		h.(ChangeHandler[T])(ev)
	}
}
