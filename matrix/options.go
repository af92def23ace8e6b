// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for variant constructors and Add.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Element equality drives the symmetric and diagonal validators. The default
//     is Go's == on T; WithEqual lets float callers compare within a tolerance.
//   - Handlers given through WithHandler are subscribed before the constructor
//     returns, in argument order; they see every write, including the first.
package matrix

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEqualNil   = "matrix: WithEqual: equality func must be non-nil"
	panicHandlerNil = "matrix: WithHandler: handler must be non-nil"
	panicSubNil     = "matrix: Subscribe: handler must be non-nil"
	panicOptionNil  = "matrix: nil Option"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option[T comparable] func(*Options[T])

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option[T]`.
type Options[T comparable] struct {
	equal    func(a, b T) bool  // element equality; nil means ==
	handlers []ChangeHandler[T] // subscribed at construction, in order
}

// WithEqual overrides the element equality used by structural validation.
// Panics if eq is nil.
func WithEqual[T comparable](eq func(a, b T) bool) Option[T] {
	if eq == nil {
		panic(panicEqualNil)
	}

	return func(o *Options[T]) { o.equal = eq }
}

// WithHandler subscribes h to the constructed matrix before it is returned.
// Panics if h is nil.
func WithHandler[T comparable](h func(Change[T])) Option[T] {
	if h == nil {
		panic(panicHandlerNil)
	}

	return func(o *Options[T]) { o.handlers = append(o.handlers, h) }
}

// gatherOptions applies opts over the defaults.
// Complexity: O(len(opts)).
func gatherOptions[T comparable](opts []Option[T]) Options[T] {
	var o Options[T]
	for _, fn := range opts {
		if fn == nil {
			panic(panicOptionNil)
		}
		fn(&o)
	}
	if o.equal == nil {
		o.equal = func(a, b T) bool { return a == b }
	}

	return o
}
