// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every variant.
// This file contains ONLY domain-facing types: the variant tag (Kind), the
// shape value object, the change event and the Matrix capability interface.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import (
	"fmt"
	"strings"
)

// Kind is the runtime-identifiable structural variant of a matrix.
// The zero value KindUnknown is never returned by types of this package.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRectangular
	KindSquare
	KindSymmetric
	KindDiagonal
)

// kindCount bounds the combination table.
const kindCount = int(KindDiagonal) + 1

var kindNames = [kindCount]string{
	KindUnknown:     "unknown",
	KindRectangular: "rectangular",
	KindSquare:      "square",
	KindSymmetric:   "symmetric",
	KindDiagonal:    "diagonal",
}

// Kinds lists the four concrete variants, most general first.
func Kinds() []Kind {
	return []Kind{KindRectangular, KindSquare, KindSymmetric, KindDiagonal}
}

// String returns the lowercase variant name.
func (k Kind) String() string {
	if int(k) < kindCount {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// label is the capitalised name used in error contexts ("Diagonal.Set(1,2)").
func (k Kind) label() string {
	s := k.String()

	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseKind maps a variant name (case-insensitive) back to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}

	return KindUnknown, fmt.Errorf("matrix: unknown kind %q: %w", s, ErrInvalidArgument)
}

// Shape is the row/column descriptor shared by all variants.
// Square variants keep Rows == Cols == Size.
type Shape struct {
	Rows int // >= 1
	Cols int // >= 1
}

// IsSquare reports whether Rows == Cols.
func (s Shape) IsSquare() bool { return s.Rows == s.Cols }

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Change describes one successful Set: coordinates plus old and new value.
type Change[T comparable] struct {
	Row int
	Col int
	Old T
	New T
}

// ChangeHandler receives change notifications synchronously, before Set returns.
type ChangeHandler[T comparable] func(Change[T])

// Matrix is the element-access capability every variant satisfies.
//
// Contract:
//   - Rows() and Cols() are >= 1 and fixed for the instance's lifetime.
//   - At/Set return ErrOutOfRange (wrapped) for indices outside the shape.
//   - Set fires every subscribed handler once, in subscription order.
//   - Kind reports the concrete variant; Add dispatches on it.
//
// Complexity: all methods O(1) except Subscribe (O(log h), h = handlers).
type Matrix[T comparable] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at position (i, j).
	At(i, j int) (T, error)

	// Set assigns v at position (i, j) and notifies subscribers.
	Set(i, j int, v T) error

	// Kind returns the variant tag.
	Kind() Kind

	// Subscribe registers h and returns an idempotent unsubscribe func.
	Subscribe(h ChangeHandler[T]) (unsubscribe func())
}
