// Package matrix offers generic structural matrix variants over one
// element-access contract, plus variant-aware element-wise addition.
//
// The matrix package provides:
//
//   - Rectangular: arbitrary rows×cols, full two-dimensional storage.
//   - Square: rows == cols == Size().
//   - Symmetric: square, with M[i,j] == M[j,i] checked at construction.
//   - Diagonal: square, storing only the main diagonal (O(n) memory);
//     off-diagonal reads yield zero and off-diagonal writes are refused.
//   - Add: combines two matrices with a caller-supplied func and returns the
//     most specific variant valid for the pair (see ResultKind).
//
// Every variant reports changes: Subscribe registers a handler that receives
// Change{Row, Col, Old, New} synchronously on each successful Set.
//
// Structural invariants are verified once, at construction. Set trusts its
// caller (a single-cell write can make a Symmetric matrix asymmetric);
// Validate re-checks on demand. Nothing in this package is safe for
// concurrent use.
//
// Tracing goes through the "lvmatrix.matrix" schuko tracer at debug level.
package matrix

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lvmatrix.matrix'.
func tracer() tracing.Trace {
	return tracing.Select("lvmatrix.matrix")
}
