// Package matrixio moves matrices in and out of the matrix package.
//
// It provides:
//
//   - Document: TOML job files declaring named matrices and Add jobs.
//   - Evaluate: runs the jobs of a document concurrently.
//   - Snapshot: a versioned msgpack encoding of one matrix, with a digest.
//   - Renderer: plain or coloured text tables.
//   - WriteHeatmap / SaveHeatmap: heatmap images through gonum plot.
//
// Every matrix built here has float64 elements, matching TOML numbers.
//
// Tracing goes through the "lvmatrix.matrixio" schuko tracer.
package matrixio

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lvmatrix.matrixio'.
func tracer() tracing.Trace {
	return tracing.Select("lvmatrix.matrixio")
}
