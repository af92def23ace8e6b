// SPDX-License-Identifier: MIT

package matrixio

import "errors"

// Sentinel errors of the matrixio package. Call sites wrap them with the
// offending name or value; test with errors.Is.
var (
	// ErrUnknownMatrix is returned when a job or Build names a matrix the
	// document does not declare.
	ErrUnknownMatrix = errors.New("matrixio: unknown matrix")

	// ErrUnknownJob is returned when a job name is not in the document.
	ErrUnknownJob = errors.New("matrixio: unknown job")

	// ErrUnknownOp is returned for a combiner name outside CombinerNames().
	ErrUnknownOp = errors.New("matrixio: unknown combiner")

	// ErrMatrixSpec signals a declaration that cannot describe a matrix:
	// several data sources at once, missing dimensions, or a source the kind
	// does not accept.
	ErrMatrixSpec = errors.New("matrixio: invalid matrix declaration")

	// ErrSnapshotSchema is returned when a snapshot was written with a schema
	// version this build does not read.
	ErrSnapshotSchema = errors.New("matrixio: unsupported snapshot schema")

	// ErrSnapshotShape signals a snapshot whose payload does not fit its
	// declared kind and shape.
	ErrSnapshotShape = errors.New("matrixio: snapshot payload does not match shape")
)
