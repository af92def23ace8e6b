// Package lvmatrix is a small toolkit of structural matrices: the shape of
// the data (rectangular, square, symmetric, diagonal) is part of the type,
// and element-wise addition keeps the most specific shape it can.
//
// What is inside?
//
//	matrix/          generic Rectangular, Square, Symmetric and Diagonal
//	                 variants over one Matrix[T] contract, change
//	                 notification, and variant-aware Add
//	matrixio/        TOML job documents, msgpack snapshots, text tables
//	                 and heatmaps for float64 matrices
//	cmd/matrixctl/   command-line front end: add, show, plot, kinds
//
// Quick example (diagonal + symmetric stays symmetric):
//
//	    [1 0 0]     [1 2 3]     [2 2 3]
//	    [0 6 0]  +  [2 6 0]  =  [2 12 0]
//	    [0 0 11]    [3 0 11]    [3 0 22]
//
// The diagonal operand stores three values instead of nine; the result is
// a *Symmetric because neither operand can break symmetry.
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix
