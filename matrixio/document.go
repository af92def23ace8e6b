// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"io"
	"math"
	"sort"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Document is a TOML job file:
//
//	tolerance = 1e-9          # optional, element equality for validation
//
//	[matrices.a]
//	kind = "diagonal"
//	diagonal = [1, 6, 11]
//
//	[matrices.b]
//	kind = "symmetric"
//	data = [[1, 2, 3], [2, 6, 0], [3, 0, 11]]
//
//	[[jobs]]
//	name = "a+b"
//	left = "a"
//	right = "b"
//	op = "sum"
type Document struct {
	Tolerance float64               `toml:"tolerance"`
	Matrices  map[string]MatrixSpec `toml:"matrices"`
	Jobs      []Job                 `toml:"jobs"`
}

// MatrixSpec declares one named matrix. At most one of Data, Flat and
// Diagonal may be set; with none, a zero matrix of the given dimensions is
// built.
//   - Data: two-dimensional input, shape taken from the array.
//   - Flat: row-major input; Rectangular needs Rows and Cols, the square
//     kinds take Size or infer it from the length.
//   - Diagonal: diagonal values, only for kind "diagonal".
type MatrixSpec struct {
	Kind     string      `toml:"kind"`
	Rows     int64       `toml:"rows"`
	Cols     int64       `toml:"cols"`
	Size     int64       `toml:"size"`
	Data     [][]float64 `toml:"data"`
	Flat     []float64   `toml:"flat"`
	Diagonal []float64   `toml:"diagonal"`
}

// Job adds two declared matrices with a named combiner.
type Job struct {
	Name  string `toml:"name"`
	Left  string `toml:"left"`
	Right string `toml:"right"`
	Op    string `toml:"op"`
}

// LoadDocument reads and decodes the TOML file at path.
func LoadDocument(path string) (*Document, error) {
	var doc Document
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err = doc.check(meta); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &doc, nil
}

// DecodeDocument decodes a TOML document from r.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	meta, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err = doc.check(meta); err != nil {
		return nil, err
	}

	return &doc, nil
}

// check rejects unknown keys and jobs that cannot run.
func (d *Document) check(meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrMatrixSpec, undecoded[0].String())
	}
	if d.Tolerance < 0 || math.IsNaN(d.Tolerance) {
		return fmt.Errorf("%w: tolerance must be >= 0, got %v", ErrMatrixSpec, d.Tolerance)
	}
	seen := make(map[string]bool, len(d.Jobs))
	for i, j := range d.Jobs {
		if j.Name == "" {
			d.Jobs[i].Name = fmt.Sprintf("job%d", i+1)
			j.Name = d.Jobs[i].Name
		}
		if seen[j.Name] {
			return fmt.Errorf("%w: duplicate job %q", ErrMatrixSpec, j.Name)
		}
		seen[j.Name] = true
		for _, operand := range []string{j.Left, j.Right} {
			if _, ok := d.Matrices[operand]; !ok {
				return fmt.Errorf("job %q: %w %q", j.Name, ErrUnknownMatrix, operand)
			}
		}
		if _, err := CombinerByName(j.Op); err != nil {
			return fmt.Errorf("job %q: %w", j.Name, err)
		}
	}
	tracer().Debugf("document: %d matrices, %d jobs", len(d.Matrices), len(d.Jobs))

	return nil
}

// MatrixNames returns the declared matrix names, sorted.
func (d *Document) MatrixNames() []string {
	names := make([]string, 0, len(d.Matrices))
	for name := range d.Matrices {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Job returns the job called name.
func (d *Document) Job(name string) (Job, error) {
	for _, j := range d.Jobs {
		if j.Name == name {
			return j, nil
		}
	}

	return Job{}, fmt.Errorf("%w %q", ErrUnknownJob, name)
}

// Options returns the matrix options implied by the document settings.
func (d *Document) Options() []matrix.Option[float64] {
	if d.Tolerance == 0 {
		return nil
	}
	tol := d.Tolerance

	return []matrix.Option[float64]{
		matrix.WithEqual(func(a, b float64) bool { return math.Abs(a-b) <= tol }),
	}
}

// Build constructs a fresh matrix from the declaration called name. Every
// call returns a new instance; nothing is cached.
func (d *Document) Build(name string, opts ...matrix.Option[float64]) (matrix.Matrix[float64], error) {
	spec, ok := d.Matrices[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMatrix, name)
	}
	opts = append(d.Options(), opts...)
	m, err := spec.build(opts)
	if err != nil {
		return nil, fmt.Errorf("matrix %q: %w", name, err)
	}

	return m, nil
}

// dims holds the narrowed int dimensions of a spec.
type dims struct {
	rows, cols, size int
}

func (s MatrixSpec) dims() (dims, error) {
	var (
		d   dims
		err error
	)
	if d.rows, err = safecast.Conv[int](s.Rows); err != nil {
		return d, fmt.Errorf("%w: rows %d: %w", ErrMatrixSpec, s.Rows, err)
	}
	if d.cols, err = safecast.Conv[int](s.Cols); err != nil {
		return d, fmt.Errorf("%w: cols %d: %w", ErrMatrixSpec, s.Cols, err)
	}
	if d.size, err = safecast.Conv[int](s.Size); err != nil {
		return d, fmt.Errorf("%w: size %d: %w", ErrMatrixSpec, s.Size, err)
	}

	return d, nil
}

// sources counts the data sources set on s.
func (s MatrixSpec) sources() int {
	n := 0
	for _, set := range []bool{s.Data != nil, s.Flat != nil, s.Diagonal != nil} {
		if set {
			n++
		}
	}

	return n
}

// build dispatches on the declared source, then on the kind.
func (s MatrixSpec) build(opts []matrix.Option[float64]) (matrix.Matrix[float64], error) {
	kind, err := matrix.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	if s.sources() > 1 {
		return nil, fmt.Errorf("%w: set only one of data, flat, diagonal", ErrMatrixSpec)
	}
	d, err := s.dims()
	if err != nil {
		return nil, err
	}

	switch {
	case s.Data != nil:
		return matrix.FromRows(kind, s.Data, opts...)
	case s.Diagonal != nil:
		if kind != matrix.KindDiagonal {
			return nil, fmt.Errorf("%w: diagonal values need kind diagonal, got %v", ErrMatrixSpec, kind)
		}
		return erase(matrix.NewDiagonalFromValues(s.Diagonal, opts...))
	case s.Flat != nil:
		return buildFlat(kind, s.Flat, d, opts)
	default:
		return buildZero(kind, d, opts)
	}
}

// buildFlat lays a row-major input out for kind.
func buildFlat(kind matrix.Kind, flat []float64, d dims, opts []matrix.Option[float64]) (matrix.Matrix[float64], error) {
	switch kind {
	case matrix.KindRectangular:
		if d.rows == 0 || d.cols == 0 {
			return nil, fmt.Errorf("%w: flat rectangular input needs rows and cols", ErrMatrixSpec)
		}
		return erase(matrix.NewRectangularFromSlice(flat, d.rows, d.cols, opts...))
	case matrix.KindSquare:
		if d.size == 0 {
			return erase(matrix.NewSquareFromSlice(flat, opts...))
		}
		return erase(matrix.NewSquareFromSliceN(flat, d.size, opts...))
	case matrix.KindSymmetric:
		if d.size == 0 {
			return erase(matrix.NewSymmetricFromSlice(flat, opts...))
		}
		return erase(matrix.NewSymmetricFromSliceN(flat, d.size, opts...))
	default: // KindDiagonal
		if d.size == 0 {
			return erase(matrix.NewDiagonalFromSlice(flat, opts...))
		}
		return erase(matrix.NewDiagonalFromSliceN(flat, d.size, opts...))
	}
}

// buildZero makes a zero matrix of the declared dimensions.
func buildZero(kind matrix.Kind, d dims, opts []matrix.Option[float64]) (matrix.Matrix[float64], error) {
	if kind == matrix.KindRectangular {
		return erase(matrix.NewRectangular(d.rows, d.cols, opts...))
	}
	size := d.size
	if size == 0 && d.rows == d.cols {
		size = d.rows
	}
	switch kind {
	case matrix.KindSquare:
		return erase(matrix.NewSquare(size, opts...))
	case matrix.KindSymmetric:
		return erase(matrix.NewSymmetric(size, opts...))
	default: // KindDiagonal
		return erase(matrix.NewDiagonal(size, opts...))
	}
}

// erase turns a concrete constructor result into the interface, mapping a
// failed construction to an untyped nil.
func erase[M matrix.Matrix[float64]](m M, err error) (matrix.Matrix[float64], error) {
	if err != nil {
		return nil, err
	}

	return m, nil
}
