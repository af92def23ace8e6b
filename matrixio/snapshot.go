// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cnf/structhash"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// SnapshotSchema is the current snapshot layout version. Increment it when
// the Snapshot fields change.
const SnapshotSchema uint16 = 1

// Snapshot is the serialized form of one matrix.
//   - Data is row-major, Rows*Cols values, except for Diagonal snapshots
//     which carry only the Rows diagonal values.
//   - Kind is the lowercase variant name (matrix.Kind.String).
type Snapshot struct {
	Schema uint16    `msgpack:"schema"`
	Kind   string    `msgpack:"kind"`
	Rows   int       `msgpack:"rows"`
	Cols   int       `msgpack:"cols"`
	Data   []float64 `msgpack:"data"`
}

// SnapshotOf captures the current contents of m.
func SnapshotOf(m matrix.Matrix[float64]) (*Snapshot, error) {
	if m == nil {
		return nil, fmt.Errorf("snapshot: %w", matrix.ErrNilArgument)
	}
	s := &Snapshot{
		Schema: SnapshotSchema,
		Kind:   m.Kind().String(),
		Rows:   m.Rows(),
		Cols:   m.Cols(),
	}
	if m.Kind() == matrix.KindDiagonal {
		s.Data = make([]float64, 0, s.Rows)
		for i := 0; i < s.Rows; i++ {
			v, err := m.At(i, i)
			if err != nil {
				return nil, fmt.Errorf("snapshot: %w", err)
			}
			s.Data = append(s.Data, v)
		}

		return s, nil
	}
	s.Data = make([]float64, 0, s.Rows*s.Cols)
	for i := 0; i < s.Rows; i++ {
		for j := 0; j < s.Cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("snapshot: %w", err)
			}
			s.Data = append(s.Data, v)
		}
	}

	return s, nil
}

// Matrix rebuilds the variant recorded in s. The kind's structural check runs
// again, so a tampered payload is rejected with the matrix sentinel.
func (s *Snapshot) Matrix(opts ...matrix.Option[float64]) (matrix.Matrix[float64], error) {
	kind, err := matrix.ParseKind(s.Kind)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if kind != matrix.KindRectangular && s.Rows != s.Cols {
		return nil, fmt.Errorf("%w: %v snapshot is %dx%d", ErrSnapshotShape, kind, s.Rows, s.Cols)
	}

	var m matrix.Matrix[float64]
	switch kind {
	case matrix.KindRectangular:
		m, err = erase(matrix.NewRectangularFromSlice(s.Data, s.Rows, s.Cols, opts...))
	case matrix.KindSquare:
		m, err = erase(matrix.NewSquareFromSliceN(s.Data, s.Rows, opts...))
	case matrix.KindSymmetric:
		m, err = erase(matrix.NewSymmetricFromSliceN(s.Data, s.Rows, opts...))
	default: // KindDiagonal
		if len(s.Data) != s.Rows {
			return nil, fmt.Errorf("%w: %d diagonal values for size %d", ErrSnapshotShape, len(s.Data), s.Rows)
		}
		m, err = erase(matrix.NewDiagonalFromValues(s.Data, opts...))
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	return m, nil
}

// Digest returns a content hash of s, stable across encodings.
func (s *Snapshot) Digest() (string, error) {
	return structhash.Hash(s, int(s.Schema))
}

// EncodeSnapshot writes s to w as msgpack.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	if err := msgpack.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return nil
}

// DecodeSnapshot reads one msgpack snapshot from r and checks its schema.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Schema != SnapshotSchema {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSnapshotSchema, s.Schema, SnapshotSchema)
	}

	return &s, nil
}

// WriteSnapshotFile stores s at path, replacing any existing file atomically
// through a temporary file in the same directory.
func WriteSnapshotFile(path string, s *Snapshot) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "snapshot-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err = EncodeSnapshot(f, s); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	tracer().Debugf("snapshot: %s %dx%d -> %s", s.Kind, s.Rows, s.Cols, path)

	return os.Rename(f.Name(), path)
}

// ReadSnapshotFile loads the snapshot stored at path.
func ReadSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
