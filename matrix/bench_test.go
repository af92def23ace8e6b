// Package matrix_test provides benchmarks for element access and Add,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix[float64]
	sinkF float64
)

// randSymmetric fills an n×n symmetric matrix from a fixed seed.
func randSymmetric(b *testing.B, n int, seed int64) *matrix.Symmetric[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rng.Float64()
			data[i*n+j] = v
			data[j*n+i] = v
		}
	}
	m, err := matrix.NewSymmetricFromSliceN(data, n)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// randDiagonal fills an n×n diagonal matrix from a fixed seed.
func randDiagonal(b *testing.B, n int, seed int64) *matrix.Diagonal[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	diag := make([]float64, n)
	for i := range diag {
		diag[i] = rng.Float64()
	}
	m, err := matrix.NewDiagonalFromValues(diag)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func addF(x, y float64) float64 { return x + y }

func BenchmarkAdd_SymmetricSymmetric(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randSymmetric(b, n, 1337)
			B := randSymmetric(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add[float64](A, B, addF)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAdd_DiagonalDiagonal(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDiagonal(b, n, 11)
			B := randDiagonal(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add[float64](A, B, addF)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAt_Diagonal(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			D := randDiagonal(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := D.At(i%n, (i/n)%n)
				if err != nil {
					b.Fatal(err)
				}
				sinkF += v
			}
		})
	}
}

func BenchmarkSet_WithSubscribers(b *testing.B) {
	b.ReportAllocs()
	m := randSymmetric(b, 64, 3)
	for k := 0; k < 4; k++ {
		m.Subscribe(func(c matrix.Change[float64]) { sinkF += c.New })
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Set(i%64, i%64, float64(i)); err != nil {
			b.Fatal(err)
		}
	}
}
