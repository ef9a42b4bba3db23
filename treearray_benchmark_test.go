package treearray

import (
	"math/rand/v2"
	"slices"
	"testing"
)

// generatePositions returns n insert positions that are valid when the
// i-th position is used on a sequence of length i.
func generatePositions(n int) []int {
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	pos := make([]int, n)
	for i := range pos {
		pos[i] = r.IntN(i + 1)
	}
	return pos
}

const benchmarkSize = 10000 // Number of items to insert/get/remove

func BenchmarkArray_InsertRandom(b *testing.B) {
	pos := generatePositions(benchmarkSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := New[int]()
		for j := 0; j < benchmarkSize; j++ {
			a.Insert(pos[j], j)
		}
	}
}

func BenchmarkSlice_InsertRandom(b *testing.B) {
	pos := generatePositions(benchmarkSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var s []int
		for j := 0; j < benchmarkSize; j++ {
			s = slices.Insert(s, pos[j], j)
		}
	}
}

func BenchmarkArray_Append(b *testing.B) {
	for i := 0; i < b.N; i++ {
		a := New[int]()
		for j := 0; j < benchmarkSize; j++ {
			a.Append(j)
		}
	}
}

func BenchmarkArray_FromSlice(b *testing.B) {
	values := seq(0, benchmarkSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FromSlice(values)
	}
}

func BenchmarkArray_Get(b *testing.B) {
	a := FromSlice(seq(0, benchmarkSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Get(i % benchmarkSize)
	}
}

// BenchmarkArray_RemoveFront measures an insert-remove cycle at the front,
// where a plain slice has to shift every element.
func BenchmarkArray_RemoveFront(b *testing.B) {
	a := FromSlice(seq(0, benchmarkSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := a.Remove(0)
		a.Prepend(v)
	}
}

func BenchmarkSlice_RemoveFront(b *testing.B) {
	s := seq(0, benchmarkSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := s[0]
		s = slices.Delete(s, 0, 1)
		s = slices.Insert(s, 0, v)
	}
}

// BenchmarkArray_CloneAndWrite measures the first write after a Clone,
// which pays for copying the arena.
func BenchmarkArray_CloneAndWrite(b *testing.B) {
	a := FromSlice(seq(0, benchmarkSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := a.Clone()
		c.Set(0, i)
		c.Release()
	}
}

// BenchmarkArray_Range measures iterating through all elements.
func BenchmarkArray_Range(b *testing.B) {
	a := FromSlice(seq(0, benchmarkSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Range(func(int, int) bool { return true })
	}
}
