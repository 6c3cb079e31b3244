package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/lvkas/mazekit/sorting"
)

// randomInts returns a deterministic pseudo-random fixture of n ints.
func randomInts(n int) []int {
	rng := rand.New(rand.NewSource(42))
	s := make([]int, n)
	for i := range s {
		s[i] = rng.Intn(1 << 20)
	}

	return s
}

// BenchmarkQuick measures quicksort on 10,000 pseudo-random ints.
// Complexity: O(n log n) expected.
func BenchmarkQuick(b *testing.B) {
	src := randomInts(10000)
	buf := make([]int, len(src))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		sorting.Quick(buf, func(a, b int) bool { return a < b })
	}
}

// BenchmarkMerge measures merge sort on 10,000 pseudo-random ints.
// Complexity: O(n log n).
func BenchmarkMerge(b *testing.B) {
	src := randomInts(10000)
	buf := make([]int, len(src))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		sorting.Merge(buf, func(a, b int) bool { return a < b })
	}
}

// BenchmarkBubble measures bubble sort on 1,000 pseudo-random ints; the
// quadratic cost keeps the fixture an order of magnitude smaller.
// Complexity: O(n²).
func BenchmarkBubble(b *testing.B) {
	src := randomInts(1000)
	buf := make([]int, len(src))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		sorting.Bubble(buf, func(a, b int) bool { return a < b })
	}
}
