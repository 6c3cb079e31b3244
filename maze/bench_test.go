package maze_test

import (
	"testing"

	"github.com/lvkas/mazekit/maze"
)

// benchSize keeps every generator benchmark on the same 100×100 grid so
// the six strategies are directly comparable.
const benchSize = 100

// BenchmarkDFS measures stack-based carving on a 100×100 grid.
// Complexity: O(W×H).
func BenchmarkDFS(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := maze.DFS(benchSize, benchSize, maze.WithSeed(42)); err != nil {
			b.Fatalf("DFS failed: %v", err)
		}
	}
}

// BenchmarkKruskal measures shuffled edge selection with union-find.
// Complexity: O(W×H α(W×H)).
func BenchmarkKruskal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := maze.Kruskal(benchSize, benchSize, maze.WithSeed(42)); err != nil {
			b.Fatalf("Kruskal failed: %v", err)
		}
	}
}

// BenchmarkPrim measures frontier growth.
// Complexity: O(W×H).
func BenchmarkPrim(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := maze.Prim(benchSize, benchSize, maze.WithSeed(42)); err != nil {
			b.Fatalf("Prim failed: %v", err)
		}
	}
}

// BenchmarkRecursiveDivision measures wall building over a fully connected
// grid. Complexity: O(W×H).
func BenchmarkRecursiveDivision(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := maze.RecursiveDivision(benchSize, benchSize, maze.WithSeed(42)); err != nil {
			b.Fatalf("RecursiveDivision failed: %v", err)
		}
	}
}

// BenchmarkBinaryTree measures the memoryless raster carver.
// Complexity: O(W×H).
func BenchmarkBinaryTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := maze.BinaryTree(benchSize, benchSize, maze.WithSeed(42)); err != nil {
			b.Fatalf("BinaryTree failed: %v", err)
		}
	}
}

// BenchmarkSidewinder measures row-local run carving.
// Complexity: O(W×H).
func BenchmarkSidewinder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := maze.Sidewinder(benchSize, benchSize, maze.WithSeed(42)); err != nil {
			b.Fatalf("Sidewinder failed: %v", err)
		}
	}
}
