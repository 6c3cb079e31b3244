package grid_test

import (
	"testing"

	"github.com/lvkas/mazekit/grid"
)

// BenchmarkNew_FullyConnected measures construction of a 1000×1000 grid
// with all west/north links pre-established.
// Complexity: O(W×H).
func BenchmarkNew_FullyConnected(b *testing.B) {
	const n = 1000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.New(n, n, grid.WithFullyConnected())
	}
}

// BenchmarkConnectDisconnect measures the mutation hot path: carving and
// sealing the same passage repeatedly.
// Complexity: O(1) per operation.
func BenchmarkConnectDisconnect(b *testing.B) {
	g := grid.New(100, 100)
	a, c := g.Index(10, 10), g.Index(11, 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Connect(a, c)
		g.Disconnect(a, c)
	}
}

// BenchmarkEdges measures canonical edge enumeration on a fully connected
// 200×200 grid.
// Complexity: O(W×H + E log E).
func BenchmarkEdges(b *testing.B) {
	g := grid.New(200, 200, grid.WithFullyConnected())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}
