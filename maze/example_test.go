package maze_test

import (
	"fmt"

	"github.com/lvkas/mazekit/maze"
)

// ExampleDFS demonstrates generating a reproducible 4×3 maze with the
// depth-first carver and inspecting its spanning-tree shape.
func ExampleDFS() {
	// 1. Generate: dimensions, start cell and seed pin the exact topology.
	m, err := maze.DFS(4, 3, maze.WithStart(0, 0), maze.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2. A perfect maze over 12 cells always carries 11 passages.
	fmt.Printf("%d×%d, passages: %d\n", m.Width(), m.Height(), m.EdgeCount())
	fmt.Println("start distance:", m.RootDistance[m.Index(0, 0)])
	// Output:
	// 4×3, passages: 11
	// start distance: 0
}

// ExampleGenerate demonstrates runtime strategy selection through the
// method dispatcher.
func ExampleGenerate() {
	for _, method := range []string{maze.MethodKruskal, maze.MethodSidewinder} {
		m, err := maze.Generate(method, 5, 5, maze.WithSeed(7))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %d passages\n", method, m.EdgeCount())
	}
	// Output:
	// kruskal: 24 passages
	// sidewinder: 24 passages
}

// ExampleKruskal_degenerate demonstrates the error contract: invalid
// dimensions yield no maze and a checkable sentinel, never a panic.
func ExampleKruskal_degenerate() {
	_, err := maze.Kruskal(0, 5)
	fmt.Println(err)
	// Output:
	// maze: width and height must be at least 1
}
