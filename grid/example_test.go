package grid_test

import (
	"fmt"

	"github.com/lvkas/mazekit/grid"
)

// ExampleGrid_Connect demonstrates carving two passages on a 3×3 grid and
// inspecting the resulting connection sets.
func ExampleGrid_Connect() {
	// 1. Allocate a 3×3 grid with no passages.
	g := grid.New(3, 3)

	// 2. Carve a passage east and a passage south from the origin.
	origin := g.Index(0, 0)
	g.Connect(origin, g.Index(1, 0))
	g.Connect(origin, g.Index(0, 1))

	// 3. Enumerate the origin's connection set (sorted cell IDs).
	fmt.Println("links:", g.Links(origin))
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// links: [1 3]
	// edges: 2
}

// ExampleGrid_DisconnectRow demonstrates the wall-builder primitive:
// starting from a fully connected 3×2 grid, build a wall between its two
// rows with a single gap in the middle column.
func ExampleGrid_DisconnectRow() {
	// 1. Start fully connected — the "large empty room" state.
	g := grid.New(3, 2, grid.WithFullyConnected())

	// 2. Wall off row 0 from row 1, leaving the gap at x == 1.
	g.DisconnectRow(grid.Point{X: 0, Y: 0}, 0, 3, 1)

	// 3. Only the gap column still crosses the wall.
	for x := 0; x < 3; x++ {
		fmt.Printf("x=%d crossing=%v\n", x, g.Connected(g.Index(x, 0), g.Index(x, 1)))
	}
	// Output:
	// x=0 crossing=false
	// x=1 crossing=true
	// x=2 crossing=false
}
