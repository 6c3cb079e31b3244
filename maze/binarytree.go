package maze

import "github.com/lvkas/mazekit/grid"

// BinaryTree generates a maze by the binary tree strategy: for every cell
// in raster order, carve one passage to a uniformly random existing west
// or north neighbor.
//
// This is the simplest generator in the family — a true memoryless pass
// needing only the current cell and the grid. Cells with neither a west
// nor a north neighbor (only the origin) carve nothing and are reached by
// cells processed later. West/north-only passages can never close a cycle,
// and every non-origin cell gains exactly one, so the result is always a
// perfect maze — at the price of a strongly biased texture: the top row
// and left column are single long corridors.
//
// Errors:
//   - ErrInvalidDimensions if width < 1 or height < 1.
//
// Complexity: O(W×H) time and memory.
func BinaryTree(width, height int, opts ...Option) (*Maze, error) {
	// 1. Validate input before any allocation or RNG use.
	cfg := applyOptions(opts)
	if !validDimensions(width, height) {
		return nil, ErrInvalidDimensions
	}

	g := grid.New(width, height)
	rng := rngFromSeed(cfg.Seed)

	// 2. One independent decision per cell, raster order.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nbs := westNorthNeighbors(g, g.Index(x, y))
			if len(nbs) == 0 {
				continue
			}
			g.Connect(g.Index(x, y), nbs[rng.Intn(len(nbs))])
		}
	}

	return &Maze{Grid: g}, nil
}
