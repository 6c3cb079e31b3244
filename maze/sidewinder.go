package maze

import "github.com/lvkas/mazekit/grid"

// Sidewinder generates a maze by the sidewinder strategy: rows are scanned
// top to bottom, each maintaining a "run" of cells in the current unbroken
// horizontal passage.
//
// Strategy:
//  1. Scan each row left to right; on rows below the first, add the
//     current cell to the run.
//  2. With probability ½ (always on the first row, which must end up one
//     long passage) carve east and continue the run.
//  3. Otherwise close the run: carve north from one uniformly random run
//     member and clear the run.
//  4. Clear the run at the end of every row.
//
// Every row is fully traversable by construction and each closed run links
// to the row above exactly once, so no cycle can form and every cell stays
// reachable: a perfect maze, with a single long corridor across the top —
// one biased side where binary tree has two.
//
// Errors:
//   - ErrInvalidDimensions if width < 1 or height < 1.
//
// Complexity: O(W×H) time, O(W) memory beyond the grid.
func Sidewinder(width, height int, opts ...Option) (*Maze, error) {
	// 1. Validate input before any allocation or RNG use.
	cfg := applyOptions(opts)
	if !validDimensions(width, height) {
		return nil, ErrInvalidDimensions
	}

	g := grid.New(width, height)
	rng := rngFromSeed(cfg.Seed)

	// 2. Row-local scan; the run never outlives its row.
	run := make([]int, 0, width)
	for y := 0; y < height; y++ {
		run = run[:0]
		for x := 0; x < width; x++ {
			cell := g.Index(x, y)
			if y > 0 {
				run = append(run, cell)
			}

			// Carve east while the coin allows and a neighbor exists; the
			// first row always carves east to stay one full passage.
			if x+1 < width && (rng.Intn(2) == 0 || y == 0) {
				g.Connect(cell, g.Index(x+1, y))
			} else if y > 0 {
				// Close the run northward from a uniformly random member.
				member := run[rng.Intn(len(run))]
				mx, my := g.Coordinate(member)
				g.Connect(member, g.Index(mx, my-1))
				run = run[:0]
			}
		}
	}

	return &Maze{Grid: g}, nil
}
