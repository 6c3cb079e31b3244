package maze

import (
	"math/rand"

	"github.com/lvkas/mazekit/grid"
)

// RecursiveDivision generates a maze by recursive wall building. It is the
// one wall builder in the family: the process begins with a large empty
// room (every adjacent pair connected) and adds walls until a maze results.
//
// Strategy:
//  1. Start from a fully connected grid.
//  2. Cut the current region with a wall: pick the orientation uniformly
//     at random, the wall offset uniformly within the region, and a single
//     gap position uniformly along the wall; sever every adjacent pair
//     across the wall except at the gap.
//  3. Recurse independently on the two sub-regions; stop once either
//     dimension of a region drops below 2.
//
// Every cut strictly separates two regions joined by exactly one gap, so
// no cycle survives and the whole grid stays connected: a perfect maze by
// construction.
//
// Errors:
//   - ErrInvalidDimensions if width < 1 or height < 1.
//
// Complexity: O(W×H) time and memory.
func RecursiveDivision(width, height int, opts ...Option) (*Maze, error) {
	// 1. Validate input before any allocation or RNG use.
	cfg := applyOptions(opts)
	if !validDimensions(width, height) {
		return nil, ErrInvalidDimensions
	}

	// 2. Wall builders start from the fully connected "empty room" state.
	g := grid.New(width, height, grid.WithFullyConnected())
	rng := rngFromSeed(cfg.Seed)

	// 3. Partition the whole grid recursively.
	divide(rng, g, grid.Point{X: 0, Y: 0}, width, height)

	return &Maze{Grid: g}, nil
}

// divide cuts the width×height region anchored at origin with one wall and
// recurses on both halves. Regions thinner than 2 in either dimension are
// already corridors and need no further cuts.
func divide(rng *rand.Rand, g *grid.Grid, origin grid.Point, width, height int) {
	if width < 2 || height < 2 {
		return
	}

	// One wall per cut: orientation, offset within the region, gap along
	// the wall — all uniform.
	horizontal := rng.Intn(2) == 0
	if horizontal {
		wall := rng.Intn(height - 1)
		gap := rng.Intn(width)
		g.DisconnectRow(origin, wall, width, gap)
		divide(rng, g, origin, width, wall+1)
		divide(rng, g, grid.Point{X: origin.X, Y: origin.Y + wall + 1}, width, height-wall-1)
	} else {
		wall := rng.Intn(width - 1)
		gap := rng.Intn(height)
		g.DisconnectCol(origin, wall, height, gap)
		divide(rng, g, origin, wall+1, height)
		divide(rng, g, grid.Point{X: origin.X + wall + 1, Y: origin.Y}, width-wall-1, height)
	}
}
