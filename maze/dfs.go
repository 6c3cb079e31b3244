package maze

import "github.com/lvkas/mazekit/grid"

// DFS generates a maze by randomized depth-first carving with an explicit
// stack (iterative, so recursion depth never limits maze size).
//
// Strategy:
//  1. Mark the start cell visited at root distance 0 and push it.
//  2. Pop a cell; gather its unvisited cardinal neighbors.
//  3. If any exist, pick one uniformly at random as the continuation,
//     mark every gathered neighbor visited at distance cell+1, connect the
//     cell to all of them, then push the non-chosen neighbors followed by
//     the chosen one — so carving continues depth-first through the chosen
//     branch while the rest become later backtrack points.
//  4. Repeat until the stack empties.
//
// The result is a spanning tree rooted at the start cell: a perfect maze
// with Width*Height-1 passages. RootDistance reports each cell's tree
// distance from the start.
//
// Errors:
//   - ErrInvalidDimensions if width < 1 or height < 1.
//   - ErrStartOutOfBounds if the start cell lies outside the grid.
//
// Complexity: O(W×H) time and memory.
func DFS(width, height int, opts ...Option) (*Maze, error) {
	// 1. Validate input before any allocation or RNG use.
	cfg := applyOptions(opts)
	if !validDimensions(width, height) {
		return nil, ErrInvalidDimensions
	}

	g := grid.New(width, height)
	if !g.InBounds(cfg.Start.X, cfg.Start.Y) {
		return nil, ErrStartOutOfBounds
	}
	rng := rngFromSeed(cfg.Seed)

	// 2. Per-call bookkeeping: visited flags and root distances, indexed
	//    by cell ID.
	visited := make([]bool, g.CellCount())
	dist := make([]int, g.CellCount())

	// 3. Seed the path stack with the start cell.
	start := g.Index(cfg.Start.X, cfg.Start.Y)
	visited[start] = true
	stack := make([]int, 0, g.CellCount())
	stack = append(stack, start)

	// 4. Carve until every backtrack point is exhausted.
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nbs := unvisitedNeighbors(g, cell, visited)
		if len(nbs) == 0 {
			continue
		}

		// Pick the continuation uniformly; every discovered neighbor is
		// claimed now so no later branch can reach it first.
		chosen := rng.Intn(len(nbs))
		for i, nb := range nbs {
			visited[nb] = true
			dist[nb] = dist[cell] + 1
			if i != chosen {
				stack = append(stack, nb)
			}
		}
		stack = append(stack, nbs[chosen])

		g.ConnectAll(cell, nbs)
	}

	return &Maze{Grid: g, RootDistance: dist}, nil
}
