package maze

import "github.com/lvkas/mazekit/grid"

// Prim generates a maze by randomized Prim's algorithm: a frontier of
// cells adjacent to the growing maze is expanded one uniformly random cell
// at a time.
//
// Strategy:
//  1. Seed the frontier with the start cell at root distance 0.
//  2. Pick a uniformly random frontier cell and mark it visited.
//  3. If it has visited neighbors, connect it to one chosen uniformly at
//     random and record its root distance as that neighbor's plus one.
//  4. Push its unvisited neighbors not already in the frontier, then
//     remove the processed cell. Repeat until the frontier empties.
//
// Where classic Prim's keeps an edge heap, this maze variant keeps a cell
// frontier: faster, and each accepted connection still joins a new cell to
// the tree exactly once, so the result is a perfect maze. RootDistance
// reports each cell's tree distance from the start.
//
// Errors:
//   - ErrInvalidDimensions if width < 1 or height < 1.
//   - ErrStartOutOfBounds if the start cell lies outside the grid.
//
// Complexity: O(W×H) time and memory.
func Prim(width, height int, opts ...Option) (*Maze, error) {
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

	// 2. Per-call bookkeeping. inFrontier dedupes pushes the way the
	//    original set insertion did; a slice keeps uniform random picks
	//    cheap via swap-removal.
	visited := make([]bool, g.CellCount())
	inFrontier := make([]bool, g.CellCount())
	dist := make([]int, g.CellCount())

	start := g.Index(cfg.Start.X, cfg.Start.Y)
	frontier := make([]int, 0, g.CellCount())
	frontier = append(frontier, start)
	inFrontier[start] = true

	// 3. Grow until no frontier cell remains.
	for len(frontier) > 0 {
		pick := rng.Intn(len(frontier))
		cell := frontier[pick]
		visited[cell] = true

		// Attach the cell to the tree through one of its already-visited
		// neighbors. The start cell has none and stays at distance 0.
		if vis := visitedNeighbors(g, cell, visited); len(vis) > 0 {
			nb := vis[rng.Intn(len(vis))]
			dist[cell] = dist[nb] + 1
			g.Connect(cell, nb)
		}

		// Expand the frontier with fresh unvisited neighbors.
		for _, nb := range unvisitedNeighbors(g, cell, visited) {
			if !inFrontier[nb] {
				inFrontier[nb] = true
				frontier = append(frontier, nb)
			}
		}

		// Swap-remove the processed cell; visited guards re-entry.
		frontier[pick] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
	}

	return &Maze{Grid: g, RootDistance: dist}, nil
}
