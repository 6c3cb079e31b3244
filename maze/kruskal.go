package maze

import "github.com/lvkas/mazekit/grid"

// Kruskal generates a maze by randomized Kruskal's algorithm: instead of
// growing the maze like a tree, it carves passage segments all over the
// grid at random, accepting an edge only when its endpoints are not yet in
// the same component.
//
// Strategy:
//  1. Enumerate every horizontal and vertical adjacent pair once, in
//     deterministic raster order.
//  2. Shuffle the pool — consuming a uniformly shuffled pool front to back
//     draws edges uniformly at random without replacement.
//  3. For each edge, if its endpoints lie in different components of the
//     disjoint-set structure, connect the cells and union the components;
//     otherwise discard the edge.
//
// The union-find check prevents every cycle, so the result is a uniformly
// random spanning tree: a perfect maze. A 1×1 grid yields a maze with a
// single isolated cell and zero passages.
//
// Errors:
//   - ErrInvalidDimensions if width < 1 or height < 1.
//
// Complexity: O(W×H α(W×H)) time, O(W×H) memory.
func Kruskal(width, height int, opts ...Option) (*Maze, error) {
	// 1. Validate input before any allocation or RNG use.
	cfg := applyOptions(opts)
	if !validDimensions(width, height) {
		return nil, ErrInvalidDimensions
	}

	g := grid.New(width, height)
	rng := rngFromSeed(cfg.Seed)

	// 2. Build the full edge pool: east and south pair per cell where the
	//    neighbor exists. Raster order keeps the pool — and the shuffle
	//    applied to it — deterministic for a given seed.
	edges := make([]grid.Edge, 0, 2*width*height-width-height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x+1 < width {
				edges = append(edges, grid.NewEdge(g.Index(x, y), g.Index(x+1, y)))
			}
			if y+1 < height {
				edges = append(edges, grid.NewEdge(g.Index(x, y), g.Index(x, y+1)))
			}
		}
	}
	shuffleEdgesInPlace(edges, rng)

	// 3. Union-find over cell IDs replaces the classic per-cell bucket
	//    lists: same accept/reject decisions, near-linear total cost.
	ds := newDisjointSet(g.CellCount())
	for _, e := range edges {
		if ds.find(e.A) != ds.find(e.B) {
			ds.union(e.A, e.B)
			g.Connect(e.A, e.B)
		}
	}

	return &Maze{Grid: g}, nil
}

// disjointSet is a union-find structure over dense integer IDs with path
// compression and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

// newDisjointSet returns n singleton components, one per ID.
// Complexity: O(n).
func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the component root of u, compressing the path as it walks.
// Complexity: amortized O(α(n)).
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		// Path compression: make u point to its grandparent.
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the components containing u and v, attaching the
// smaller-rank root under the larger one. Merging a component with itself
// is a no-op. Complexity: amortized O(α(n)).
func (ds *disjointSet) union(u, v int) {
	rootU := ds.find(u)
	rootV := ds.find(v)
	if rootU == rootV {
		return
	}
	if ds.rank[rootU] < ds.rank[rootV] {
		ds.parent[rootU] = rootV
	} else {
		ds.parent[rootV] = rootU
		if ds.rank[rootU] == ds.rank[rootV] {
			ds.rank[rootU]++
		}
	}
}
