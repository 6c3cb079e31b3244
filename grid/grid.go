package grid

import "sort"

// Grid owns a rectangular arena of width×height cells and the symmetric
// connection relation between them. Dimensions never change after
// construction. The zero-area grid (width==0 or height==0) is legal and
// degenerate: it holds no cells and all accessors return zero values.
type Grid struct {
	width  int
	height int
	// links[id] is cell id's connection set: the IDs of directly reachable
	// cells. Stored as index sets rather than pointers so the relation is
	// identity-keyed without extending any cell's lifetime.
	links []map[int]struct{}
}

// New allocates a width×height Grid. Negative dimensions are treated as
// zero, yielding the degenerate empty grid. With WithFullyConnected, every
// cell is linked to its west and north neighbor (when present) as part of
// construction.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) *Grid {
	// 1. Apply construction options.
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Clamp degenerate dimensions to the empty grid.
	if width < 1 || height < 1 {
		width, height = 0, 0
	}

	// 3. Allocate one connection set per cell.
	g := &Grid{
		width:  width,
		height: height,
		links:  make([]map[int]struct{}, width*height),
	}
	for id := range g.links {
		g.links[id] = make(map[int]struct{}, 4)
	}

	// 4. Optionally pre-link each cell westward and northward.
	if cfg.fullyConnected {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if x > 0 {
					g.Connect(g.Index(x, y), g.Index(x-1, y))
				}
				if y > 0 {
					g.Connect(g.Index(x, y), g.Index(x, y-1))
				}
			}
		}
	}

	return g
}

// Width returns the configured width (0 for the empty grid). Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// Height returns the configured height (0 for the empty grid). Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// CellCount returns the number of cells in the arena. Complexity: O(1).
func (g *Grid) CellCount() int { return len(g.links) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to a row-major linear ID: y*Width + x.
// The caller must ensure InBounds(x, y). Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major linear ID back to (x,y).
// The empty grid maps every ID to the origin. Complexity: O(1).
func (g *Grid) Coordinate(id int) (x, y int) {
	if g.width == 0 {
		return 0, 0
	}

	return id % g.width, id / g.width
}

// At returns the read-only Cell view of the cell at (x,y).
// The caller must ensure InBounds(x, y). Complexity: O(1).
func (g *Grid) At(x, y int) Cell {
	return Cell{X: x, Y: y, ID: g.Index(x, y)}
}

// valid reports whether id names a cell of this grid.
func (g *Grid) valid(id int) bool {
	return id >= 0 && id < len(g.links)
}

// Connect adds a symmetric passage between cells a and b. Reconnecting an
// already-connected pair is a no-op, as is any call with an out-of-range
// ID or with a == b. Complexity: O(1) expected.
func (g *Grid) Connect(a, b int) {
	if !g.valid(a) || !g.valid(b) || a == b {
		return
	}
	g.links[a][b] = struct{}{}
	g.links[b][a] = struct{}{}
}

// ConnectAll connects cell a to every cell in neighbors. A nil or empty
// list is a no-op. Complexity: O(len(neighbors)) expected.
func (g *Grid) ConnectAll(a int, neighbors []int) {
	if len(neighbors) < 1 {
		return
	}
	for _, nb := range neighbors {
		g.Connect(a, nb)
	}
}

// Disconnect removes the symmetric passage between cells a and b.
// Disconnecting a pair that is not connected is a no-op, as is any call
// with an out-of-range ID. Complexity: O(1) expected.
func (g *Grid) Disconnect(a, b int) {
	if !g.valid(a) || !g.valid(b) {
		return
	}
	delete(g.links[a], b)
	delete(g.links[b], a)
}

// Connected reports whether a passage exists between cells a and b.
// Out-of-range IDs report false. Complexity: O(1) expected.
func (g *Grid) Connected(a, b int) bool {
	if !g.valid(a) || !g.valid(b) {
		return false
	}
	_, ok := g.links[a][b]

	return ok
}

// Links returns cell id's connection set as a sorted slice of cell IDs,
// for deterministic enumeration. Out-of-range IDs return nil.
// Complexity: O(d log d) with d = degree.
func (g *Grid) Links(id int) []int {
	if !g.valid(id) {
		return nil
	}
	out := make([]int, 0, len(g.links[id]))
	for nb := range g.links[id] {
		out = append(out, nb)
	}
	sort.Ints(out)

	return out
}

// Degree returns the number of cells directly connected to cell id.
// Out-of-range IDs return 0. Complexity: O(1).
func (g *Grid) Degree(id int) int {
	if !g.valid(id) {
		return 0
	}

	return len(g.links[id])
}

// EdgeCount returns the number of undirected passages in the grid, each
// counted once. Complexity: O(W×H).
func (g *Grid) EdgeCount() int {
	total := 0
	for id := range g.links {
		total += len(g.links[id])
	}

	// Every passage appears in both endpoints' connection sets.
	return total / 2
}

// Edges returns every realized passage as a canonical Edge, sorted by the
// Edge total order, for deterministic comparison of two grids.
// Complexity: O(W×H + E log E).
func (g *Grid) Edges() []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	for id := range g.links {
		for nb := range g.links[id] {
			// Emit each unordered pair once, from its smaller endpoint.
			if id < nb {
				edges = append(edges, NewEdge(id, nb))
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })

	return edges
}

// DisconnectRow builds a horizontal wall inside the sub-region anchored at
// origin: for each x in [0, width), it severs the vertical pair between
// rows rowIdx and rowIdx+1 of the sub-region, except at x == pathIdx where
// the single gap remains.
//
// Preconditions: origin.Y+rowIdx+1 must be a valid row and the span
// [origin.X, origin.X+width) must lie within the grid; pathIdx in
// [0, width). Violations degrade to per-pair no-ops.
// Complexity: O(width).
func (g *Grid) DisconnectRow(origin Point, rowIdx, width, pathIdx int) {
	for x := 0; x < width; x++ {
		if x == pathIdx {
			continue
		}
		if !g.InBounds(origin.X+x, origin.Y+rowIdx) || !g.InBounds(origin.X+x, origin.Y+rowIdx+1) {
			continue
		}
		g.Disconnect(g.Index(origin.X+x, origin.Y+rowIdx), g.Index(origin.X+x, origin.Y+rowIdx+1))
	}
}

// DisconnectCol builds a vertical wall inside the sub-region anchored at
// origin: for each y in [0, height), it severs the horizontal pair between
// columns colIdx and colIdx+1 of the sub-region, except at y == pathIdx
// where the single gap remains.
//
// Preconditions: origin.X+colIdx+1 must be a valid column and the span
// [origin.Y, origin.Y+height) must lie within the grid; pathIdx in
// [0, height). Violations degrade to per-pair no-ops.
// Complexity: O(height).
func (g *Grid) DisconnectCol(origin Point, colIdx, height, pathIdx int) {
	for y := 0; y < height; y++ {
		if y == pathIdx {
			continue
		}
		if !g.InBounds(origin.X+colIdx, origin.Y+y) || !g.InBounds(origin.X+colIdx+1, origin.Y+y) {
			continue
		}
		g.Disconnect(g.Index(origin.X+colIdx, origin.Y+y), g.Index(origin.X+colIdx+1, origin.Y+y))
	}
}
