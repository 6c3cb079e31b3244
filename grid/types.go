// Package grid defines the value types and construction options shared by
// the Grid arena: Point, Cell, Edge, and the functional Option set.
package grid

// Point identifies a position within a Grid by its (X, Y) coordinates.
// X grows eastward, Y grows southward; the origin (0,0) is the top-left cell.
type Point struct {
	X int
	Y int
}

// Cell is a read-only view of a single grid cell: its coordinates and its
// row-major linear ID. Cells are identified by ID — two Cell values denote
// the same cell iff their IDs are equal within one Grid.
type Cell struct {
	X  int // column within the grid
	Y  int // row within the grid
	ID int // row-major linear index: Y*Width + X
}

// Edge is an unordered pair of cell IDs representing a candidate or
// realized connection. NewEdge stores the pair in canonical (min,max)
// form, so Edge values are comparable and Less is a strict total order —
// lexicographic on (A, B) after normalization.
//
// Edges are ephemeral: generators construct them while selecting
// passages, but the Grid's source of truth for connectivity is each
// cell's connection set, never an edge list.
type Edge struct {
	A int // smaller cell ID
	B int // larger cell ID
}

// NewEdge returns the canonical Edge for the unordered pair {a, b}.
// Complexity: O(1).
func NewEdge(a, b int) Edge {
	if b < a {
		a, b = b, a
	}

	return Edge{A: a, B: b}
}

// Less reports whether e precedes o in the canonical edge ordering:
// lexicographic on (A, B). Because both edges are normalized, Less is
// antisymmetric and transitive, making it safe for sorted containers.
// Complexity: O(1).
func (e Edge) Less(o Edge) bool {
	if e.A != o.A {
		return e.A < o.A
	}

	return e.B < o.B
}

// Option configures Grid construction. Use with New(width, height, opts...).
type Option func(*gridOptions)

// gridOptions holds construction-time parameters for a Grid.
type gridOptions struct {
	// fullyConnected pre-links every cell to its west and north neighbor,
	// producing the "all passages open" state wall builders start from.
	fullyConnected bool
}

// defaultOptions returns the zero configuration: no pre-established links.
func defaultOptions() gridOptions {
	return gridOptions{fullyConnected: false}
}

// WithFullyConnected returns an Option that connects every cell to each of
// its existing west and north neighbors during construction. Interior cells
// end up linked to both; border cells only where the neighbor exists.
func WithFullyConnected() Option {
	return func(o *gridOptions) {
		o.fullyConnected = true
	}
}
