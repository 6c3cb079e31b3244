// Package maze - neighbor probing helpers shared by the generators.
package maze

import "github.com/lvkas/mazekit/grid"

// cardinalOffsets is the fixed probe order for the four cardinal
// neighbors: west, north, east, south. A fixed order keeps neighbor
// enumeration — and therefore every random pick made over it —
// deterministic for a given seed.
var cardinalOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// unvisitedNeighbors returns the cell IDs of id's in-bounds cardinal
// neighbors not yet marked in visited, in probe order.
// Complexity: O(1) (at most four probes).
func unvisitedNeighbors(g *grid.Grid, id int, visited []bool) []int {
	return neighborsByState(g, id, visited, false)
}

// visitedNeighbors returns the cell IDs of id's in-bounds cardinal
// neighbors already marked in visited, in probe order.
// Complexity: O(1).
func visitedNeighbors(g *grid.Grid, id int, visited []bool) []int {
	return neighborsByState(g, id, visited, true)
}

// neighborsByState probes the four cardinal directions and keeps the
// neighbors whose visited flag equals want.
func neighborsByState(g *grid.Grid, id int, visited []bool, want bool) []int {
	x, y := g.Coordinate(id)
	out := make([]int, 0, 4)
	for _, d := range cardinalOffsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		nb := g.Index(nx, ny)
		if visited[nb] == want {
			out = append(out, nb)
		}
	}

	return out
}

// westNorthNeighbors returns the cell IDs of id's existing west and north
// neighbors, in that order. Used by the binary tree carver, whose edges
// can only point west or north and therefore can never close a cycle.
// Complexity: O(1).
func westNorthNeighbors(g *grid.Grid, id int) []int {
	x, y := g.Coordinate(id)
	out := make([]int, 0, 2)
	if x > 0 {
		out = append(out, g.Index(x-1, y))
	}
	if y > 0 {
		out = append(out, g.Index(x, y-1))
	}

	return out
}
