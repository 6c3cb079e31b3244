// Package maze implements six maze-generation strategies over grid.Grid:
// depth-first search, Kruskal's, Prim's, recursive division, binary tree,
// and sidewinder.
//
// What:
//
//   - Each generator is a pure function of (width, height, options):
//     it allocates a fresh grid, carves or walls passages according to its
//     strategy, and returns the finished Maze to the caller, who owns it
//     thereafter. No generator retains a reference after returning.
//   - All randomness comes from a single math/rand stream seeded per call
//     (WithSeed); identical inputs always produce an identical topology.
//   - All six strategies produce perfect mazes: the connectivity graph is
//     connected and acyclic, so exactly one path joins any two cells and
//     EdgeCount() == Width()*Height() - 1.
//   - Generate dispatches by method name, for callers selecting a strategy
//     at runtime.
//
// Why:
//
//   - Study canonical generation algorithms through one uniform surface:
//     stack-based carving (DFS), union-find edge selection (Kruskal's),
//     frontier growth (Prim's), recursive spatial partitioning
//     (Recursive Division), and row-local carving (Binary Tree, Sidewinder).
//   - Reproducible fixtures: a (dimensions, start, seed) triple pins an
//     exact maze for tests and comparisons.
//
// Complexity:
//
//   - Every generator runs in O(W×H) time and memory, except Kruskal's at
//     O(W×H α(W×H)) from its union-find bookkeeping.
//
// Options:
//
//   - WithSeed(seed): pin the pseudo-random stream (seed 0 selects the
//     fixed default stream; determinism holds either way).
//   - WithStart(x, y): start cell for DFS and Prim; ignored by the rest.
//
// Errors:
//
//   - ErrInvalidDimensions  width < 1 or height < 1.
//   - ErrStartOutOfBounds   start cell outside [0,W)×[0,H) (DFS, Prim).
//   - ErrUnknownMethod      Generate given an unrecognized method name.
//
// Concurrency:
//
//	Each call owns its grid and its random stream, so independent calls
//	are safe to run in parallel. A returned Maze is never mutated again
//	by this package; callers may share the read-only result freely.
package maze
