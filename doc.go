// Package mazekit is an in-memory playground for canonical algorithms —
// a shared grid/graph data structure, a family of maze generators built
// on top of it, and generic comparison-based sorting primitives.
//
// 🚀 What is mazekit?
//
//	A small, focused, pure-Go library that brings together:
//		• Grid primitives: a dense cell arena with a symmetric connection relation
//		• Maze generators: DFS, Kruskal's, Prim's, Recursive Division,
//		  Binary Tree and Sidewinder — all deterministic under a seed
//		• Sorting primitives: partition, bubble sort, quicksort and merge sort
//		  over arbitrary slices with caller-supplied comparators
//
// ✨ Why choose mazekit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every generator is a pure function of (dimensions, start, seed)
//   - Pure Go – no cgo, no hidden deps
//   - Testable – connectivity, acyclicity and determinism are all observable
//     through the public query surface
//
// Everything is organized under three subpackages:
//
//	grid/    — Grid, Cell, Point and Edge types plus connect/disconnect primitives
//	maze/    — the six generation strategies and a method dispatcher
//	sorting/ — generic partition and sort routines (bubble, quick, merge)
//
// Quick ASCII example:
//
//	┌───────┐
//	│ ╷ ╶─┐ │
//	│ └─╴ │ │
//	└─────┴─┘
//
//	a 3×2 perfect maze: every cell reachable, no cycles.
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and worked examples.
//
//	go get github.com/lvkas/mazekit
package mazekit
