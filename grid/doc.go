// Package grid provides the shared data structure every maze generator
// builds on: a rectangular arena of cells joined by a symmetric,
// identity-keyed connection relation.
//
// What:
//
//   - Grid owns width×height cells, addressed by (x,y) coordinates or by
//     a row-major linear ID (y*Width + x). Dimensions are fixed at
//     construction; width==0 or height==0 is a legal degenerate grid.
//   - Each cell carries a connection set: the IDs of the cells directly
//     reachable through a carved passage. Connecting A to B always
//     connects B to A; the relation is symmetric at all times.
//   - WithFullyConnected pre-links every cell to its west and north
//     neighbor, the initial state wall-building generators start from.
//   - DisconnectRow / DisconnectCol sever every adjacent pair along a
//     wall inside a rectangular sub-region except at one gap position.
//   - Edge is an unordered pair of cell IDs with a canonical (min,max)
//     form, totally ordered for deterministic enumeration.
//
// Why:
//
//   - Maze generation: the connection relation encodes passages; a
//     generator carves or walls by calling Connect/Disconnect only.
//   - Identity semantics without aliasing: cells live in a dense arena
//     and are referenced by ID, never by pointer, so connection sets
//     extend no lifetimes and copies cannot diverge.
//
// Complexity:
//
//   - Connect / Disconnect / Connected: O(1) expected.
//   - Links(id): O(d log d) with d = degree (result is sorted).
//   - Edges / EdgeCount: O(W×H + E) and O(W×H) respectively.
//   - DisconnectRow / DisconnectCol: O(span).
//
// Error model:
//
//	The package is error-free by design. Degenerate dimensions produce
//	an empty grid whose accessors return zero values, and mutating
//	operations ignore out-of-range or self-referential IDs rather than
//	corrupting the symmetric relation. Precondition violations on the
//	wall helpers therefore degrade to no-ops, never to panics.
package grid
