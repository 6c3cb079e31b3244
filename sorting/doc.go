// Package sorting provides generic, comparison-based, in-place sorting
// primitives over slices: partition, bubble sort, quicksort and merge sort.
//
// What:
//
//   - Partition rearranges a slice around a chosen pivot element and
//     returns the pivot's final index — the core step quicksort is built on.
//   - Bubble, Quick and Merge sort a slice in place, consistent with a
//     caller-supplied less function.
//   - Every routine is a no-op on empty or single-element slices and on
//     invalid pivot indices: out-of-range input is rejected before any
//     mutation begins, never reported as an error.
//
// Why:
//
//   - Study the canonical comparison sorts through one uniform, generic
//     surface; the maze packages never consume this one — it is the
//     standalone utility half of the library.
//
// Complexity:
//
//   - Partition: O(n) time, O(1) space.
//   - Bubble:    O(n²) time worst case with early exit on sorted input, O(1) space.
//   - Quick:     O(n log n) expected time, O(log n) stack.
//   - Merge:     O(n log n) time, O(n) space; stable.
//
// Ordering:
//
//	A less(a, b) function defines the order; pass the inverse function to
//	sort descending. Comparisons are the only operation performed on
//	element values.
package sorting
