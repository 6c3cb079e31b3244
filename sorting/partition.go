package sorting

// Partition rearranges s around the element at index pivot: afterwards all
// elements before the returned index are not greater than the pivot value
// (per less), and all elements from it onward are not smaller. It returns
// the pivot element's final index.
//
// Slices shorter than two elements and out-of-range pivot indices are
// rejected up front: s is left untouched and pivot is returned unchanged.
//
// Complexity: O(n) time, O(1) space.
func Partition[T any](s []T, pivot int, less func(a, b T) bool) int {
	// Reject degenerate input before any mutation.
	if len(s) < 2 || pivot < 0 || pivot >= len(s) {
		return pivot
	}

	// Lomuto scheme: park the pivot at the end, sweep smaller elements to
	// the front, then drop the pivot into the boundary slot.
	last := len(s) - 1
	s[pivot], s[last] = s[last], s[pivot]

	store := 0
	for i := 0; i < last; i++ {
		if less(s[i], s[last]) {
			s[i], s[store] = s[store], s[i]
			store++
		}
	}
	s[store], s[last] = s[last], s[store]

	return store
}
