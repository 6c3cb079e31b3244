package sorting

// Quick sorts s in place by recursive partitioning, consistent with less.
// The middle element serves as pivot, which keeps already-sorted and
// reverse-sorted input off the quadratic path.
//
// Complexity: O(n log n) expected time, O(log n) expected stack. Not stable.
func Quick[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}

	p := Partition(s, len(s)/2, less)
	Quick(s[:p], less)
	Quick(s[p+1:], less)
}
