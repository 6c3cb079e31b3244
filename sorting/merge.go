package sorting

// Merge sorts s in place by top-down merge sort, consistent with less.
// Ties preserve the original relative order, making Merge the one stable
// O(n log n) sort in the package.
//
// Complexity: O(n log n) time, O(n) auxiliary space.
func Merge[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}

	// One scratch buffer for the whole recursion; halves merge through it.
	buf := make([]T, len(s))
	mergeSort(s, buf, less)
}

// mergeSort recursively splits s at the midpoint, sorts both halves, and
// merges them through buf back into s.
func mergeSort[T any](s, buf []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}

	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], less)
	mergeSort(s[mid:], buf[mid:], less)

	// Merge the sorted halves into buf, taking from the left half on ties
	// to keep the sort stable.
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		if less(s[j], s[i]) {
			buf[k] = s[j]
			j++
		} else {
			buf[k] = s[i]
			i++
		}
		k++
	}
	for i < mid {
		buf[k] = s[i]
		i++
		k++
	}
	for j < len(s) {
		buf[k] = s[j]
		j++
		k++
	}

	copy(s, buf[:len(s)])
}
