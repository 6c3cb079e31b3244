package sorting

// Bubble sorts s in place by repeated adjacent exchanges, consistent with
// less. Each sweep floats the largest remaining element to the end; a
// sweep without a single swap proves the slice sorted and exits early, so
// already-sorted input costs one O(n) pass.
//
// Complexity: O(n²) time worst case, O(1) space. Stable.
func Bubble[T any](s []T, less func(a, b T) bool) {
	for end := len(s) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if less(s[i+1], s[i]) {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
