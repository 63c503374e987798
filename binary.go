package timsort

// binarySort sorts a[lo:hi] given that a[lo:start] is already sorted. Each
// new element is placed after every element it compares equal to, which
// keeps the sort stable.
func binarySort[E any](a []E, lo, hi, start int, compare func(a, b E) int) {
	if start == lo {
		start++
	}

	for ; start < hi; start++ {
		pivot := a[start]

		l, r := lo, start
		for l < r {
			m := int(uint(l+r) >> 1)
			if compare(pivot, a[m]) < 0 {
				r = m
			} else {
				l = m + 1
			}
		}

		copy(a[l+1:start+1], a[l:start])
		a[l] = pivot
	}
}
