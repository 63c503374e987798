package timsort

// countRun returns the length of the run starting at a[lo]. A strictly
// descending run is reversed in place so that every run returned is
// ascending. Equal neighbors never extend a descending run, so reversing
// cannot reorder equal elements.
func countRun[E any](a []E, lo, hi int, compare func(a, b E) int) int {
	runHi := lo + 1
	if runHi == hi {
		return 1
	}

	if compare(a[runHi], a[lo]) < 0 {
		runHi++
		for runHi < hi && compare(a[runHi], a[runHi-1]) < 0 {
			runHi++
		}
		reverseRange(a, lo, runHi)
	} else {
		runHi++
		for runHi < hi && compare(a[runHi], a[runHi-1]) >= 0 {
			runHi++
		}
	}

	return runHi - lo
}

func reverseRange[E any](a []E, lo, hi int) {
	i, j := lo, hi-1
	for i < j {
		a[i], a[j] = a[j], a[i]
		i++
		j--
	}
}

// minRunLength returns the shortest run the sort builds for a range of n
// elements. For n < minMerge it is n. Otherwise it is some k in
// [minMerge/2, minMerge] such that n/k is equal to, or a little less than,
// a power of two.
func minRunLength(n int) int {
	r := 0 // set if any one bits are shifted off
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}
