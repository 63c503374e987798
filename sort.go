// Package timsort is a stable, adaptive merge sort for slices. It merges the
// runs that are already in order in the input, galloping through stretches
// where one run keeps winning.
package timsort

import "cmp"

const (
	minMerge       = 32  // ranges shorter than this are binary insertion sorted
	initialGallop  = 7   // consecutive wins before a merge starts galloping
	initialScratch = 256 // smallest scratch allocation
)

// T holds the run stack and scratch buffer of a sort. The zero value is
// ready to use. Reusing a T keeps its
// scratch buffer between calls. A T must not be used concurrently.
type T[E any] struct {
	_ [0]func() // no equality

	a       []E
	compare func(a, b E) int

	runs      []run
	minGallop int
	tmp       scratch[E]
	limit     int

	stats Stats
}

// Sort sorts x[lo:hi] in place using compare, keeping equal elements in
// their original order.
func Sort[E any](x []E, lo, hi int, compare func(a, b E) int) error {
	var t T[E]
	return t.Sort(x, lo, hi, compare)
}

// Func sorts all of x using compare.
func Func[S ~[]E, E any](x S, compare func(a, b E) int) error {
	return Sort([]E(x), 0, len(x), compare)
}

// Slice sorts all of x in ascending order.
func Slice[S ~[]E, E cmp.Ordered](x S) {
	// cmp.Compare is a total order, even for NaNs, so this cannot fail.
	_ = Sort([]E(x), 0, len(x), cmp.Compare[E])
}

// Stats returns the counters of the most recent call to Sort.
func (t *T[E]) Stats() Stats { return t.stats }

// Sort sorts x[lo:hi] in place using compare. See the package level Sort.
func (t *T[E]) Sort(x []E, lo, hi int, compare func(a, b E) int) error {
	if lo < 0 || lo > hi || hi > len(x) {
		return ErrInvalidRange.Errorf("lo=%d hi=%d len=%d", lo, hi, len(x))
	}
	if compare == nil {
		return ErrNilCompare.Errorf("sorting [%d, %d)", lo, hi)
	}

	t.reset(x, compare, hi-lo)
	defer t.release()

	return t.sort(lo, hi)
}

func (t *T[E]) reset(x []E, compare func(a, b E) int, n int) {
	t.a = x
	t.compare = compare
	t.runs = t.runs[:0]
	t.minGallop = initialGallop
	t.limit = n / 2
	t.stats = Stats{}
}

func (t *T[E]) release() {
	t.tmp.clear()
	t.stats.ScratchLen = t.tmp.len()
	t.a = nil
	t.compare = nil
}

func (t *T[E]) sort(lo, hi int) error {
	a, compare := t.a, t.compare

	rem := hi - lo
	if rem < 2 {
		return nil
	}

	if rem < minMerge {
		initRun := countRun(a, lo, hi, compare)
		binarySort(a, lo, hi, lo+initRun, compare)
		return nil
	}

	minRun := minRunLength(rem)
	for rem > 0 {
		n := countRun(a, lo, hi, compare)

		if n < minRun {
			force := min(rem, minRun)
			binarySort(a, lo, lo+force, lo+n, compare)
			n = force
		}

		t.pushRun(lo, n)
		if err := t.mergeCollapse(); err != nil {
			return err
		}

		lo += n
		rem -= n
	}

	return t.mergeForceCollapse()
}
