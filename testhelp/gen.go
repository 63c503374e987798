package testhelp

import (
	"cmp"

	"github.com/zeebo/mwc"
)

var (
	intRng  = mwc.Rand()
	runRng  = mwc.Rand()
	keyRng  = mwc.Rand()
	u32sRng = mwc.Rand()
)

// Record is an element whose Key is compared and whose Index remembers
// where it started, so stability can be checked after sorting.
type Record struct {
	Key   int
	Index int
}

func CompareRecords(a, b Record) int { return cmp.Compare(a.Key, b.Key) }

// Records tags each key with its position.
func Records(keys []int) []Record {
	rs := make([]Record, len(keys))
	for i, k := range keys {
		rs[i] = Record{Key: k, Index: i}
	}
	return rs
}

// Ints returns n values drawn uniformly from [0, limit).
func Ints(n int, limit uint64) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = int(intRng.Uint64n(limit))
	}
	return v
}

// Keys returns n values from [0, distinct), for inputs with many
// duplicates.
func Keys(n int, distinct uint64) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = int(keyRng.Uint64n(distinct))
	}
	return v
}

// Uint32s returns n random uint32s.
func Uint32s(n int) []uint32 {
	v := make([]uint32, n)
	for i := range v {
		v[i] = u32sRng.Uint32()
	}
	return v
}

func Ascending(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}
	return v
}

func Descending(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = n - i
	}
	return v
}

// Sawtooth returns ascending ramps of the given period.
func Sawtooth(n, period int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = i % period
	}
	return v
}

// OrganPipe ascends to the middle then descends.
func OrganPipe(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = min(i, n-i)
	}
	return v
}

// Runs returns n values made of ascending runs with random lengths in
// [1, maxRun] and overlapping value ranges.
func Runs(n, maxRun int) []int {
	v := make([]int, 0, n)
	for len(v) < n {
		l := min(1+int(runRng.Uint64n(uint64(maxRun))), n-len(v))
		x := int(runRng.Uint64n(uint64(n)))
		for range l {
			v = append(v, x)
			x += int(runRng.Uint64n(4))
		}
	}
	return v
}
