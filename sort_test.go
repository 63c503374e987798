package timsort

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"

	"github.com/histdb/timsort/testhelp"
)

func TestSort(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var x []int
		assert.NoError(t, Sort(x, 0, 0, cmp.Compare[int]))
		assert.Equal(t, len(x), 0)
	})

	t.Run("Single", func(t *testing.T) {
		x := []int{5}
		assert.NoError(t, Sort(x, 0, 1, cmp.Compare[int]))
		assert.DeepEqual(t, x, []int{5})
	})

	t.Run("Small", func(t *testing.T) {
		x := testhelp.Records([]int{3, 1, 4, 1, 5, 9, 2, 6})

		var ts T[testhelp.Record]
		assert.NoError(t, ts.Sort(x, 0, len(x), testhelp.CompareRecords))

		keys := make([]int, len(x))
		for i, r := range x {
			keys[i] = r.Key
		}
		assert.DeepEqual(t, keys, []int{1, 1, 2, 3, 4, 5, 6, 9})
		assert.Equal(t, x[0].Index, 1)
		assert.Equal(t, x[1].Index, 3)
		assert.Equal(t, ts.Stats(), Stats{})
	})

	t.Run("Ascending", func(t *testing.T) {
		x := testhelp.Ascending(10000)
		calls := 0

		var ts T[int]
		assert.NoError(t, ts.Sort(x, 0, len(x), func(a, b int) int { calls++; return cmp.Compare(a, b) }))

		assert.DeepEqual(t, x, testhelp.Ascending(10000))
		assert.Equal(t, calls, 9999)
		assert.Equal(t, ts.Stats().Runs, 1)
		assert.Equal(t, ts.Stats().Merges, 0)
		assert.Equal(t, ts.Stats().ScratchLen, 0)
	})

	t.Run("Descending", func(t *testing.T) {
		x := testhelp.Descending(64)
		calls := 0

		var ts T[int]
		assert.NoError(t, ts.Sort(x, 0, len(x), func(a, b int) int { calls++; return cmp.Compare(a, b) }))

		testhelp.AssertSorted(t, x, cmp.Compare[int])
		assert.Equal(t, calls, 63)
		assert.Equal(t, ts.Stats().Runs, 1)
		assert.Equal(t, ts.Stats().Merges, 0)
	})

	t.Run("AllEqual", func(t *testing.T) {
		x := testhelp.Records(make([]int, 1000))
		before := slices.Clone(x)

		assert.NoError(t, Func(x, testhelp.CompareRecords))
		assert.DeepEqual(t, x, before)
	})

	t.Run("SubRange", func(t *testing.T) {
		x := testhelp.Ints(1000, 100)
		before := slices.Clone(x)

		assert.NoError(t, Sort(x, 100, 900, cmp.Compare[int]))

		assert.DeepEqual(t, x[:100], before[:100])
		assert.DeepEqual(t, x[900:], before[900:])
		testhelp.AssertSorted(t, x[100:900], cmp.Compare[int])
		testhelp.AssertPermutation(t, before[100:900], x[100:900], testhelp.AppendInt)
	})
}

func TestSortShapes(t *testing.T) {
	shapes := []struct {
		name string
		gen  func(n int) []int
	}{
		{"Random", func(n int) []int { return testhelp.Ints(n, 1<<30) }},
		{"Duplicates", func(n int) []int { return testhelp.Keys(n, 16) }},
		{"Ascending", testhelp.Ascending},
		{"Descending", testhelp.Descending},
		{"Sawtooth", func(n int) []int { return testhelp.Sawtooth(n, 100) }},
		{"OrganPipe", testhelp.OrganPipe},
		{"Runs", func(n int) []int { return testhelp.Runs(n, 200) }},
	}

	sizes := []int{0, 1, 2, 3, 31, 32, 33, 63, 64, 65, 100, 257, 1000, 4096, 10000, 100000}

	for _, shape := range shapes {
		t.Run(shape.name, func(t *testing.T) {
			for _, n := range sizes {
				x := testhelp.Records(shape.gen(n))
				before := slices.Clone(x)

				assert.NoError(t, Func(x, testhelp.CompareRecords))

				testhelp.AssertStable(t, x)
				testhelp.AssertPermutation(t, before, x, testhelp.AppendRecord)

				// sorting again changes nothing.
				again := slices.Clone(x)
				assert.NoError(t, Func(again, testhelp.CompareRecords))
				assert.DeepEqual(t, again, x)
			}
		})
	}
}

func TestSortDistinct(t *testing.T) {
	x := testhelp.Uint32s(50000)
	set := testhelp.Set(x)
	digest := testhelp.Digest(x, testhelp.AppendUint32)

	Slice(x)

	testhelp.AssertSorted(t, x, cmp.Compare[uint32])
	assert.That(t, testhelp.Set(x).Equals(set))
	assert.Equal(t, testhelp.Digest(x, testhelp.AppendUint32), digest)
}

func TestSortReuse(t *testing.T) {
	var ts T[int]

	x := testhelp.Ints(10000, 1000)
	assert.NoError(t, ts.Sort(x, 0, len(x), cmp.Compare[int]))
	testhelp.AssertSorted(t, x, cmp.Compare[int])

	scratch := ts.Stats().ScratchLen
	assert.That(t, scratch > 0)

	// a smaller sort keeps the larger buffer.
	y := testhelp.Ints(100, 1000)
	assert.NoError(t, ts.Sort(y, 0, len(y), cmp.Compare[int]))
	testhelp.AssertSorted(t, y, cmp.Compare[int])
	assert.Equal(t, ts.Stats().ScratchLen, scratch)
}

func TestSlice(t *testing.T) {
	t.Run("Strings", func(t *testing.T) {
		x := strings.Fields("the quick brown fox jumps over the lazy dog")
		Slice(x)
		assert.DeepEqual(t, x, []string{"brown", "dog", "fox", "jumps", "lazy", "over", "quick", "the", "the"})
	})

	t.Run("NaN", func(t *testing.T) {
		x := []float64{3, math.NaN(), 1, math.Inf(-1), 2}
		Slice(x)
		assert.That(t, math.IsNaN(x[0]))
		assert.DeepEqual(t, x[1:], []float64{math.Inf(-1), 1, 2, 3})
	})
}

func TestSortErrors(t *testing.T) {
	t.Run("InvalidRange", func(t *testing.T) {
		check := func(lo, hi int) {
			t.Helper()
			x := []int{3, 2, 1}
			err := Sort(x, lo, hi, cmp.Compare[int])
			assert.That(t, errors.Is(err, ErrInvalidRange))
			assert.DeepEqual(t, x, []int{3, 2, 1})
		}

		check(-1, 2)
		check(2, 1)
		check(0, 4)
		check(4, 4)
	})

	t.Run("NilCompare", func(t *testing.T) {
		x := []int{3, 2, 1}
		err := Sort(x, 0, 3, nil)
		assert.That(t, errors.Is(err, ErrNilCompare))
		assert.DeepEqual(t, x, []int{3, 2, 1})
	})

	t.Run("RandomComparator", func(t *testing.T) {
		// an arbitrary comparator may or may not be caught, but the sort
		// must neither panic nor lose elements.
		rng := mwc.Rand()
		compare := func(a, b int) int { return int(rng.Uint64n(3)) - 1 }

		for _, n := range []int{10, 100, 1000, 10000} {
			for range 20 {
				x := testhelp.Ints(n, 1000)
				before := slices.Clone(x)

				err := Sort(x, 0, len(x), compare)
				assert.That(t, err == nil || errors.Is(err, ErrComparator))
				testhelp.AssertPermutation(t, before, x, testhelp.AppendInt)
			}
		}
	})
}
