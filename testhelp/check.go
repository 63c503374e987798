package testhelp

import (
	"encoding/binary"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/zeebo/assert"
	"github.com/zeebo/xxh3"
)

// Digest returns a digest of the multiset of values in x. It does not
// depend on the order of x.
func Digest[E any](x []E, appendTo func([]byte, E) []byte) (d uint64) {
	var buf []byte
	for _, v := range x {
		buf = appendTo(buf[:0], v)
		d += xxh3.Hash(buf)
	}
	return d
}

func AppendInt(buf []byte, v int) []byte {
	return binary.LittleEndian.AppendUint64(buf, uint64(v))
}

func AppendRecord(buf []byte, r Record) []byte {
	return AppendInt(AppendInt(buf, r.Key), r.Index)
}

func AppendUint32(buf []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, v)
}

// Set returns the distinct values of x.
func Set(x []uint32) *roaring.Bitmap {
	bm := roaring.New()
	bm.AddMany(x)
	return bm
}

// AssertSorted checks that x is ascending under compare.
func AssertSorted[E any](tb testing.TB, x []E, compare func(a, b E) int) {
	tb.Helper()
	for i := 1; i < len(x); i++ {
		if compare(x[i-1], x[i]) > 0 {
			tb.Fatalf("out of order at %d: %v > %v", i, x[i-1], x[i])
		}
	}
}

// AssertStable checks that x is sorted by key and that records with equal
// keys kept their original order.
func AssertStable(tb testing.TB, x []Record) {
	tb.Helper()
	AssertSorted(tb, x, CompareRecords)
	for i := 1; i < len(x); i++ {
		if x[i-1].Key == x[i].Key && x[i-1].Index > x[i].Index {
			tb.Fatalf("unstable at %d: %v before %v", i, x[i-1], x[i])
		}
	}
}

// AssertPermutation checks that after holds the same multiset of values
// as before.
func AssertPermutation[E any](tb testing.TB, before, after []E, appendTo func([]byte, E) []byte) {
	tb.Helper()
	assert.Equal(tb, len(before), len(after))
	assert.Equal(tb, Digest(before, appendTo), Digest(after, appendTo))
}
