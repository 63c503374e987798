package timsort

import "math/bits"

// scratch is the merge buffer. It only grows.
type scratch[E any] struct {
	buf []E
}

func (s *scratch[E]) len() int { return len(s.buf) }

// ensure returns a buffer of length n. When the buffer must grow it grows
// to the next power of two above n, capped at limit but never below n.
func (s *scratch[E]) ensure(n, limit int) []E {
	if len(s.buf) < n {
		size := 1 << bits.Len(uint(n))
		size = max(size, initialScratch)
		size = max(min(size, limit), n)
		s.buf = make([]E, size)
	}
	return s.buf[:n]
}

// clear drops any references held by the buffer.
func (s *scratch[E]) clear() { clear(s.buf) }
