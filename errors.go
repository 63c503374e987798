package timsort

import "github.com/zeebo/errs/v2"

const (
	// ErrInvalidRange is returned when lo and hi do not describe a sub-range
	// of the slice. The slice is not modified.
	ErrInvalidRange = errs.Tag("invalid range")

	// ErrNilCompare is returned when no comparison function is supplied.
	ErrNilCompare = errs.Tag("nil compare function")

	// ErrComparator is returned when a merge reaches a state that a total
	// order cannot produce. The range holds some permutation of its input.
	ErrComparator = errs.Tag("comparison function violates its contract")
)
