package timsort

// Stats counts the work done by a single sort.
type Stats struct {
	Runs       int // runs pushed onto the run stack
	Merges     int // adjacent runs merged, including merges trimmed to nothing
	Gallops    int // times a merge switched into galloping mode
	ScratchLen int // length of the scratch buffer when the sort returned
}
