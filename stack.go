package timsort

// run is a sorted stretch a[base:base+length].
type run struct {
	base   int
	length int
}

func (t *T[E]) pushRun(base, length int) {
	t.runs = append(t.runs, run{base: base, length: length})
	t.stats.Runs++
}

// mergeCollapse merges runs until, reading from the top of the stack,
//
//  1. runs[n-2].length > runs[n-1].length
//  2. runs[n-3].length > runs[n-2].length + runs[n-1].length
//
// hold. The check reaches one run deeper than the two rules so that they
// also hold for the runs that stay below the top after a merge.
func (t *T[E]) mergeCollapse() error {
	for len(t.runs) > 1 {
		r := t.runs
		n := len(r) - 2

		if n > 0 && r[n-1].length <= r[n].length+r[n+1].length ||
			n > 1 && r[n-2].length <= r[n-1].length+r[n].length {
			if r[n-1].length < r[n+1].length {
				n--
			}
		} else if r[n].length > r[n+1].length {
			break
		}

		if err := t.mergeAt(n); err != nil {
			return err
		}
	}
	return nil
}

// mergeForceCollapse merges every run on the stack into one.
func (t *T[E]) mergeForceCollapse() error {
	for len(t.runs) > 1 {
		r := t.runs
		n := len(r) - 2

		if n > 0 && r[n-1].length < r[n+1].length {
			n--
		}

		if err := t.mergeAt(n); err != nil {
			return err
		}
	}
	return nil
}
