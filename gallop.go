package timsort

// gallopLeft returns the leftmost position in the sorted s at which key
// could be inserted: s[:k] < key <= s[k:]. The search probes outward from
// s[hint] at offsets 1, 3, 7, ... and then binary searches the bracket it
// found, so it is cheap when the answer is near hint.
func gallopLeft[E any](key E, s []E, hint int, compare func(a, b E) int) int {
	lastOfs, ofs := 0, 1

	if compare(key, s[hint]) > 0 {
		// s[hint] < key: probe right until s[hint+lastOfs] < key <= s[hint+ofs]
		maxOfs := len(s) - hint
		for ofs < maxOfs && compare(key, s[hint+ofs]) > 0 {
			lastOfs = ofs
			ofs = ofs<<1 + 1
		}
		ofs = min(ofs, maxOfs)
		lastOfs += hint
		ofs += hint
	} else {
		// key <= s[hint]: probe left until s[hint-ofs] < key <= s[hint-lastOfs]
		maxOfs := hint + 1
		for ofs < maxOfs && compare(key, s[hint-ofs]) <= 0 {
			lastOfs = ofs
			ofs = ofs<<1 + 1
		}
		ofs = min(ofs, maxOfs)
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}

	// s[lastOfs] < key <= s[ofs], with lastOfs possibly -1 and ofs possibly
	// len(s).
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)>>1
		if compare(key, s[m]) > 0 {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return ofs
}

// gallopRight is like gallopLeft but returns the rightmost insertion point:
// s[:k] <= key < s[k:].
func gallopRight[E any](key E, s []E, hint int, compare func(a, b E) int) int {
	lastOfs, ofs := 0, 1

	if compare(key, s[hint]) < 0 {
		// key < s[hint]: probe left until s[hint-ofs] <= key < s[hint-lastOfs]
		maxOfs := hint + 1
		for ofs < maxOfs && compare(key, s[hint-ofs]) < 0 {
			lastOfs = ofs
			ofs = ofs<<1 + 1
		}
		ofs = min(ofs, maxOfs)
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		// s[hint] <= key: probe right until s[hint+lastOfs] <= key < s[hint+ofs]
		maxOfs := len(s) - hint
		for ofs < maxOfs && compare(key, s[hint+ofs]) >= 0 {
			lastOfs = ofs
			ofs = ofs<<1 + 1
		}
		ofs = min(ofs, maxOfs)
		lastOfs += hint
		ofs += hint
	}

	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)>>1
		if compare(key, s[m]) < 0 {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}
	return ofs
}
