package timsort

// mergeAt merges runs i and i+1, which must be the second and third from
// the top of the stack or the top two.
func (t *T[E]) mergeAt(i int) error {
	a, compare := t.a, t.compare

	r := t.runs
	base1, len1 := r[i].base, r[i].length
	base2, len2 := r[i+1].base, r[i+1].length

	r[i].length = len1 + len2
	if i == len(r)-3 {
		r[i+1] = r[i+2]
	}
	t.runs = r[:len(r)-1]
	t.stats.Merges++

	// elements of run 1 that are <= the head of run 2 are already in place.
	k := gallopRight(a[base2], a[base1:base1+len1], 0, compare)
	base1 += k
	len1 -= k
	if len1 == 0 {
		return nil
	}

	// elements of run 2 that are >= the tail of run 1 are already in place.
	len2 = gallopLeft(a[base1+len1-1], a[base2:base2+len2], len2-1, compare)
	if len2 == 0 {
		return nil
	}

	if len1 <= len2 {
		return t.mergeLo(base1, len1, base2, len2)
	}
	return t.mergeHi(base1, len1, base2, len2)
}

// mergeLo merges the adjacent runs a[base1:base1+len1] and
// a[base2:base2+len2] front to back with run 1 held in scratch. It requires
// that the first element of run 1 is greater than the first element of run
// 2 and that the last element of run 1 is greater than every element of
// run 2.
func (t *T[E]) mergeLo(base1, len1, base2, len2 int) error {
	a, compare := t.a, t.compare

	tmp := t.tmp.ensure(len1, t.limit)
	copy(tmp, a[base1:base1+len1])

	// dest+len1+len2 == end throughout
	end := base2 + len2
	cursor1, cursor2, dest := 0, base2, base1

	a[dest] = a[cursor2]
	dest++
	cursor2++
	if len2--; len2 == 0 {
		copy(a[dest:], tmp[cursor1:cursor1+len1])
		return nil
	}
	if len1 == 1 {
		copy(a[dest:], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1]
		return nil
	}

	minGallop := t.minGallop

outer:
	for {
		count1, count2 := 0, 0 // consecutive wins by run 1 and run 2

		for {
			if compare(a[cursor2], tmp[cursor1]) < 0 {
				a[dest] = a[cursor2]
				dest++
				cursor2++
				count2++
				count1 = 0
				if len2--; len2 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor1]
				dest++
				cursor1++
				count1++
				count2 = 0
				if len1--; len1 == 1 {
					break outer
				}
			}
			if count1|count2 >= minGallop {
				break
			}
		}

		t.stats.Gallops++

		for {
			count1 = gallopRight(a[cursor2], tmp[cursor1:cursor1+len1], 0, compare)
			if count1 != 0 {
				copy(a[dest:], tmp[cursor1:cursor1+count1])
				dest += count1
				cursor1 += count1
				len1 -= count1
				if len1 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor2]
			dest++
			cursor2++
			if len2--; len2 == 0 {
				break outer
			}

			count2 = gallopLeft(tmp[cursor1], a[cursor2:cursor2+len2], 0, compare)
			if count2 != 0 {
				copy(a[dest:], a[cursor2:cursor2+count2])
				dest += count2
				cursor2 += count2
				len2 -= count2
				if len2 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor1]
			dest++
			cursor1++
			if len1--; len1 == 1 {
				break outer
			}

			minGallop--
			if count1 < initialGallop && count2 < initialGallop {
				break
			}
		}

		// leaving galloping mode costs a higher threshold next time.
		minGallop = max(minGallop, 0) + 2
	}

	t.minGallop = max(minGallop, 1)

	switch len1 {
	case 1:
		copy(a[dest:], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1]
	case 0:
		return ErrComparator.Errorf("merging [%d, %d): left run exhausted with %d remaining on the right",
			base1, end, len2)
	default:
		copy(a[dest:], tmp[cursor1:cursor1+len1])
	}
	return nil
}

// mergeHi is mergeLo back to front with run 2 held in scratch. It requires
// that the first element of run 1 is greater than every element of run 2
// and that the last element of run 1 is greater than the last element of
// run 2.
func (t *T[E]) mergeHi(base1, len1, base2, len2 int) error {
	a, compare := t.a, t.compare

	tmp := t.tmp.ensure(len2, t.limit)
	copy(tmp, a[base2:base2+len2])

	end := base2 + len2
	cursor1, cursor2, dest := base1+len1-1, len2-1, end-1

	a[dest] = a[cursor1]
	dest--
	cursor1--
	if len1--; len1 == 0 {
		copy(a[dest-(len2-1):], tmp[:len2])
		return nil
	}
	if len2 == 1 {
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2]
		return nil
	}

	minGallop := t.minGallop

outer:
	for {
		count1, count2 := 0, 0

		for {
			if compare(tmp[cursor2], a[cursor1]) < 0 {
				a[dest] = a[cursor1]
				dest--
				cursor1--
				count1++
				count2 = 0
				if len1--; len1 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor2]
				dest--
				cursor2--
				count2++
				count1 = 0
				if len2--; len2 == 1 {
					break outer
				}
			}
			if count1|count2 >= minGallop {
				break
			}
		}

		t.stats.Gallops++

		for {
			count1 = len1 - gallopRight(tmp[cursor2], a[base1:base1+len1], len1-1, compare)
			if count1 != 0 {
				dest -= count1
				cursor1 -= count1
				len1 -= count1
				copy(a[dest+1:], a[cursor1+1:cursor1+1+count1])
				if len1 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor2]
			dest--
			cursor2--
			if len2--; len2 == 1 {
				break outer
			}

			count2 = len2 - gallopLeft(a[cursor1], tmp[:len2], len2-1, compare)
			if count2 != 0 {
				dest -= count2
				cursor2 -= count2
				len2 -= count2
				copy(a[dest+1:], tmp[cursor2+1:cursor2+1+count2])
				if len2 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor1]
			dest--
			cursor1--
			if len1--; len1 == 0 {
				break outer
			}

			minGallop--
			if count1 < initialGallop && count2 < initialGallop {
				break
			}
		}

		minGallop = max(minGallop, 0) + 2
	}

	t.minGallop = max(minGallop, 1)

	switch len2 {
	case 1:
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2]
	case 0:
		return ErrComparator.Errorf("merging [%d, %d): right run exhausted with %d remaining on the left",
			base1, end, len1)
	default:
		copy(a[dest-(len2-1):], tmp[:len2])
	}
	return nil
}
