package covering

// verticalGrowth appends the rows needed to cover whatever remains in u
// after horizontal growth, then fills every don't-care slot with a uniform
// random value. width is the current column count of the array (after this
// stride's widening). Returns the new rows to append; u is read but not
// modified.
func verticalGrowth(u *uncovered, width int, rng Rand) []row {
	var vrows []row

	for _, entry := range u.remaining() {
		applied := false
		for i := range vrows {
			if compatible(vrows[i], entry) {
				apply(vrows[i], entry)
				applied = true
				break
			}
		}
		if !applied {
			nr := newRow(width, DC)
			apply(nr, entry)
			vrows = append(vrows, nr)
		}
	}

	for _, r := range vrows {
		fillDontCares(r, u.v, rng)
	}
	return vrows
}

// compatible reports whether row r can absorb entry's assignment: every
// touched column is either DC or already holds the required value.
func compatible(r row, entry remainingEntry) bool {
	for i, c := range entry.cols {
		if r[c] != DC && int(r[c]) != entry.values[i] {
			return false
		}
	}
	return true
}

// apply writes entry's assignment into row r's don't-care slots.
func apply(r row, entry remainingEntry) {
	for i, c := range entry.cols {
		r[c] = Symbol(entry.values[i])
	}
}

// fillDontCares replaces every remaining DC in r with a uniform random value
// in [0, v).
func fillDontCares(r row, v int, rng Rand) {
	for i, s := range r {
		if s == DC {
			r[i] = Symbol(rng.Intn(v))
		}
	}
}
