package covering

// Symbol is a single column value. Valid values lie in [0, v) for the
// array's chosen v; DC is a sentinel meaning "don't care" and is only ever
// present transiently, inside rows created during vertical growth, between
// the append and the subsequent random fill.
type Symbol int

// DC marks a don't-care slot. It is deliberately outside [0, v) for every
// v >= 1 so it can never be confused with a real value.
const DC Symbol = -1

// row is a mutable, fixed-width slice of symbols used internally while the
// array is under construction. Rows visible outside the package (Array.Rows)
// are always fully resolved plain ints with no DC left.
type row []Symbol

func newRow(width int, fill Symbol) row {
	r := make(row, width)
	for i := range r {
		r[i] = fill
	}
	return r
}

func (r row) clone() row {
	c := make(row, len(r))
	copy(c, r)
	return c
}

func (r row) hasDC() bool {
	for _, s := range r {
		if s == DC {
			return true
		}
	}
	return false
}

func toIntRow(r row) []int {
	out := make([]int, len(r))
	for i, s := range r {
		out[i] = int(s)
	}
	return out
}
