package covering

import "sort"

// tupleSet is a hash set of packed tuple indices for one column-family key.
// Using a set keeps covers/remove O(1) per key instead of the O(|list|)
// linear scan the reference implementation pays for on every candidate.
type tupleSet map[uint64]struct{}

// uncovered is the bookkeeping structure U from spec.md section 4.A: every
// (key, tuple) pair not yet satisfied by any row in the array, scoped to a
// single stride's worth of column-families.
type uncovered struct {
	t, v int
	keys []Key // canonical lexicographic order over column indices, fixed for the life of this U
	sets map[Key]tupleSet
}

// newUncovered builds U for every t-subset of [0, width) that includes at
// least one column in [newFrom, width) -- the columns added this stride.
// T-subsets wholly inside [0, newFrom) were already exhausted by prior
// strides and are skipped up front (spec.md 4.E, Open Question 2).
func newUncovered(t, v, width, newFrom int) *uncovered {
	u := &uncovered{t: t, v: v, sets: make(map[Key]tupleSet)}
	for _, combo := range sortedCombinations(width, t) {
		if combo[len(combo)-1] < newFrom {
			continue // fully inside the already-covered prefix
		}
		key := makeKey(combo)
		set := make(tupleSet)
		for _, tup := range allTuples(t, v) {
			set[tupleIndex(tup, v)] = struct{}{}
		}
		u.sets[key] = set
		u.keys = append(u.keys, key)
	}
	sort.Slice(u.keys, func(i, j int) bool {
		return lexLess(u.keyColumns(u.keys[i]), u.keyColumns(u.keys[j]))
	})
	return u
}

// lexLess reports whether a precedes b in lexicographic order. Both slices
// are expected to have equal length (they are always t-length here).
func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// keyColumns unpacks a key's column indices for this U's t. Nothing is
// cached; every call unpacks afresh.
func (u *uncovered) keyColumns(k Key) []int {
	return k.columns(u.t)
}

// covers returns every (key, tupleIndex) pair in U that the given row
// satisfies: for every column in the key, row[col] equals the tuple's value
// at that position.
func (u *uncovered) covers(r row) []coverHit {
	var hits []coverHit
	for _, key := range u.keys {
		set := u.sets[key]
		if len(set) == 0 {
			continue
		}
		cols := u.keyColumns(key)
		vals := make([]int, u.t)
		ok := true
		for i, c := range cols {
			if c >= len(r) || r[c] == DC {
				ok = false
				break
			}
			vals[i] = int(r[c])
		}
		if !ok {
			continue
		}
		idx := tupleIndex(vals, u.v)
		if _, present := set[idx]; present {
			hits = append(hits, coverHit{key: key, tuple: idx})
		}
	}
	return hits
}

type coverHit struct {
	key   Key
	tuple uint64
}

// remove deletes a single (key, tuple) pair from U, if present.
func (u *uncovered) remove(key Key, tuple uint64) {
	set := u.sets[key]
	if set == nil {
		return
	}
	delete(set, tuple)
}

// removeAll removes every hit produced by a prior covers() call.
func (u *uncovered) removeAll(hits []coverHit) {
	for _, h := range hits {
		u.remove(h.key, h.tuple)
	}
}

// purgeEmpty drops keys whose value-list has become empty.
func (u *uncovered) purgeEmpty() {
	kept := u.keys[:0]
	for _, key := range u.keys {
		if len(u.sets[key]) > 0 {
			kept = append(kept, key)
		} else {
			delete(u.sets, key)
		}
	}
	u.keys = kept
}

// empty reports whether any (key, tuple) pairs remain.
func (u *uncovered) empty() bool {
	for _, key := range u.keys {
		if len(u.sets[key]) > 0 {
			return false
		}
	}
	return true
}

// remaining iterates U in canonical lexicographic order: keys ordered by
// their underlying column-index tuple, then value-tuples within a key
// ordered lexicographically too -- not by the packed Key/tupleIndex integer,
// since tupleIndex's low-to-high place-value weighting does not preserve
// lexicographic order on the unpacked tuples. This order is load-bearing
// for vertical growth's output size (spec.md 4.D).
func (u *uncovered) remaining() []remainingEntry {
	var out []remainingEntry
	for _, key := range u.keys {
		set := u.sets[key]
		if len(set) == 0 {
			continue
		}
		idxs := make([]uint64, 0, len(set))
		for idx := range set {
			idxs = append(idxs, idx)
		}
		sort.Slice(idxs, func(i, j int) bool {
			return lexLess(unpackTuple(idxs[i], u.t, u.v), unpackTuple(idxs[j], u.t, u.v))
		})
		cols := u.keyColumns(key)
		for _, idx := range idxs {
			out = append(out, remainingEntry{
				key:    key,
				cols:   cols,
				values: unpackTuple(idx, u.t, u.v),
			})
		}
	}
	return out
}

type remainingEntry struct {
	key    Key
	cols   []int
	values []int
}
