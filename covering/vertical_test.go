package covering

import "testing"

func TestVerticalGrowthMinimalityLowerBound(t *testing.T) {
	u := newUncovered(2, 2, 4, 2)
	before := totalRemaining(u)
	rng := newTestRng(1)
	added := verticalGrowth(u, 4, rng)
	if len(added) > before {
		t.Fatalf("vertical growth added %d rows, more than %d uncovered entries", len(added), before)
	}
}

func TestVerticalGrowthFillsAllDontCares(t *testing.T) {
	u := newUncovered(2, 3, 4, 2)
	rng := newTestRng(2)
	added := verticalGrowth(u, 4, rng)
	for _, r := range added {
		if r.hasDC() {
			t.Fatal("row still contains DC after vertical growth fill")
		}
	}
}

func TestVerticalGrowthReusesCompatibleRows(t *testing.T) {
	// Two entries that touch disjoint columns should be absorbed into a
	// single row rather than creating two.
	u := &uncovered{t: 2, v: 2, sets: map[Key]tupleSet{}}
	k1 := makeKey([]int{0, 1})
	k2 := makeKey([]int{2, 3})
	u.sets[k1] = tupleSet{tupleIndex([]int{0, 0}, 2): {}}
	u.sets[k2] = tupleSet{tupleIndex([]int{1, 1}, 2): {}}
	u.keys = []Key{k1, k2}
	if k1 > k2 {
		u.keys = []Key{k2, k1}
	}

	rng := newTestRng(3)
	added := verticalGrowth(u, 4, rng)
	if len(added) != 1 {
		t.Fatalf("expected a single merged row, got %d", len(added))
	}
}
