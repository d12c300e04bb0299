package covering

import "testing"

func TestExtendCandidatesOrderAndSize(t *testing.T) {
	r := row{0, 1}
	cands := extendCandidates(r, 2, 2)
	if len(cands) != 4 { // v^g = 2^2
		t.Fatalf("len(candidates) = %d, want 4", len(cands))
	}
	want := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, c := range cands {
		got := []int{int(c[2]), int(c[3])}
		if got[0] != want[i][0] || got[1] != want[i][1] {
			t.Errorf("candidate %d appended block = %v, want %v", i, got, want[i])
		}
	}
}

func TestBestExtensionTieBreaksLast(t *testing.T) {
	// Construct U so that two candidates tie on score; the later one in
	// enumeration order must win (spec.md 4.B).
	u := newUncovered(1, 2, 1, 0)
	candidates := []row{{0}, {1}}
	best, _ := bestExtension(candidates, u)
	if int(best[0]) != 1 {
		t.Fatalf("tie-break chose %v, want the last candidate (value 1)", best)
	}
}
