package covering

import (
	"math/rand"
	"testing"
)

func newTestRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestBuildInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"t too small", Config{T: 0, K: 5, V: 2, Stride: 1}},
		{"k less than t", Config{T: 3, K: 2, V: 2, Stride: 1}},
		{"v too small", Config{T: 2, K: 5, V: 1, Stride: 1}},
		{"negative stride", Config{T: 2, K: 5, V: 2, Stride: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Build(tc.cfg, newTestRng(1)); err == nil {
				t.Errorf("Build(%+v) = nil error, want error", tc.cfg)
			}
		})
	}
}

func TestBuildCoverageSmall(t *testing.T) {
	cfg := Config{T: 2, K: 3, V: 2, Stride: 1}
	a, err := Build(cfg, newTestRng(1))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !Verify(a) {
		t.Fatal("Verify = false, want true")
	}
	if n := a.NumRows(); n < 4 || n > 6 {
		t.Errorf("NumRows = %d, want in [4,6]", n)
	}
}

func TestBuildShapeNoDontCares(t *testing.T) {
	cfg := Config{T: 2, K: 6, V: 3, Stride: 2}
	a, err := Build(cfg, newTestRng(7))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for _, r := range a.Rows {
		if len(r) != cfg.K {
			t.Fatalf("row width = %d, want %d", len(r), cfg.K)
		}
		for _, v := range r {
			if v < 0 || v >= cfg.V {
				t.Fatalf("cell value %d out of range [0,%d)", v, cfg.V)
			}
		}
	}
}

func TestBuildSeedPreservationWhenKEqualsT(t *testing.T) {
	cfg := Config{T: 3, K: 3, V: 2, Stride: 1}
	a, err := Build(cfg, newTestRng(42))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if a.NumRows() != 8 { // v^t = 2^3
		t.Fatalf("NumRows = %d, want 8", a.NumRows())
	}

	seen := make(map[[3]int]bool)
	for _, r := range a.Rows {
		seen[[3]int{r[0], r[1], r[2]}] = true
	}
	for _, tup := range allTuples(3, 2) {
		key := [3]int{tup[0], tup[1], tup[2]}
		if !seen[key] {
			t.Errorf("missing tuple %v from seed-only array", tup)
		}
	}
	if !Verify(a) {
		t.Fatal("Verify = false, want true")
	}
}

func TestBuildDeterministicWithFixedSeed(t *testing.T) {
	cfg := Config{T: 2, K: 8, V: 2, Stride: 2}
	a1, err := Build(cfg, newTestRng(999))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	a2, err := Build(cfg, newTestRng(999))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(a1.Rows) != len(a2.Rows) {
		t.Fatalf("row counts differ: %d vs %d", len(a1.Rows), len(a2.Rows))
	}
	for i := range a1.Rows {
		for j := range a1.Rows[i] {
			if a1.Rows[i][j] != a2.Rows[i][j] {
				t.Fatalf("row %d differs at col %d: %d vs %d", i, j, a1.Rows[i][j], a2.Rows[i][j])
			}
		}
	}
}

func TestBuildStrideInvariance(t *testing.T) {
	for _, stride := range []int{1, 2, 3, 4, 5, 6, 8, 12} {
		stride := stride
		t.Run("", func(t *testing.T) {
			cfg := Config{T: 2, K: 14, V: 2, Stride: stride}
			a, err := Build(cfg, newTestRng(3))
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if !Verify(a) {
				t.Fatalf("Verify = false for stride %d", stride)
			}
		})
	}
}

func TestBuildThreeWayFourColumns(t *testing.T) {
	cfg := Config{T: 3, K: 4, V: 2, Stride: 1}
	a, err := Build(cfg, newTestRng(5))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !Verify(a) {
		t.Fatal("Verify = false, want true")
	}
	if a.NumRows() > 12 {
		t.Errorf("NumRows = %d, want <= 12", a.NumRows())
	}
}

func TestBuildMeanSizeRegression(t *testing.T) {
	// build(t=2, k=10, v=2, stride=1) averaged over many seeded runs should
	// stay at or below 15 rows; a higher mean counts as a size regression.
	const iterations = 200 // trimmed from the spec's 10000 for test speed
	total := 0
	for i := 0; i < iterations; i++ {
		a, err := Build(Config{T: 2, K: 10, V: 2, Stride: 1}, newTestRng(int64(i)))
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		if !Verify(a) {
			t.Fatalf("Verify failed on iteration %d", i)
		}
		total += a.NumRows()
	}
	mean := float64(total) / float64(iterations)
	if mean > 15 {
		t.Errorf("mean N = %.2f, want <= 15 (regression threshold)", mean)
	}
}

func TestBuildLargerStrideDoesNotRegressCoverage(t *testing.T) {
	a1, err := Build(Config{T: 2, K: 10, V: 3, Stride: 1}, newTestRng(11))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	a2, err := Build(Config{T: 2, K: 10, V: 3, Stride: 2}, newTestRng(11))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !Verify(a1) || !Verify(a2) {
		t.Fatal("both strides must verify")
	}
}
