package covering

import "fmt"

// Config holds the parameters of a covering-array construction request.
// Mirrors the teacher repo's Validate/WithDefaults convention.
type Config struct {
	// T is the interaction strength to guarantee coverage for.
	T int
	// K is the number of columns (parameters).
	K int
	// V is the alphabet size; every column value lies in [0, V).
	V int
	// Stride is the number of columns added per outer iteration. Stride 1
	// is classical IPOG; larger strides explore more columns per
	// horizontal-growth pass at the cost of more candidates per row.
	Stride int
}

// WithDefaults returns a copy of c with Stride defaulted to 1 when unset.
func (c Config) WithDefaults() Config {
	if c.Stride == 0 {
		c.Stride = 1
	}
	return c
}

// Validate checks the preconditions from spec.md section 4.E: t >= 1,
// k >= t, v >= 2, stride >= 1.
func (c Config) Validate() error {
	if c.T < 1 {
		return fmt.Errorf("%w: T must be at least 1, got %d", ErrInvalidParameters, c.T)
	}
	if c.K < c.T {
		return fmt.Errorf("%w: K must be at least T (%d), got %d", ErrInvalidParameters, c.T, c.K)
	}
	if c.V < 2 {
		return fmt.Errorf("%w: V must be at least 2, got %d", ErrInvalidParameters, c.V)
	}
	if c.Stride < 1 {
		return fmt.Errorf("%w: Stride must be at least 1, got %d", ErrInvalidParameters, c.Stride)
	}
	return nil
}

// Array is the finished, DC-free covering array returned by Build.
type Array struct {
	T, K, V int
	Rows    [][]int

	// VerticalRowsAdded is the total number of rows vertical growth
	// appended across every stride of this build (0 if horizontal growth
	// alone achieved coverage at every stride).
	VerticalRowsAdded int

	// UncoveredBeforeVertical is the sum, over every stride, of the
	// number of interaction tuples still uncovered immediately before
	// vertical growth ran for that stride.
	UncoveredBeforeVertical int
}

// NumRows returns the number of rows (N) in the array.
func (a *Array) NumRows() int { return len(a.Rows) }

// Build constructs a t-way covering array for cfg using rng for the initial
// seed shuffle and any don't-care fills, following the IPOG strategy of
// spec.md section 4.E: an exhaustive seed over the first T columns, then an
// outer loop that widens the array Stride columns at a time via horizontal
// growth followed by vertical growth.
func Build(cfg Config, rng Rand) (*Array, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t, k, v, stride := cfg.T, cfg.K, cfg.V, cfg.Stride

	// Seed: every combination of values of the first t columns, shuffled.
	seedTuples := allTuples(t, v)
	rows := make([]row, len(seedTuples))
	for i, tup := range seedTuples {
		r := make(row, t)
		for j, val := range tup {
			r[j] = Symbol(val)
		}
		rows[i] = r
	}
	rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })

	var verticalAdded, uncoveredSeen int

	width := t
	for width < k {
		g := stride
		if width+g > k {
			g = k - width
		}

		newWidth := width + g
		u := newUncovered(t, v, newWidth, width)

		horizontalGrowth(rows, v, g, u)
		width = newWidth

		u.purgeEmpty()
		if !u.empty() {
			for _, key := range u.keys {
				uncoveredSeen += len(u.sets[key])
			}
			extra := verticalGrowth(u, width, rng)
			rows = append(rows, extra...)
			verticalAdded += len(extra)
		}
	}

	out := make([][]int, len(rows))
	for i, r := range rows {
		out[i] = toIntRow(r)
	}
	return &Array{
		T: t, K: k, V: v, Rows: out,
		VerticalRowsAdded:       verticalAdded,
		UncoveredBeforeVertical: uncoveredSeen,
	}, nil
}
