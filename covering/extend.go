package covering

// extendCandidates enumerates every extension of row by g new symbols from
// [0, v), in lexicographic order of the appended block (spec.md 4.B).
func extendCandidates(r row, v, g int) []row {
	blocks := allTuples(g, v)
	out := make([]row, len(blocks))
	for i, block := range blocks {
		c := make(row, 0, len(r)+g)
		c = append(c, r...)
		for _, val := range block {
			c = append(c, Symbol(val))
		}
		out[i] = c
	}
	return out
}

// bestExtension scores every candidate against u and returns the one that
// covers the most still-uncovered interactions. Ties are broken in favor of
// the *last* candidate encountered in enumeration order -- this mirrors the
// reference implementation's ">=" comparison and is load-bearing for
// reproducibility under a fixed seed (spec.md 4.B).
func bestExtension(candidates []row, u *uncovered) (row, []coverHit) {
	var best row
	var bestHits []coverHit
	bestScore := -1
	for _, c := range candidates {
		hits := u.covers(c)
		if len(hits) >= bestScore {
			bestScore = len(hits)
			best = c
			bestHits = hits
		}
	}
	return best, bestHits
}
