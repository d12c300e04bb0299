package covering

// horizontalGrowth widens every existing row by g symbols in place, in
// strict row-index order: the candidate scores for row i are computed
// against the U state left behind by rows 0..i-1 (spec.md 4.C). This
// sequential dependency is why horizontal growth is never parallelized.
func horizontalGrowth(rows []row, v, g int, u *uncovered) {
	for i := range rows {
		candidates := extendCandidates(rows[i], v, g)
		best, hits := bestExtension(candidates, u)
		rows[i] = best
		u.removeAll(hits)
	}
}
