package rdf

// IsIsomorphic reports whether two datasets are structurally identical up
// to blank node relabeling. Cheap structural comparisons reject obvious
// mismatches first; otherwise both datasets are canonicalized independently
// and their canonical N-Quads texts compared for byte equality. Options
// apply to both canonicalizations.
//
// Canonicalization failures (for example ErrComplexityExceeded) propagate
// rather than being reported as non-isomorphism.
func IsIsomorphic(a, b *Dataset, opts ...Option) (bool, error) {
	if a.Len() != b.Len() {
		return false, nil
	}
	if !equalCounts(predicateCounts(a), predicateCounts(b)) {
		return false, nil
	}
	if !equalCounts(groundTermCounts(a), groundTermCounts(b)) {
		return false, nil
	}
	canonA, err := Canonicalize(a, opts...)
	if err != nil {
		return false, err
	}
	canonB, err := Canonicalize(b, opts...)
	if err != nil {
		return false, err
	}
	return canonA == canonB, nil
}

func predicateCounts(d *Dataset) map[string]int {
	counts := make(map[string]int)
	for _, q := range d.Quads() {
		counts[q.P.Value]++
	}
	return counts
}

// groundTermCounts tallies the non-blank-node terms of every quad by their
// rendered form. Blank nodes are skipped: their labels carry no identity.
func groundTermCounts(d *Dataset) map[string]int {
	counts := make(map[string]int)
	tally := func(position string, term Term) {
		if term == nil {
			return
		}
		if _, blank := term.(BlankNode); blank {
			return
		}
		counts[position+renderTerm(term, renderBlankLabel)]++
	}
	for _, q := range d.Quads() {
		tally(positionSubject, q.S)
		tally(positionObject, q.O)
		tally(positionGraph, q.G)
	}
	return counts
}

func equalCounts(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for key, count := range a {
		if b[key] != count {
			return false
		}
	}
	return true
}
