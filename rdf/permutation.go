package rdf

import "slices"

// forEachPermutation visits every ordering of items exactly once using
// Heap's algorithm. Elements are treated as positions, so duplicate values
// are permuted as distinct entries. For an empty input the visitor runs
// once with an empty slice.
//
// The slice passed to visit is reused between calls and must not be
// retained. A non-nil error from visit stops enumeration and is returned.
func forEachPermutation(items []BlankNode, visit func([]BlankNode) error) error {
	perm := slices.Clone(items)
	if err := visit(perm); err != nil {
		return err
	}
	n := len(perm)
	state := make([]int, n)
	for i := 0; i < n; {
		if state[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[state[i]], perm[i] = perm[i], perm[state[i]]
			}
			if err := visit(perm); err != nil {
				return err
			}
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
	return nil
}
