package rdf

import (
	"fmt"
	"sort"
	"strings"
)

// ndegreeResult carries the refined hash for one blank node together with
// the trial issuer state of the winning exploration branch.
type ndegreeResult struct {
	hash   string
	issuer *issuer
}

// hashNDegree refines the fingerprint of b by folding in the (possibly
// still tentative) identifiers of the blank nodes reachable through its
// quads. Related nodes are grouped by their related-hash; singleton groups
// resolve deterministically, while larger groups are disambiguated by
// trying every permutation under a forked trial issuer and keeping the
// lexicographically smallest data path.
//
// The permutation search is exponential in group size, so the configured
// ceiling is checked before enumeration begins; exceeding it returns
// ErrComplexityExceeded instead of unbounded work.
func (s *canonState) hashNDegree(b BlankNode, trial *issuer) (ndegreeResult, error) {
	groups := make(map[string][]BlankNode)
	for _, q := range s.dataset.quadsWith(b) {
		s.collectRelated(groups, q, b, trial)
	}

	hashes := make([]string, 0, len(groups))
	for h := range groups {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	var data strings.Builder
	for _, relatedHash := range hashes {
		data.WriteString(relatedHash)
		group := groups[relatedHash]
		if len(group) > s.opts.MaxTiedGroupSize {
			return ndegreeResult{}, fmt.Errorf("%w: related group of size %d with ceiling %d",
				ErrComplexityExceeded, len(group), s.opts.MaxTiedGroupSize)
		}

		var chosenPath string
		var chosenIssuer *issuer
		err := forEachPermutation(group, func(perm []BlankNode) error {
			branch := trial.clone()
			var path strings.Builder
			var recursion []BlankNode
			abandoned := false

			for _, node := range perm {
				if s.canon.has(node) {
					path.WriteString("_:" + s.canon.lookup(node))
				} else {
					if !branch.has(node) {
						recursion = append(recursion, node)
					}
					path.WriteString("_:" + branch.issue(node))
				}
				if losingPath(path.String(), chosenPath) {
					abandoned = true
					break
				}
			}

			if !abandoned {
				for _, node := range recursion {
					result, err := s.hashNDegree(node, branch)
					if err != nil {
						return err
					}
					path.WriteString("_:" + branch.issue(node))
					path.WriteString("<" + result.hash + ">")
					branch = result.issuer
					if losingPath(path.String(), chosenPath) {
						abandoned = true
						break
					}
				}
			}

			if !abandoned && (chosenPath == "" || path.String() < chosenPath) {
				chosenPath = path.String()
				chosenIssuer = branch
			}
			return nil
		})
		if err != nil {
			return ndegreeResult{}, err
		}

		data.WriteString(chosenPath)
		trial = chosenIssuer
	}

	return ndegreeResult{hash: s.hashString(data.String()), issuer: trial}, nil
}

// collectRelated records, for every blank node other than ref appearing in
// q, its related-hash keyed group. A node related through several quads or
// positions appears once per occurrence; permutation search treats those
// occurrences as distinct positions.
func (s *canonState) collectRelated(groups map[string][]BlankNode, q Quad, ref BlankNode, trial *issuer) {
	if n, ok := q.S.(BlankNode); ok && n != ref {
		h := s.hashRelated(n, q, trial, positionSubject)
		groups[h] = append(groups[h], n)
	}
	if n, ok := q.O.(BlankNode); ok && n != ref {
		h := s.hashRelated(n, q, trial, positionObject)
		groups[h] = append(groups[h], n)
	}
	if n, ok := q.G.(BlankNode); ok && n != ref {
		h := s.hashRelated(n, q, trial, positionGraph)
		groups[h] = append(groups[h], n)
	}
}

// losingPath reports whether path can no longer beat the chosen path, so
// the current permutation may be abandoned early.
func losingPath(path, chosen string) bool {
	return chosen != "" && len(path) >= len(chosen) && path > chosen
}
