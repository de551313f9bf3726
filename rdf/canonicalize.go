package rdf

import (
	"fmt"
	"sort"
)

// CanonicalizedDataset is the result of ToCanonicalizedRDFDataset.
type CanonicalizedDataset struct {
	// Dataset is the rewritten dataset: every blank node of the input has
	// been replaced by a fresh blank node whose surface label is the
	// canonical identifier.
	Dataset *Dataset

	// IssuedIdentifiers maps every blank node of the input dataset to its
	// canonical label. It is empty for inputs without blank nodes.
	IssuedIdentifiers map[BlankNode]string

	// IssuedOrder lists the input blank nodes in label issuance order, so
	// IssuedIdentifiers[IssuedOrder[n]] == prefix + "n".
	IssuedOrder []BlankNode
}

// Label returns the canonical label issued to b, or "" if b was not part of
// the input dataset.
func (c *CanonicalizedDataset) Label(b BlankNode) string {
	return c.IssuedIdentifiers[b]
}

// Canonicalize assigns every blank node of the dataset a deterministic
// label based purely on its structural role and returns the canonical
// N-Quads serialization. Structurally identical datasets yield byte-equal
// output regardless of input blank node labels or quad order.
func Canonicalize(d *Dataset, opts ...Option) (string, error) {
	result, err := ToCanonicalizedRDFDataset(d, opts...)
	if err != nil {
		return "", err
	}
	return serializeCanonical(result.Dataset), nil
}

// CanonicalizeGraph canonicalizes a graph as the default graph of a dataset
// with no named graphs.
func CanonicalizeGraph(g *Graph, opts ...Option) (string, error) {
	return Canonicalize(g.Dataset(), opts...)
}

// ToCanonicalizedRDFDataset runs the canonicalization algorithm and exposes
// the issued identifier map alongside the rewritten dataset. Failures are
// atomic: on error no partial identifier map or dataset is returned.
func ToCanonicalizedRDFDataset(d *Dataset, opts ...Option) (*CanonicalizedDataset, error) {
	options := applyOptions(opts)
	state, err := newCanonState(d, options)
	if err != nil {
		return nil, err
	}

	// First-degree pass: fingerprint every blank node from its incident
	// quads and group nodes by hash.
	groups := make(map[string][]BlankNode)
	for _, b := range d.BlankNodes() {
		h := state.hashFirstDegree(b)
		groups[h] = append(groups[h], b)
	}
	hashes := make([]string, 0, len(groups))
	for h := range groups {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	// Nodes with a unique fingerprint get their canonical label
	// immediately, in ascending hash order.
	for _, h := range hashes {
		if group := groups[h]; len(group) == 1 {
			state.canon.issue(group[0])
		}
	}

	// Tied fingerprints require N-degree resolution. Groups are processed
	// in ascending hash order, and each group's winning labels are
	// committed before the next group starts; this ordering is part of the
	// algorithm's deterministic contract.
	for _, h := range hashes {
		group := groups[h]
		if len(group) < 2 {
			continue
		}
		if len(group) > options.MaxTiedGroupSize {
			return nil, fmt.Errorf("%w: tied group of size %d with ceiling %d",
				ErrComplexityExceeded, len(group), options.MaxTiedGroupSize)
		}
		results := make([]ndegreeResult, 0, len(group))
		for _, b := range group {
			if state.canon.has(b) {
				continue
			}
			trial := newIssuer("b")
			trial.issue(b)
			result, err := state.hashNDegree(b, trial)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}
		sort.Slice(results, func(i, j int) bool { return results[i].hash < results[j].hash })
		for _, result := range results {
			for _, b := range result.issuer.order {
				state.canon.issue(b)
			}
		}
	}

	rewritten, err := rewriteDataset(d, state.canon)
	if err != nil {
		return nil, err
	}

	issued := make(map[BlankNode]string, len(state.canon.issued))
	for b, label := range state.canon.issued {
		issued[b] = label
	}
	order := make([]BlankNode, len(state.canon.order))
	copy(order, state.canon.order)

	return &CanonicalizedDataset{
		Dataset:           rewritten,
		IssuedIdentifiers: issued,
		IssuedOrder:       order,
	}, nil
}

// rewriteDataset builds a new dataset with every blank node replaced by a
// freshly minted node labeled with its canonical identifier. Quads are
// inserted in canonical line order.
func rewriteDataset(d *Dataset, canon *issuer) (*Dataset, error) {
	replacement := make(map[BlankNode]BlankNode, len(canon.issued))
	for b, label := range canon.issued {
		replacement[b] = NewBlankNodeWithLabel(label)
	}
	swap := func(term Term) Term {
		if b, ok := term.(BlankNode); ok {
			return replacement[b]
		}
		return term
	}

	quads := make([]Quad, 0, d.Len())
	for _, q := range d.Quads() {
		quads = append(quads, Quad{S: swap(q.S), P: q.P, O: swap(q.O), G: swap(q.G)})
	}
	sort.Slice(quads, func(i, j int) bool {
		return renderQuad(quads[i], renderBlankLabel) < renderQuad(quads[j], renderBlankLabel)
	})

	out := NewDataset()
	for _, q := range quads {
		if err := out.Add(q); err != nil {
			return nil, err
		}
	}
	return out, nil
}
