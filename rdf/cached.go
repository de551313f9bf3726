package rdf

import "encoding/hex"

// Canonical wraps a dataset together with its precomputed canonical
// N-Quads text. All canonicalization work happens once, at construction;
// equality and digest lookups afterwards are O(1) string operations, which
// makes the wrapper suitable for bulk pairwise isomorphism comparison and
// as a hashing/signing choke point: everything that needs a stable byte
// form of the dataset should go through it.
type Canonical struct {
	dataset *Dataset
	text    string
	sum     string
}

// NewCanonical canonicalizes the dataset and returns the cached wrapper.
func NewCanonical(d *Dataset, opts ...Option) (*Canonical, error) {
	options := applyOptions(opts)
	hashFunc, err := newHashFunc(options.HashAlgorithm)
	if err != nil {
		return nil, err
	}
	text, err := Canonicalize(d, opts...)
	if err != nil {
		return nil, err
	}
	h := hashFunc()
	h.Write([]byte(text))
	return &Canonical{
		dataset: d,
		text:    text,
		sum:     hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// NewCanonicalGraph canonicalizes a graph as the default graph of a
// dataset with no named graphs.
func NewCanonicalGraph(g *Graph, opts ...Option) (*Canonical, error) {
	return NewCanonical(g.Dataset(), opts...)
}

// Dataset returns the wrapped input dataset.
func (c *Canonical) Dataset() *Dataset { return c.dataset }

// Text returns the canonical N-Quads text.
func (c *Canonical) Text() string { return c.text }

// Sum returns the hex digest of the canonical text, computed with the hash
// algorithm the canonicalization ran with.
func (c *Canonical) Sum() string { return c.sum }

// Equal reports whether both wrappers canonicalized isomorphic datasets.
// It compares canonical texts byte for byte.
func (c *Canonical) Equal(other *Canonical) bool {
	return other != nil && c.text == other.text
}
