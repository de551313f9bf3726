package rdf

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"
	"strings"
)

func newHashFunc(alg HashAlgorithm) (func() hash.Hash, error) {
	switch alg {
	case HashSHA256:
		return sha256.New, nil
	case HashSHA384:
		return sha512.New384, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHashAlgorithm, alg)
	}
}

// Quad positions a related blank node can occupy relative to a reference
// node. Predicates are always IRIs and never participate.
const (
	positionSubject = "s"
	positionObject  = "o"
	positionGraph   = "g"
)

// canonState is the scratch state for one canonicalization run: the input
// dataset, resolved options, per-node first-degree hash cache and the
// committed canonical issuer. It is created at the start of a run and
// discarded at the end, never shared across runs.
type canonState struct {
	dataset     *Dataset
	opts        Options
	newHash     func() hash.Hash
	canon       *issuer
	firstDegree map[BlankNode]string
}

func newCanonState(d *Dataset, opts Options) (*canonState, error) {
	hashFunc, err := newHashFunc(opts.HashAlgorithm)
	if err != nil {
		return nil, err
	}
	return &canonState{
		dataset:     d,
		opts:        opts,
		newHash:     hashFunc,
		canon:       newIssuer(opts.LabelPrefix),
		firstDegree: make(map[BlankNode]string),
	}, nil
}

func (s *canonState) hashString(data string) string {
	h := s.newHash()
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// hashFirstDegree fingerprints b from its directly incident quads alone.
// Each quad is serialized with b as the fixed token "_:a" and every other
// blank node as "_:z"; the sorted serializations are concatenated and
// hashed. The placeholder split distinguishes the reference node's position
// without depending on any unresolved identity.
func (s *canonState) hashFirstDegree(b BlankNode) string {
	if h, ok := s.firstDegree[b]; ok {
		return h
	}
	quads := s.dataset.quadsWith(b)
	lines := make([]string, 0, len(quads))
	for _, q := range quads {
		lines = append(lines, renderQuad(q, func(n BlankNode) string {
			if n == b {
				return "_:a"
			}
			return "_:z"
		}))
	}
	sort.Strings(lines)
	h := s.hashString(strings.Join(lines, ""))
	s.firstDegree[b] = h
	return h
}

// hashRelated fingerprints a blank node related to the reference node
// through q at the given position. A committed canonical label wins over a
// trial label from the in-progress issuer, which in turn wins over the
// first-degree fallback; this lets partially resolved neighborhoods inform
// the current computation without circularity.
func (s *canonState) hashRelated(related BlankNode, q Quad, trial *issuer, position string) string {
	var identifier string
	switch {
	case s.canon.has(related):
		identifier = "_:" + s.canon.lookup(related)
	case trial.has(related):
		identifier = "_:" + trial.lookup(related)
	default:
		identifier = s.hashFirstDegree(related)
	}
	input := position
	if position != positionGraph {
		input += renderIRI(q.P)
	}
	input += identifier
	return s.hashString(input)
}
