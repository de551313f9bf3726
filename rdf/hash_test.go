package rdf

import (
	"errors"
	"testing"
)

func newTestState(t *testing.T, d *Dataset) *canonState {
	t.Helper()
	state, err := newCanonState(d, defaultOptions())
	if err != nil {
		t.Fatalf("unexpected state error: %v", err)
	}
	return state
}

func TestNewHashFuncUnsupported(t *testing.T) {
	_, err := newHashFunc("md5")
	if !errors.Is(err, ErrUnsupportedHashAlgorithm) {
		t.Fatalf("expected ErrUnsupportedHashAlgorithm, got %v", err)
	}
	if Code(err) != ErrCodeUnsupportedHashAlgorithm {
		t.Fatalf("unexpected code: %s", Code(err))
	}
}

func TestParseHashAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want HashAlgorithm
		ok   bool
	}{
		{"sha-256", HashSHA256, true},
		{"SHA256", HashSHA256, true},
		{" sha-384 ", HashSHA384, true},
		{"sha384", HashSHA384, true},
		{"md5", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseHashAlgorithm(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseHashAlgorithm(%q) = %q, %v", tc.in, got, ok)
		}
	}
}

func TestHashFirstDegreeIgnoresSurfaceLabels(t *testing.T) {
	build := func(label string) (*Dataset, BlankNode) {
		d := NewDataset()
		b := NewBlankNodeWithLabel(label)
		mustAdd(t, d, Quad{S: b, P: exIRI("name"), O: Literal{Lexical: "Alice"}})
		mustAdd(t, d, Quad{S: b, P: exIRI("age"), O: Literal{Lexical: "30"}})
		return d, b
	}

	d1, b1 := build("alice")
	d2, b2 := build("completely-different")

	h1 := newTestState(t, d1).hashFirstDegree(b1)
	h2 := newTestState(t, d2).hashFirstDegree(b2)
	if h1 != h2 {
		t.Fatal("first-degree hash must not depend on surface labels")
	}
}

func TestHashFirstDegreeDistinguishesPosition(t *testing.T) {
	asSubject := NewDataset()
	s := NewBlankNode()
	mustAdd(t, asSubject, Quad{S: s, P: exIRI("p"), O: exIRI("o")})

	asObject := NewDataset()
	o := NewBlankNode()
	mustAdd(t, asObject, Quad{S: exIRI("s"), P: exIRI("p"), O: o})

	hs := newTestState(t, asSubject).hashFirstDegree(s)
	ho := newTestState(t, asObject).hashFirstDegree(o)
	if hs == ho {
		t.Fatal("subject and object positions must hash differently")
	}
}

func TestHashFirstDegreeOtherBlankNodesCollapse(t *testing.T) {
	// Two datasets where the reference node is connected to structurally
	// different unresolved neighbors still produce identical first-degree
	// hashes: all other blank nodes collapse to one placeholder.
	d1 := NewDataset()
	ref1 := NewBlankNode()
	other1 := NewBlankNode()
	mustAdd(t, d1, Quad{S: ref1, P: exIRI("p"), O: other1})

	d2 := NewDataset()
	ref2 := NewBlankNode()
	other2 := NewBlankNode()
	mustAdd(t, d2, Quad{S: ref2, P: exIRI("p"), O: other2})
	mustAdd(t, d2, Quad{S: other2, P: exIRI("q"), O: Literal{Lexical: "x"}})

	h1 := newTestState(t, d1).hashFirstDegree(ref1)
	h2 := newTestState(t, d2).hashFirstDegree(ref2)
	if h1 != h2 {
		t.Fatal("neighbor structure beyond the incident quad must not affect the first-degree hash")
	}
}

func TestHashRelatedPrecedence(t *testing.T) {
	d := NewDataset()
	ref := NewBlankNode()
	related := NewBlankNode()
	q := Quad{S: ref, P: exIRI("p"), O: related}
	mustAdd(t, d, q)

	state := newTestState(t, d)
	trial := newIssuer("b")

	unresolved := state.hashRelated(related, q, trial, positionObject)

	trial.issue(related)
	withTrial := state.hashRelated(related, q, trial, positionObject)
	if withTrial == unresolved {
		t.Fatal("trial label must override the first-degree fallback")
	}

	state.canon.issue(related)
	withCanonical := state.hashRelated(related, q, trial, positionObject)
	if withCanonical == withTrial {
		t.Fatal("canonical label must override the trial label")
	}

	// Position is part of the hashed input.
	if state.hashRelated(related, q, trial, positionObject) == state.hashRelated(related, q, trial, positionGraph) {
		t.Fatal("position must affect the related hash")
	}
}
