package rdf

import (
	"fmt"
	"sync/atomic"
)

// Datatype IRIs with special treatment in the canonical form.
const (
	// XSDString is the default literal datatype; it is never written
	// explicitly in canonical N-Quads.
	XSDString = "http://www.w3.org/2001/XMLSchema#string"
	// RDFLangString is the implicit datatype of language-tagged literals.
	RDFLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

var blankNodeSequence atomic.Uint64

// BlankNode represents an RDF blank node.
//
// Identity is by allocation, not by label: every call to NewBlankNode or
// NewBlankNodeWithLabel mints a distinct node, and two nodes compare equal
// only if they originate from the same call. The surface label, if any, is
// diagnostic metadata carried for cross-referencing parser output; it never
// participates in equality or canonicalization.
type BlankNode struct {
	id    uint64
	label string
}

// NewBlankNode mints a fresh blank node with no surface label.
func NewBlankNode() BlankNode {
	return BlankNode{id: blankNodeSequence.Add(1)}
}

// NewBlankNodeWithLabel mints a fresh blank node carrying a surface label.
// Nodes minted with the same label remain distinct.
func NewBlankNodeWithLabel(label string) BlankNode {
	return BlankNode{id: blankNodeSequence.Add(1), label: label}
}

// Label returns the surface label, or "" if none was assigned.
func (b BlankNode) Label() string { return b.label }

// IsZero reports whether b is the zero value rather than a minted node.
func (b BlankNode) IsZero() bool { return b.id == 0 }

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node label prefixed with "_:", falling back to
// a handle-derived placeholder for unlabeled nodes.
func (b BlankNode) String() string {
	if b.label != "" {
		return "_:" + b.label
	}
	return fmt.Sprintf("_:n%d", b.id)
}

// Literal represents an RDF literal.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI. A zero value means xsd:string.
	Datatype IRI
	// Lang is the language tag, if any. A non-empty tag implies the
	// rdf:langString datatype and excludes any other Datatype value.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype.Value != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// Triple is an RDF triple.
type Triple struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
}

// Quad is an RDF quad (triple + optional graph name).
type Quad struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
	// G is the graph name, or nil for the default graph.
	G Term
}

// IsZero reports whether the quad has no subject/predicate/object.
func (q Quad) IsZero() bool {
	return q.S == nil && q.P.Value == "" && q.O == nil && q.G == nil
}

// ToTriple extracts the triple from a quad (ignores graph).
func (q Quad) ToTriple() Triple {
	return Triple{S: q.S, P: q.P, O: q.O}
}

// InDefaultGraph reports whether the quad is in the default graph (no named graph).
func (q Quad) InDefaultGraph() bool {
	return q.G == nil
}

// ToQuad converts a triple to a quad in the default graph.
func (t Triple) ToQuad() Quad {
	return Quad{S: t.S, P: t.P, O: t.O, G: nil}
}

// ToQuadInGraph converts a triple to a quad in a named graph.
func (t Triple) ToQuadInGraph(graph Term) Quad {
	return Quad{S: t.S, P: t.P, O: t.O, G: graph}
}
