package rdf

import "fmt"

// Graph is a duplicate-free collection of triples in insertion order.
type Graph struct {
	triples []Triple
	seen    map[Triple]struct{}
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{seen: make(map[Triple]struct{})}
}

// Add inserts a triple. Duplicates are collapsed silently; a triple that
// violates term position constraints returns ErrMalformedDataset.
func (g *Graph) Add(t Triple) error {
	if err := validateQuad(t.ToQuad()); err != nil {
		return err
	}
	t.O = normalizeTerm(t.O)
	if _, ok := g.seen[t]; ok {
		return nil
	}
	g.seen[t] = struct{}{}
	g.triples = append(g.triples, t)
	return nil
}

// Len returns the number of distinct triples.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns the triples in insertion order. The slice is a copy.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Dataset returns a new dataset holding the graph's triples as its default
// graph, with no named graphs.
func (g *Graph) Dataset() *Dataset {
	d := NewDataset()
	for _, t := range g.triples {
		// Triples were validated on insertion.
		_ = d.Add(t.ToQuad())
	}
	return d
}

// Dataset is a duplicate-free collection of quads: one default graph plus
// any number of named graphs. It maintains an index from each blank node to
// the quads it participates in, which drives blank node hashing.
type Dataset struct {
	quads      []Quad
	seen       map[Quad]struct{}
	blankIndex map[BlankNode][]int
	blankOrder []BlankNode
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		seen:       make(map[Quad]struct{}),
		blankIndex: make(map[BlankNode][]int),
	}
}

// DatasetOf builds a dataset from quads, collapsing duplicates.
func DatasetOf(quads ...Quad) (*Dataset, error) {
	d := NewDataset()
	for _, q := range quads {
		if err := d.Add(q); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Add inserts a quad. Duplicates are collapsed silently; a quad that
// violates term position constraints returns ErrMalformedDataset.
func (d *Dataset) Add(q Quad) error {
	if err := validateQuad(q); err != nil {
		return err
	}
	q.O = normalizeTerm(q.O)
	if _, ok := d.seen[q]; ok {
		return nil
	}
	d.seen[q] = struct{}{}
	idx := len(d.quads)
	d.quads = append(d.quads, q)
	d.index(q.S, idx)
	d.index(q.O, idx)
	d.index(q.G, idx)
	return nil
}

// AddTriple inserts a triple into the default graph.
func (d *Dataset) AddTriple(t Triple) error {
	return d.Add(t.ToQuad())
}

func (d *Dataset) index(term Term, idx int) {
	b, ok := term.(BlankNode)
	if !ok {
		return
	}
	if _, known := d.blankIndex[b]; !known {
		d.blankOrder = append(d.blankOrder, b)
	}
	positions := d.blankIndex[b]
	if n := len(positions); n > 0 && positions[n-1] == idx {
		// Same quad references the node in more than one position.
		return
	}
	d.blankIndex[b] = append(positions, idx)
}

// Len returns the number of distinct quads.
func (d *Dataset) Len() int { return len(d.quads) }

// Quads returns the quads in insertion order. The slice is a copy.
func (d *Dataset) Quads() []Quad {
	out := make([]Quad, len(d.quads))
	copy(out, d.quads)
	return out
}

// BlankNodes returns the distinct blank nodes referenced by any quad, in
// first-appearance order.
func (d *Dataset) BlankNodes() []BlankNode {
	out := make([]BlankNode, len(d.blankOrder))
	copy(out, d.blankOrder)
	return out
}

// quadsWith returns the quads in which b participates, in insertion order.
func (d *Dataset) quadsWith(b BlankNode) []Quad {
	positions := d.blankIndex[b]
	out := make([]Quad, len(positions))
	for i, idx := range positions {
		out[i] = d.quads[idx]
	}
	return out
}

// DefaultGraph returns the triples of the default graph as a Graph.
func (d *Dataset) DefaultGraph() *Graph {
	g := NewGraph()
	for _, q := range d.quads {
		if q.InDefaultGraph() {
			_ = g.Add(q.ToTriple())
		}
	}
	return g
}

// GraphNames returns the distinct named graph terms in first-appearance order.
func (d *Dataset) GraphNames() []Term {
	seen := make(map[Term]struct{})
	var names []Term
	for _, q := range d.quads {
		if q.G == nil {
			continue
		}
		if _, ok := seen[q.G]; ok {
			continue
		}
		seen[q.G] = struct{}{}
		names = append(names, q.G)
	}
	return names
}

// NamedGraph returns the triples of the named graph identified by name.
// An unknown name yields an empty graph.
func (d *Dataset) NamedGraph(name Term) *Graph {
	g := NewGraph()
	for _, q := range d.quads {
		if q.G == name {
			_ = g.Add(q.ToTriple())
		}
	}
	return g
}

func validateQuad(q Quad) error {
	switch q.S.(type) {
	case IRI, BlankNode:
	case nil:
		return fmt.Errorf("%w: missing subject", ErrMalformedDataset)
	default:
		return fmt.Errorf("%w: %s subject", ErrMalformedDataset, termKindName(q.S))
	}
	if q.P.Value == "" {
		return fmt.Errorf("%w: missing predicate", ErrMalformedDataset)
	}
	switch o := q.O.(type) {
	case IRI, BlankNode:
	case Literal:
		if err := validateLiteral(o); err != nil {
			return err
		}
	case nil:
		return fmt.Errorf("%w: missing object", ErrMalformedDataset)
	default:
		return fmt.Errorf("%w: unsupported object term", ErrMalformedDataset)
	}
	switch q.G.(type) {
	case nil, IRI, BlankNode:
	default:
		return fmt.Errorf("%w: %s graph name", ErrMalformedDataset, termKindName(q.G))
	}
	return nil
}

func validateLiteral(l Literal) error {
	if l.Lang != "" && l.Datatype.Value != "" && l.Datatype.Value != RDFLangString {
		return fmt.Errorf("%w: literal with both language tag and datatype %s", ErrMalformedDataset, l.Datatype.Value)
	}
	if l.Lang == "" && l.Datatype.Value == RDFLangString {
		return fmt.Errorf("%w: rdf:langString literal without language tag", ErrMalformedDataset)
	}
	return nil
}

// normalizeTerm collapses equivalent literal spellings to one stored form
// so set semantics hold across them: an explicit xsd:string datatype and
// the zero datatype denote the same literal, as do a language-tagged
// literal with and without its implicit rdf:langString datatype. Only
// objects can be literals, so callers normalize that position alone.
func normalizeTerm(term Term) Term {
	l, ok := term.(Literal)
	if !ok {
		return term
	}
	switch {
	case l.Lang == "" && l.Datatype.Value == XSDString:
		l.Datatype = IRI{}
	case l.Lang != "" && l.Datatype.Value == RDFLangString:
		l.Datatype = IRI{}
	}
	return l
}

func termKindName(term Term) string {
	switch term.(type) {
	case IRI:
		return "IRI"
	case BlankNode:
		return "blank node"
	case Literal:
		return "literal"
	default:
		return "unsupported"
	}
}
