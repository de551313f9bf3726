package rdf

import (
	"testing"

	ld "github.com/piprate/json-gold/ld"
)

// The document is in expanded JSON-LD form so no remote context fetch is
// required.
const peopleJSONLD = `[
  {
    "@id": "_:alice",
    "http://example.org/name": [{"@value": "Alice"}],
    "http://example.org/knows": [{"@id": "_:bob"}]
  },
  {
    "@id": "_:bob",
    "http://example.org/name": [{"@value": "Bob"}]
  }
]`

func TestDecodeJSONLDExpandedDocument(t *testing.T) {
	d, err := DecodeJSONLD([]byte(peopleJSONLD), JSONLDOptions{})
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("expected 3 quads, got %d", d.Len())
	}
	if got := len(d.BlankNodes()); got != 2 {
		t.Fatalf("expected 2 blank nodes, got %d", got)
	}

	// The decoded dataset canonicalizes identically to a hand-built
	// structural copy.
	want := mustCanonicalize(t, buildPeople(t, "alice", "bob", false))
	if got := mustCanonicalize(t, d); got != want {
		t.Fatalf("canonical mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestDecodeJSONLDInvalidJSON(t *testing.T) {
	if _, err := DecodeJSONLD([]byte("{not json"), JSONLDOptions{}); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestFromJSONGoldNil(t *testing.T) {
	d, err := FromJSONGold(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Len() != 0 {
		t.Fatalf("expected empty dataset, got %d quads", d.Len())
	}
}

func TestFromJSONGoldSharedBlankNodeLabels(t *testing.T) {
	src := ld.NewRDFDataset()
	src.Graphs["@default"] = []*ld.Quad{
		ld.NewQuad(ld.NewBlankNode("_:b0"), ld.NewIRI("http://example.org/p"), ld.NewBlankNode("_:b1"), ""),
		ld.NewQuad(ld.NewBlankNode("_:b1"), ld.NewIRI("http://example.org/p"), ld.NewBlankNode("_:b0"), ""),
	}

	d, err := FromJSONGold(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 quads, got %d", d.Len())
	}
	nodes := d.BlankNodes()
	if len(nodes) != 2 {
		t.Fatalf("identical source labels must map to one node each: got %d nodes", len(nodes))
	}
	for _, b := range nodes {
		if b.Label() != "b0" && b.Label() != "b1" {
			t.Fatalf("surface label not preserved: %q", b.Label())
		}
	}

	if !mustIsIsomorphic(t, d, symmetricPair(t)) {
		t.Fatal("converted dataset must be isomorphic to the structural copy")
	}
}

func TestConvertJSONGoldNodeNilPointers(t *testing.T) {
	mint := func(string) BlankNode { return NewBlankNode() }
	cases := []struct {
		name string
		node ld.Node
	}{
		{"untyped nil", nil},
		{"nil IRI pointer", (*ld.IRI)(nil)},
		{"nil blank node pointer", (*ld.BlankNode)(nil)},
		{"nil literal pointer", (*ld.Literal)(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			term, err := convertJSONGoldNode(tc.node, mint)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if term != nil {
				t.Fatalf("expected nil term, got %v", term)
			}
		})
	}
}

func TestFromJSONGoldLiterals(t *testing.T) {
	src := ld.NewRDFDataset()
	src.Graphs["@default"] = []*ld.Quad{
		ld.NewQuad(ld.NewIRI("http://example.org/s"), ld.NewIRI("http://example.org/p"),
			ld.NewLiteral("plain", XSDString, ""), ""),
		ld.NewQuad(ld.NewIRI("http://example.org/s"), ld.NewIRI("http://example.org/p"),
			ld.NewLiteral("hallo", RDFLangString, "de"), ""),
		ld.NewQuad(ld.NewIRI("http://example.org/s"), ld.NewIRI("http://example.org/p"),
			ld.NewLiteral("30", "http://www.w3.org/2001/XMLSchema#integer", ""), ""),
	}

	d, err := FromJSONGold(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<http://example.org/s> <http://example.org/p> \"30\"^^<http://www.w3.org/2001/XMLSchema#integer> .\n" +
		"<http://example.org/s> <http://example.org/p> \"hallo\"@de .\n" +
		"<http://example.org/s> <http://example.org/p> \"plain\" .\n"
	if got := mustCanonicalize(t, d); got != want {
		t.Fatalf("unexpected canonical text:\ngot  %q\nwant %q", got, want)
	}
}
