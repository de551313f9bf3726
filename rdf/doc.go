// Package rdf provides a compact RDF dataset model with deterministic
// canonicalization of blank node labels.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Two RDF graphs that are structurally identical but use different blank
// node labels, or list their statements in a different order, must still be
// recognized as equivalent and serialize to a byte-identical canonical
// form. The package solves this with a bounded variant of the graph
// isomorphism problem: every blank node receives a label derived purely
// from its structural role in the dataset.
//
//   - Model: IRI, BlankNode, Literal, Triple, Quad, Graph, Dataset.
//     Blank node identity is allocation-based; surface labels are
//     diagnostic metadata only.
//   - Canonicalize: Canonicalize() and CanonicalizeGraph() return the
//     canonical N-Quads text; ToCanonicalizedRDFDataset() additionally
//     exposes the issued identifier map and the rewritten dataset.
//   - Compare: IsIsomorphic() decides dataset isomorphism; the Canonical
//     wrapper caches canonical text for O(1) repeated comparisons.
//   - Ingest: DecodeJSONLD() and FromJSONGold() convert JSON-LD (via
//     github.com/piprate/json-gold) into the dataset model.
//
// Blank node fingerprints are computed with SHA-256 by default; SHA-384 is
// available through OptHashAlgorithm. Tied fingerprints are resolved with
// a permutation search whose group size is bounded by OptMaxTiedGroupSize;
// inputs that would exceed the bound fail with ErrComplexityExceeded
// rather than consuming factorial time and memory.
//
// Example (canonicalizing a graph):
//
//	g := rdf.NewGraph()
//	alice := rdf.NewBlankNode()
//	g.Add(rdf.Triple{S: alice, P: rdf.IRI{Value: "http://xmlns.com/foaf/0.1/name"}, O: rdf.Literal{Lexical: "Alice"}})
//
//	text, err := rdf.CanonicalizeGraph(g)
//	if err != nil {
//	    // handle error
//	}
//	// text holds sorted canonical N-Quads, e.g. signing input
//
// Canonicalization of one dataset is a pure, synchronous, CPU-bound
// computation. Independent datasets share no mutable state, so callers may
// canonicalize batches concurrently without additional synchronization.
//
// Text-format parsing and encoding beyond canonical N-Quads output is out
// of scope; external parsers only need to produce the Dataset model.
package rdf
