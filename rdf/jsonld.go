package rdf

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// JSONLDOptions configures JSON-LD ingestion.
type JSONLDOptions struct {
	// BaseIRI resolves relative IRIs.
	BaseIRI string
	// ProcessingMode controls JSON-LD version semantics: "json-ld-1.0" or
	// "json-ld-1.1".
	ProcessingMode string
	// DocumentLoader resolves remote contexts/documents. Nil uses the
	// json-gold default loader.
	DocumentLoader ld.DocumentLoader
}

// DecodeJSONLD converts a JSON-LD document into a dataset via the
// json-gold RDF conversion. The JSON-LD processing itself is delegated
// entirely to json-gold; this package only consumes the resulting model.
func DecodeJSONLD(data []byte, opts JSONLDOptions) (*Dataset, error) {
	var input interface{}
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("jsonld: %w", err)
	}
	proc := ld.NewJsonLdProcessor()
	goldOpts := ld.NewJsonLdOptions(opts.BaseIRI)
	if opts.ProcessingMode != "" {
		goldOpts.ProcessingMode = opts.ProcessingMode
	}
	if opts.DocumentLoader != nil {
		goldOpts.DocumentLoader = opts.DocumentLoader
	}
	result, err := proc.ToRDF(input, goldOpts)
	if err != nil {
		return nil, fmt.Errorf("jsonld: %w", err)
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return nil, fmt.Errorf("jsonld: unexpected ToRDF result %T", result)
	}
	return FromJSONGold(dataset)
}

// FromJSONGold converts a json-gold RDF dataset into a Dataset. Source
// blank node labels become diagnostic surface labels; within one conversion
// identical labels map to the same minted node, while separate conversions
// always mint distinct nodes.
func FromJSONGold(src *ld.RDFDataset) (*Dataset, error) {
	out := NewDataset()
	if src == nil {
		return out, nil
	}

	blanks := make(map[string]BlankNode)
	mint := func(label string) BlankNode {
		if b, ok := blanks[label]; ok {
			return b
		}
		b := NewBlankNodeWithLabel(strings.TrimPrefix(label, "_:"))
		blanks[label] = b
		return b
	}

	// Graph iteration order is made deterministic so repeated conversions
	// of the same document build identical datasets.
	names := make([]string, 0, len(src.Graphs))
	for name := range src.Graphs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var graph Term
		if name != "" && name != "@default" {
			if strings.HasPrefix(name, "_:") {
				graph = mint(name)
			} else {
				graph = IRI{Value: name}
			}
		}
		for _, quad := range src.Graphs[name] {
			if quad == nil {
				continue
			}
			subject, err := convertJSONGoldNode(quad.Subject, mint)
			if err != nil {
				return nil, err
			}
			predicate, err := convertJSONGoldNode(quad.Predicate, mint)
			if err != nil {
				return nil, err
			}
			predicateIRI, ok := predicate.(IRI)
			if !ok {
				return nil, fmt.Errorf("%w: non-IRI predicate %v", ErrMalformedDataset, quad.Predicate)
			}
			object, err := convertJSONGoldNode(quad.Object, mint)
			if err != nil {
				return nil, err
			}
			if err := out.Add(Quad{S: subject, P: predicateIRI, O: object, G: graph}); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// convertJSONGoldNode maps a json-gold node to a term. json-gold mixes
// value and pointer node representations depending on the code path, so
// both are accepted.
func convertJSONGoldNode(node ld.Node, mint func(string) BlankNode) (Term, error) {
	switch v := node.(type) {
	case nil:
		return nil, nil
	case *ld.IRI:
		if v == nil {
			return nil, nil
		}
		return IRI{Value: v.Value}, nil
	case ld.IRI:
		return IRI{Value: v.Value}, nil
	case *ld.BlankNode:
		if v == nil {
			return nil, nil
		}
		return mint(v.Attribute), nil
	case ld.BlankNode:
		return mint(v.Attribute), nil
	case *ld.Literal:
		if v == nil {
			return nil, nil
		}
		return convertJSONGoldLiteral(*v), nil
	case ld.Literal:
		return convertJSONGoldLiteral(v), nil
	default:
		return nil, fmt.Errorf("jsonld: unsupported node type %T", node)
	}
}

func convertJSONGoldLiteral(lit ld.Literal) Literal {
	out := Literal{Lexical: lit.Value}
	switch {
	case lit.Language != "":
		out.Lang = lit.Language
	case lit.Datatype != "" && lit.Datatype != XSDString:
		out.Datatype = IRI{Value: lit.Datatype}
	}
	return out
}
