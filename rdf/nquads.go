package rdf

import (
	"sort"
	"strings"
)

// renderQuad serializes one quad in canonical N-Quads form, terminated by
// " .\n". Blank node terms are rendered through blank, which lets callers
// substitute placeholder tokens (first-degree hashing) or issued labels.
func renderQuad(q Quad, blank func(BlankNode) string) string {
	var sb strings.Builder
	sb.WriteString(renderTerm(q.S, blank))
	sb.WriteByte(' ')
	sb.WriteString(renderIRI(q.P))
	sb.WriteByte(' ')
	sb.WriteString(renderTerm(q.O, blank))
	if q.G != nil {
		sb.WriteByte(' ')
		sb.WriteString(renderTerm(q.G, blank))
	}
	sb.WriteString(" .\n")
	return sb.String()
}

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderTerm(term Term, blank func(BlankNode) string) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return blank(value)
	case Literal:
		return renderLiteral(value)
	default:
		return ""
	}
}

func renderLiteral(l Literal) string {
	var sb strings.Builder
	sb.WriteByte('"')
	sb.WriteString(escapeLiteral(l.Lexical))
	sb.WriteByte('"')
	switch {
	case l.Lang != "":
		sb.WriteByte('@')
		sb.WriteString(l.Lang)
	case l.Datatype.Value != "" && l.Datatype.Value != XSDString:
		sb.WriteString("^^")
		sb.WriteString(renderIRI(l.Datatype))
	}
	return sb.String()
}

// escapeLiteral applies the canonical N-Quads string escapes: backslash,
// quote, newline, carriage return, tab. All other bytes pass through.
func escapeLiteral(s string) string {
	if !strings.ContainsAny(s, "\\\"\n\r\t") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// renderBlankLabel writes a blank node as "_:" plus its surface label. It
// is only safe on datasets whose blank nodes carry labels, such as the
// rewritten output of canonicalization.
func renderBlankLabel(b BlankNode) string {
	return "_:" + b.label
}

// serializeCanonical emits the canonical N-Quads document: one line per
// quad, all lines sorted in ascending byte order, newline-terminated.
func serializeCanonical(d *Dataset) string {
	lines := make([]string, 0, d.Len())
	for _, q := range d.Quads() {
		lines = append(lines, renderQuad(q, renderBlankLabel))
	}
	sort.Strings(lines)
	return strings.Join(lines, "")
}
