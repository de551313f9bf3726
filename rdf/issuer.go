package rdf

import "strconv"

// issuer allocates blank node labels "<prefix>0", "<prefix>1", ... in
// strictly increasing issuance order. The mapping is append-only and
// idempotent: re-issuing for an already-labeled node returns the existing
// label unchanged.
//
// Speculative permutation branches work on a clone; only the winning
// branch's issuer is ever merged back, so trial issuance never leaks into
// committed state.
type issuer struct {
	prefix  string
	counter int
	issued  map[BlankNode]string
	order   []BlankNode
}

func newIssuer(prefix string) *issuer {
	return &issuer{prefix: prefix, issued: make(map[BlankNode]string)}
}

// issue returns the label for b, allocating the next one on first use.
func (i *issuer) issue(b BlankNode) string {
	if label, ok := i.issued[b]; ok {
		return label
	}
	label := i.prefix + strconv.Itoa(i.counter)
	i.counter++
	i.issued[b] = label
	i.order = append(i.order, b)
	return label
}

// has reports whether b already carries a label.
func (i *issuer) has(b BlankNode) bool {
	_, ok := i.issued[b]
	return ok
}

// lookup returns the label for b, or "" if none was issued.
func (i *issuer) lookup(b BlankNode) string {
	return i.issued[b]
}

// clone returns an independent value copy for trial issuance.
func (i *issuer) clone() *issuer {
	out := &issuer{
		prefix:  i.prefix,
		counter: i.counter,
		issued:  make(map[BlankNode]string, len(i.issued)),
		order:   make([]BlankNode, len(i.order)),
	}
	for b, label := range i.issued {
		out.issued[b] = label
	}
	copy(out.order, i.order)
	return out
}
