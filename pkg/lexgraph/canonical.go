// Package lexgraph turns raw, loosely-typed node/edge lists into a simple
// undirected weighted graph over canonical lemma identifiers.
package lexgraph

import (
	"github.com/lexatlas/lexgraph/pkg/models"
)

// CanonicalID resolves the canonical identifier of a raw node record by
// trying, in strict priority order: lemma, label, name, id. The first
// present value wins. A node with none of the fields is a validation error.
func CanonicalID(n models.RawNode) (string, error) {
	switch {
	case n.Lemma != nil:
		return *n.Lemma, nil
	case n.Label != nil:
		return *n.Label, nil
	case n.Name != nil:
		return *n.Name, nil
	case n.ID != nil:
		return n.ID.String(), nil
	}
	return "", models.NewValidationError("node", "no identifier field among lemma/label/name/id")
}

// rawKey is the identifier under which a node is referenced from the edge
// list. Edge exporters key on the id field when one exists, so the
// precedence here is id first, then the lexical fields.
func rawKey(n models.RawNode) string {
	switch {
	case n.ID != nil:
		return n.ID.String()
	case n.Lemma != nil:
		return *n.Lemma
	case n.Label != nil:
		return *n.Label
	case n.Name != nil:
		return *n.Name
	}
	return ""
}

// IDMap resolves raw edge-endpoint identifiers to canonical node ids.
type IDMap map[string]string

// NewIDMap builds the endpoint resolution map from all node records. Each
// node is reachable under both its raw key and its canonical id, which
// makes resolution idempotent for already-canonical identifiers.
func NewIDMap(nodes []models.RawNode) (IDMap, error) {
	m := make(IDMap, 2*len(nodes))
	for _, n := range nodes {
		cid, err := CanonicalID(n)
		if err != nil {
			return nil, err
		}
		if _, ok := m[cid]; !ok {
			m[cid] = cid
		}
		if key := rawKey(n); key != "" {
			if _, ok := m[key]; !ok {
				m[key] = cid
			}
		}
	}
	return m, nil
}

// Resolve maps a raw endpoint identifier to its canonical id. A miss is not
// an error: input data is expected to contain dangling references, and the
// builder drops edges with unresolvable endpoints.
func (m IDMap) Resolve(raw string) (string, bool) {
	cid, ok := m[raw]
	return cid, ok
}
