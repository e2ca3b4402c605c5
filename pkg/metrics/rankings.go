package metrics

import (
	"sort"

	"github.com/lexatlas/lexgraph/pkg/lexgraph"
)

// HubEntry ranks one node by raw degree over the full graph.
type HubEntry struct {
	Lemma  string `json:"lemma"`
	Degree int    `json:"degree"`
}

// TopHubs returns the top-k nodes by unweighted degree, computed on the
// full graph rather than any sample. Ties break by original node order.
func TopHubs(g *lexgraph.Graph, k int) []HubEntry {
	degrees := g.Degrees()
	order := make([]int, len(degrees))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return degrees[order[i]] > degrees[order[j]]
	})
	if len(order) > k {
		order = order[:k]
	}
	out := make([]HubEntry, len(order))
	for i, idx := range order {
		out[i] = HubEntry{Lemma: g.IDOf(int64(idx)), Degree: degrees[idx]}
	}
	return out
}
