package lexgraph

import (
	"sort"

	"github.com/lexatlas/lexgraph/pkg/models"
)

// DropStats counts edges discarded during normalization and construction.
// Referential gaps are expected in the input and reported here rather than
// raised as errors.
type DropStats struct {
	UnresolvedEndpoints int `json:"unresolved_endpoints"`
	SelfLoops           int `json:"self_loops"`
	OutsideSubset       int `json:"outside_subset"`
	MergedDuplicates    int `json:"merged_duplicates"`
}

// Normalize canonicalizes a raw graph document into canonical node and edge
// collections. Node records with no identifier and edge records missing
// source or target fail the run; edges whose endpoints do not resolve, or
// that collapse into self-loops, are dropped and counted.
func Normalize(doc *models.GraphDocument) ([]models.Node, []models.Edge, *DropStats, error) {
	idMap, err := NewIDMap(doc.Nodes)
	if err != nil {
		return nil, nil, nil, err
	}

	seen := make(map[string]bool, len(doc.Nodes))
	nodes := make([]models.Node, 0, len(doc.Nodes))
	for _, raw := range doc.Nodes {
		cid, err := CanonicalID(raw)
		if err != nil {
			return nil, nil, nil, err
		}
		if seen[cid] {
			continue
		}
		seen[cid] = true
		n := models.Node{ID: cid}
		if raw.SenseCount != nil {
			n.SenseCount = *raw.SenseCount
		}
		if raw.RelationCount != nil {
			n.RelationCount = *raw.RelationCount
		}
		nodes = append(nodes, n)
	}

	stats := &DropStats{}
	rawEdges := doc.RawEdges()
	edges := make([]models.Edge, 0, len(rawEdges))
	for _, raw := range rawEdges {
		if raw.Source == nil || raw.Target == nil {
			return nil, nil, nil, models.NewValidationError("edge", "missing source or target")
		}
		src, okS := idMap.Resolve(raw.Source.String())
		dst, okT := idMap.Resolve(raw.Target.String())
		if !okS || !okT {
			stats.UnresolvedEndpoints++
			continue
		}
		if src == dst {
			stats.SelfLoops++
			continue
		}
		e := models.Edge{Source: src, Target: dst, Weight: 1.0}
		if raw.Weight != nil {
			e.Weight = *raw.Weight
		}
		if len(raw.RelationTypes) > 0 {
			e.RelationTypes = append([]string(nil), raw.RelationTypes...)
		}
		if len(raw.RelationTypeCounts) > 0 {
			e.RelationTypeCounts = make(map[string]int, len(raw.RelationTypeCounts))
			for k, v := range raw.RelationTypeCounts {
				e.RelationTypeCounts[k] = v
			}
		}
		edges = append(edges, e)
	}
	return nodes, edges, stats, nil
}

// Simplify merges duplicate unordered endpoint pairs: weights are summed,
// relation-type sets unioned, per-type counts added. Edge order follows the
// first occurrence of each pair.
func Simplify(edges []models.Edge) []models.Edge {
	type key struct{ a, b string }
	index := make(map[key]int, len(edges))
	out := make([]models.Edge, 0, len(edges))

	for _, e := range edges {
		k := key{e.Source, e.Target}
		if k.b < k.a {
			k.a, k.b = k.b, k.a
		}
		i, ok := index[k]
		if !ok {
			index[k] = len(out)
			out = append(out, e.Clone())
			continue
		}
		merged := &out[i]
		merged.Weight += e.Weight
		for _, t := range e.RelationTypes {
			if !containsString(merged.RelationTypes, t) {
				merged.RelationTypes = append(merged.RelationTypes, t)
			}
		}
		if len(e.RelationTypeCounts) > 0 {
			if merged.RelationTypeCounts == nil {
				merged.RelationTypeCounts = make(map[string]int, len(e.RelationTypeCounts))
			}
			for t, c := range e.RelationTypeCounts {
				merged.RelationTypeCounts[t] += c
			}
		}
	}
	for i := range out {
		sort.Strings(out[i].RelationTypes)
	}
	return out
}

func containsString(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// BuildOptions controls graph construction. A non-nil Restrict limits the
// graph to exactly those canonical ids, in the given order; edges touching
// a node outside the subset are dropped.
type BuildOptions struct {
	Restrict []string
}

// Build constructs the simple undirected weighted graph from canonical
// collections. Duplicate unordered pairs are merged before insertion, so
// the result holds at most one edge per pair and no self-loops.
func Build(nodes []models.Node, edges []models.Edge, opts BuildOptions) (*Graph, *DropStats) {
	stats := &DropStats{}

	var order []string
	if opts.Restrict != nil {
		order = opts.Restrict
	} else {
		order = make([]string, len(nodes))
		for i, n := range nodes {
			order[i] = n.ID
		}
	}
	g := newGraph(order)

	merged := Simplify(edges)
	stats.MergedDuplicates = len(edges) - len(merged)
	for _, e := range merged {
		si, okS := g.IndexOf(e.Source)
		ti, okT := g.IndexOf(e.Target)
		if !okS || !okT {
			stats.OutsideSubset++
			continue
		}
		if si == ti {
			stats.SelfLoops++
			continue
		}
		g.addEdge(si, ti, e.Weight)
	}
	return g, stats
}

// TopByDegree returns canonical ids ordered by unweighted degree over the
// given edge collection, highest first, ties broken by original node order.
// A positive max truncates the result; max <= 0 keeps every node.
func TopByDegree(nodes []models.Node, edges []models.Edge, max int) []string {
	degree := make(map[string]int, len(nodes))
	for _, n := range nodes {
		degree[n.ID] = 0
	}
	for _, e := range edges {
		if _, ok := degree[e.Source]; !ok {
			continue
		}
		if _, ok := degree[e.Target]; !ok {
			continue
		}
		degree[e.Source]++
		degree[e.Target]++
	}
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return degree[ids[i]] > degree[ids[j]]
	})
	if max > 0 && len(ids) > max {
		ids = ids[:max]
	}
	return ids
}
