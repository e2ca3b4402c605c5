package lexgraph

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is a simple undirected weighted graph over canonical ids, backed by
// a gonum graph with dense int64 vertex ids and mapping tables in both
// directions. Vertex order is the insertion order of the canonical ids,
// which every tie-break in the engine relies on.
type Graph struct {
	g     *simple.WeightedUndirectedGraph
	ids   []string
	index map[string]int64
	size  int
}

func newGraph(ids []string) *Graph {
	g := &Graph{
		g:     simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
		ids:   make([]string, 0, len(ids)),
		index: make(map[string]int64, len(ids)),
	}
	for _, id := range ids {
		if _, ok := g.index[id]; ok {
			continue
		}
		gid := int64(len(g.ids))
		g.index[id] = gid
		g.ids = append(g.ids, id)
		g.g.AddNode(simple.Node(gid))
	}
	return g
}

func (g *Graph) addEdge(u, v int64, weight float64) {
	g.g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: weight})
	g.size++
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.ids) }

// Size returns the number of edges.
func (g *Graph) Size() int { return g.size }

// IDs returns the canonical ids in stable vertex order.
func (g *Graph) IDs() []string { return g.ids }

// IndexOf returns the gonum vertex id of a canonical id.
func (g *Graph) IndexOf(id string) (int64, bool) {
	gid, ok := g.index[id]
	return gid, ok
}

// IDOf returns the canonical id of a gonum vertex id.
func (g *Graph) IDOf(gid int64) string { return g.ids[gid] }

// Gonum exposes the underlying graph for gonum algorithms.
func (g *Graph) Gonum() graph.Undirected { return g.g }

// HasEdgeBetween reports whether an edge joins the two canonical ids.
func (g *Graph) HasEdgeBetween(a, b string) bool {
	ai, okA := g.index[a]
	bi, okB := g.index[b]
	if !okA || !okB {
		return false
	}
	return g.g.HasEdgeBetween(ai, bi)
}

// Weight returns the edge weight between two canonical ids, or 0 when no
// edge joins them.
func (g *Graph) Weight(a, b string) float64 {
	ai, okA := g.index[a]
	bi, okB := g.index[b]
	if !okA || !okB {
		return 0
	}
	if w, ok := g.g.Weight(ai, bi); ok && ai != bi {
		return w
	}
	return 0
}

// Degree returns the unweighted incident edge count of a vertex.
func (g *Graph) Degree(gid int64) int {
	return g.g.From(gid).Len()
}

// Degrees returns the unweighted degree of every vertex in vertex order.
func (g *Graph) Degrees() []int {
	out := make([]int, len(g.ids))
	for i := range g.ids {
		out[i] = g.Degree(int64(i))
	}
	return out
}

// Neighbors returns the neighbor vertex ids of gid in ascending order.
func (g *Graph) Neighbors(gid int64) []int64 {
	it := g.g.From(gid)
	out := make([]int64, 0, it.Len())
	for it.Next() {
		out = append(out, it.Node().ID())
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Components returns the connected components as vertex id slices, largest
// first. Vertices within a component and components of equal size are
// ordered by vertex id, so the decomposition is deterministic.
func (g *Graph) Components() [][]int64 {
	comps := topo.ConnectedComponents(g.g)
	out := make([][]int64, len(comps))
	for i, comp := range comps {
		ids := make([]int64, len(comp))
		for j, n := range comp {
			ids[j] = n.ID()
		}
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
		out[i] = ids
	}
	sort.Slice(out, func(a, b int) bool {
		if len(out[a]) != len(out[b]) {
			return len(out[a]) > len(out[b])
		}
		return out[a][0] < out[b][0]
	})
	return out
}

// LCC returns the induced subgraph on the largest connected component, or
// nil for an empty graph.
func (g *Graph) LCC() *Graph {
	comps := g.Components()
	if len(comps) == 0 {
		return nil
	}
	return g.Induced(comps[0])
}

// Induced returns the subgraph induced on the given vertex ids. The new
// graph keeps the relative vertex order of the parent.
func (g *Graph) Induced(vertices []int64) *Graph {
	keep := make([]int64, len(vertices))
	copy(keep, vertices)
	sort.Slice(keep, func(i, j int) bool { return keep[i] < keep[j] })

	ids := make([]string, len(keep))
	for i, gid := range keep {
		ids[i] = g.ids[gid]
	}
	sub := newGraph(ids)
	for i, gid := range keep {
		for _, nb := range g.Neighbors(gid) {
			ni, ok := sub.index[g.ids[nb]]
			if !ok || int64(i) >= ni {
				continue
			}
			w, _ := g.g.Weight(gid, nb)
			sub.addEdge(int64(i), ni, w)
		}
	}
	return sub
}
