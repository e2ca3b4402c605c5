// Package metrics computes exact and sampled structural statistics for one
// canonical graph. Exact metrics cover the whole graph; the expensive ones
// (path lengths, diameter, betweenness) are approximated by seeded sampling
// on the largest connected component so cost stays bounded at scale.
package metrics

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lexatlas/lexgraph/pkg/cluster"
	"github.com/lexatlas/lexgraph/pkg/lexgraph"
	"github.com/lexatlas/lexgraph/pkg/models"
)

// Snapshot is an immutable record of the statistics of one graph. Pointer
// fields are nil when the graph is too degenerate for the metric (fewer than
// two nodes, no edges, or an empty largest component); that is a reported
// value, not an error.
type Snapshot struct {
	NumNodes               int      `json:"n_nodes"`
	NumEdges               int      `json:"n_edges"`
	NumComponents          int      `json:"n_components"`
	LCCSize                int      `json:"lcc_size"`
	LCCRatio               float64  `json:"lcc_ratio"`
	Isolates               int      `json:"isolates"`
	DegreeP50              int      `json:"deg_p50"`
	DegreeP95              int      `json:"deg_p95"`
	DegreeMax              int      `json:"deg_max"`
	ClusteringLCC          *float64 `json:"clustering_lcc"`
	MaxKCore               *int     `json:"max_kcore"`
	AvgPathLCC             *float64 `json:"avg_path_lcc"`
	DiameterLCC            *int     `json:"diameter_lcc"`
	CommunityModularityLCC *float64 `json:"community_modularity_lcc"`
	CommunityCountLCC      *int     `json:"community_count_lcc"`
	TopRelationTypes       string   `json:"top_relationTypes"`
}

// Engine holds the sampling configuration shared by every snapshot of one
// benchmark run. The seed is caller-supplied: identical seed and identical
// graph produce identical sampled metrics, which benchmark comparability
// across scenarios depends on.
type Engine struct {
	DistanceSamples   int
	BetweennessSample int
	Seed              int64
	Detector          cluster.Detector
}

// NewEngine creates an engine with the given sampling sizes and seed.
func NewEngine(distanceSamples, betweennessSample int, seed int64, det cluster.Detector) *Engine {
	return &Engine{
		DistanceSamples:   distanceSamples,
		BetweennessSample: betweennessSample,
		Seed:              seed,
		Detector:          det,
	}
}

// Snapshot computes the full metric record for a graph. The edge collection
// is the one the graph was built from; it feeds the relation-type coverage
// table, which counts label occurrences rather than merged graph edges.
func (e *Engine) Snapshot(g *lexgraph.Graph, edges []models.Edge) Snapshot {
	snap := Snapshot{
		NumNodes: g.Order(),
		NumEdges: g.Size(),
	}

	degrees := g.Degrees()
	sorted := append([]int(nil), degrees...)
	sort.Ints(sorted)
	snap.DegreeP50 = percentile(sorted, 50)
	snap.DegreeP95 = percentile(sorted, 95)
	if len(sorted) > 0 {
		snap.DegreeMax = sorted[len(sorted)-1]
	}
	for _, d := range degrees {
		if d == 0 {
			snap.Isolates++
		}
	}

	comps := g.Components()
	snap.NumComponents = len(comps)
	if len(comps) > 0 {
		snap.LCCSize = len(comps[0])
	}
	if snap.NumNodes > 0 {
		snap.LCCRatio = float64(snap.LCCSize) / float64(snap.NumNodes)
	}

	var lcc *lexgraph.Graph
	if snap.NumNodes > 0 && snap.NumEdges > 0 {
		lcc = g.Induced(comps[0])
	}

	if lcc != nil && lcc.Order() > 2 && lcc.Size() > 0 {
		cc := averageLocalClustering(lcc)
		snap.ClusteringLCC = &cc
	}
	if snap.NumNodes > 0 && snap.NumEdges > 0 {
		k := maxKCore(g)
		snap.MaxKCore = &k
	}

	snap.AvgPathLCC, snap.DiameterLCC = e.approxDistances(g, lcc)

	if e.Detector != nil && lcc != nil && lcc.Order() > 2 && lcc.Size() > 0 {
		if membership, modularity, err := e.Detector.Detect(lcc, 1.0, e.Seed); err == nil {
			comms := make(map[int]bool, len(membership))
			for _, c := range membership {
				comms[c] = true
			}
			n := len(comms)
			snap.CommunityModularityLCC = &modularity
			snap.CommunityCountLCC = &n
		}
	}

	snap.TopRelationTypes = topRelationTypes(edges, 10)
	return snap
}

// percentile indexes the sorted degree sequence at p percent of its span.
func percentile(sorted []int, p int) int {
	if len(sorted) == 0 {
		return 0
	}
	i := (p * (len(sorted) - 1)) / 100
	return sorted[i]
}

// averageLocalClustering is the mean local clustering coefficient with the
// zero-fill convention: nodes of degree below two contribute zero.
func averageLocalClustering(g *lexgraph.Graph) float64 {
	n := g.Order()
	neighbors := make([]map[int64]bool, n)
	for i := 0; i < n; i++ {
		nbs := g.Neighbors(int64(i))
		set := make(map[int64]bool, len(nbs))
		for _, nb := range nbs {
			set[nb] = true
		}
		neighbors[i] = set
	}

	total := 0.0
	for i := 0; i < n; i++ {
		deg := len(neighbors[i])
		if deg < 2 {
			continue
		}
		links := 0
		nbs := g.Neighbors(int64(i))
		for a := 0; a < len(nbs); a++ {
			for b := a + 1; b < len(nbs); b++ {
				if neighbors[nbs[a]][nbs[b]] {
					links++
				}
			}
		}
		total += 2.0 * float64(links) / float64(deg*(deg-1))
	}
	return total / float64(n)
}

// maxKCore is the largest k with a non-empty k-core, found by iterative
// peeling of vertices below the current threshold.
func maxKCore(g *lexgraph.Graph) int {
	n := g.Order()
	adjacency := make([][]int64, n)
	degree := make([]int, n)
	for i := 0; i < n; i++ {
		adjacency[i] = g.Neighbors(int64(i))
		degree[i] = len(adjacency[i])
	}

	removed := make([]bool, n)
	remaining := n
	maxK := 0
	for k := 1; remaining > 0; k++ {
		queue := make([]int64, 0)
		for i := 0; i < n; i++ {
			if !removed[i] && degree[i] < k {
				queue = append(queue, int64(i))
			}
		}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			if removed[v] {
				continue
			}
			removed[v] = true
			remaining--
			for _, nb := range adjacency[v] {
				if removed[nb] {
					continue
				}
				degree[nb]--
				if degree[nb] < k {
					queue = append(queue, nb)
				}
			}
		}
		if remaining > 0 {
			maxK = k
		}
	}
	return maxK
}

// topRelationTypes builds the label:count coverage table over all edges,
// top-n by count, ties broken alphabetically for stable output.
func topRelationTypes(edges []models.Edge, n int) string {
	counts := make(map[string]int)
	for _, e := range edges {
		for _, t := range e.RelationTypes {
			counts[t]++
		}
	}
	labels := make([]string, 0, len(counts))
	for t := range counts {
		labels = append(labels, t)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	if len(labels) > n {
		labels = labels[:n]
	}
	parts := make([]string, len(labels))
	for i, t := range labels {
		parts[i] = t + ":" + strconv.Itoa(counts[t])
	}
	return strings.Join(parts, ";")
}
