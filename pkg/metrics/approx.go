package metrics

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/lexatlas/lexgraph/pkg/lexgraph"
)

// approxDistances estimates the average unweighted shortest-path length and
// the diameter of the largest connected component by running BFS from up to
// DistanceSamples sources drawn without replacement. The diameter estimate
// is the maximum distance observed from the sampled sources, a lower bound
// on the true diameter.
func (e *Engine) approxDistances(g *lexgraph.Graph, lcc *lexgraph.Graph) (*float64, *int) {
	if g.Order() < 2 || g.Size() == 0 {
		return nil, nil
	}
	if lcc == nil || lcc.Order() < 2 || lcc.Size() == 0 {
		return nil, nil
	}

	rng := rand.New(rand.NewPCG(uint64(e.Seed), uint64(e.Seed)))
	take := e.DistanceSamples
	if take > lcc.Order() {
		take = lcc.Order()
	}
	sources := rng.Perm(lcc.Order())[:take]

	var (
		sum     float64
		count   int
		maxDist int
	)
	bfs := traverse.BreadthFirst{}
	for _, s := range sources {
		bfs.Reset()
		bfs.Walk(lcc.Gonum(), simpleNode(int64(s)), func(_ graph.Node, d int) bool {
			if d > 0 {
				sum += float64(d)
				count++
				if d > maxDist {
					maxDist = d
				}
			}
			return false
		})
	}
	if count == 0 {
		return nil, nil
	}
	avg := sum / float64(count)
	return &avg, &maxDist
}

type simpleNode int64

func (n simpleNode) ID() int64 { return int64(n) }

// BridgeEntry ranks one node by betweenness centrality within the sampled
// subgraph.
type BridgeEntry struct {
	Lemma       string  `json:"lemma"`
	Betweenness float64 `json:"betweenness"`
}

// TopBridges approximates a bridge ranking: sample up to BetweennessSample
// vertices of the largest connected component without replacement, induce
// the subgraph on exactly those vertices, compute exact betweenness there
// and return the top k. The scores rank bridge-like nodes within the
// sample; they are not globally exact betweenness values.
func (e *Engine) TopBridges(g *lexgraph.Graph, k int) []BridgeEntry {
	if g.Order() < 5 || g.Size() == 0 {
		return []BridgeEntry{}
	}
	lcc := g.LCC()
	if lcc == nil || lcc.Order() < 5 || lcc.Size() == 0 {
		return []BridgeEntry{}
	}

	rng := rand.New(rand.NewPCG(uint64(e.Seed), uint64(e.Seed)))
	take := e.BetweennessSample
	if take > lcc.Order() {
		take = lcc.Order()
	}
	picked := rng.Perm(lcc.Order())[:take]
	vertices := make([]int64, len(picked))
	for i, v := range picked {
		vertices[i] = int64(v)
	}

	sub := lcc.Induced(vertices)
	scores := network.Betweenness(sub.Gonum())

	order := make([]int64, sub.Order())
	for i := range order {
		order[i] = int64(i)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	if len(order) > k {
		order = order[:k]
	}

	out := make([]BridgeEntry, len(order))
	for i, gid := range order {
		out[i] = BridgeEntry{Lemma: sub.IDOf(gid), Betweenness: scores[gid]}
	}
	return out
}
