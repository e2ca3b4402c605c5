// Package layout places the clusters of one hierarchy level in 2-D space.
// It builds an auxiliary inter-cluster graph weighted by crossing edges,
// runs a bounded force-directed embedding over it and normalizes the result
// into a fixed symmetric coordinate range.
package layout

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lexatlas/lexgraph/pkg/models"
)

// Options bounds the embedding for reproducible runtime.
type Options struct {
	Iterations int
	Extent     float64
	Seed       int64
}

// DefaultOptions matches the production configuration: 200 iterations,
// coordinates in [-1000, 1000].
func DefaultOptions() Options {
	return Options{Iterations: 200, Extent: 1000, Seed: 123}
}

type clusterEdge struct {
	a, b   int
	weight float64
}

// Compute lays out the clusters of one level. nodeOrder fixes the cluster
// ordering (clusters appear in order of their first member), membership maps
// canonical node id to cluster id, and edges is the base edge collection
// whose crossing counts become attraction weights. Clusters joined by at
// least one crossing edge get a force-directed layout; a fully disconnected
// cluster graph falls back to a deterministic circle.
func Compute(nodeOrder []string, membership map[string]string, edges []models.Edge, opts Options) map[string]models.Position {
	buckets := make(map[string][]string)
	clusterIDs := make([]string, 0)
	for _, id := range nodeOrder {
		cid, ok := membership[id]
		if !ok {
			continue
		}
		if _, seen := buckets[cid]; !seen {
			clusterIDs = append(clusterIDs, cid)
		}
		buckets[cid] = append(buckets[cid], id)
	}
	if len(clusterIDs) == 0 {
		return map[string]models.Position{}
	}
	index := make(map[string]int, len(clusterIDs))
	for i, cid := range clusterIDs {
		index[cid] = i
	}

	// Count base edges crossing between distinct clusters.
	type pair struct{ a, b int }
	crossings := make(map[pair]float64)
	for _, e := range edges {
		c1, ok1 := membership[e.Source]
		c2, ok2 := membership[e.Target]
		if !ok1 || !ok2 || c1 == c2 {
			continue
		}
		i, j := index[c1], index[c2]
		if j < i {
			i, j = j, i
		}
		crossings[pair{i, j}]++
	}
	clusterEdges := make([]clusterEdge, 0, len(crossings))
	for p, w := range crossings {
		clusterEdges = append(clusterEdges, clusterEdge{a: p.a, b: p.b, weight: w})
	}
	sort.Slice(clusterEdges, func(i, j int) bool {
		if clusterEdges[i].a != clusterEdges[j].a {
			return clusterEdges[i].a < clusterEdges[j].a
		}
		return clusterEdges[i].b < clusterEdges[j].b
	})

	var coords []r2.Vec
	if len(clusterEdges) > 0 {
		coords = fruchtermanReingold(len(clusterIDs), clusterEdges, opts)
	} else {
		coords = circle(len(clusterIDs))
	}
	normalize(coords, opts.Extent)

	out := make(map[string]models.Position, len(clusterIDs))
	for i, cid := range clusterIDs {
		out[cid] = models.Position{
			X:       coords[i].X,
			Y:       coords[i].Y,
			Size:    len(buckets[cid]),
			Members: buckets[cid],
		}
	}
	return out
}

// fruchtermanReingold is a spring-embedder with crossing-edge weights as
// attraction strength. Initial positions come from a seeded generator and
// the iteration count is fixed, so identical inputs lay out identically.
func fruchtermanReingold(n int, edges []clusterEdge, opts Options) []r2.Vec {
	rng := rand.New(rand.NewPCG(uint64(opts.Seed), uint64(opts.Seed)))
	pos := make([]r2.Vec, n)
	for i := range pos {
		pos[i] = r2.Vec{X: rng.Float64(), Y: rng.Float64()}
	}
	if n == 1 {
		return pos
	}

	k := math.Sqrt(1.0 / float64(n))
	disp := make([]r2.Vec, n)
	temp := 0.1
	cool := temp / float64(opts.Iterations+1)

	for iter := 0; iter < opts.Iterations; iter++ {
		for i := range disp {
			disp[i] = r2.Vec{}
		}
		// Repulsion between every cluster pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				delta := r2.Sub(pos[i], pos[j])
				dist := math.Hypot(delta.X, delta.Y)
				if dist < 1e-9 {
					dist = 1e-9
					delta = r2.Vec{X: 1e-9, Y: 0}
				}
				f := k * k / dist
				push := r2.Scale(f/dist, delta)
				disp[i] = r2.Add(disp[i], push)
				disp[j] = r2.Sub(disp[j], push)
			}
		}
		// Attraction along crossing edges, scaled by crossing count.
		for _, e := range edges {
			delta := r2.Sub(pos[e.a], pos[e.b])
			dist := math.Hypot(delta.X, delta.Y)
			if dist < 1e-9 {
				continue
			}
			f := dist * dist / k * e.weight
			pull := r2.Scale(f/dist, delta)
			disp[e.a] = r2.Sub(disp[e.a], pull)
			disp[e.b] = r2.Add(disp[e.b], pull)
		}
		// Cap displacement by the cooling temperature.
		for i := 0; i < n; i++ {
			d := math.Hypot(disp[i].X, disp[i].Y)
			if d < 1e-9 {
				continue
			}
			step := math.Min(d, temp)
			pos[i] = r2.Add(pos[i], r2.Scale(step/d, disp[i]))
		}
		temp -= cool
	}
	return pos
}

// circle places clusters evenly on the unit circle.
func circle(n int) []r2.Vec {
	pos := make([]r2.Vec, n)
	for i := range pos {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pos[i] = r2.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return pos
}

// normalize maps each axis independently into [-extent, extent]. An axis
// with near-zero spread collapses to 0.
func normalize(coords []r2.Vec, extent float64) {
	if len(coords) == 0 {
		return
	}
	minX, maxX := coords[0].X, coords[0].X
	minY, maxY := coords[0].Y, coords[0].Y
	for _, c := range coords[1:] {
		minX = math.Min(minX, c.X)
		maxX = math.Max(maxX, c.X)
		minY = math.Min(minY, c.Y)
		maxY = math.Max(maxY, c.Y)
	}
	norm := func(v, lo, hi float64) float64 {
		if hi-lo < 1e-9 {
			return 0
		}
		return (v-lo)/(hi-lo)*2*extent - extent
	}
	for i := range coords {
		coords[i] = r2.Vec{
			X: norm(coords[i].X, minX, maxX),
			Y: norm(coords[i].Y, minY, maxY),
		}
	}
}
