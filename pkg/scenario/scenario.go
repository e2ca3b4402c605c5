// Package scenario provides named, pure what-if transforms over canonical
// node/edge collections. Each scenario derives an independent variant of the
// base graph for comparative benchmarking and never mutates its input.
package scenario

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lexatlas/lexgraph/pkg/models"
)

// Transform maps base collections to a derived (nodes, edges) pair.
type Transform func(nodes []models.Node, edges []models.Edge) ([]models.Node, []models.Edge)

// Scenario is a named pure transform, applied once per benchmark run.
type Scenario struct {
	Name      string
	Transform Transform
}

// Baseline is the identity scenario.
func Baseline() Scenario {
	return Scenario{
		Name: "baseline",
		Transform: func(nodes []models.Node, edges []models.Edge) ([]models.Node, []models.Edge) {
			return nodes, edges
		},
	}
}

// WeightThreshold keeps edges whose weight is at least th.
func WeightThreshold(th float64) Scenario {
	return Scenario{
		Name: fmt.Sprintf("weight>=%g", th),
		Transform: func(nodes []models.Node, edges []models.Edge) ([]models.Node, []models.Edge) {
			out := make([]models.Edge, 0, len(edges))
			for _, e := range edges {
				if e.Weight >= th {
					out = append(out, e)
				}
			}
			return nodes, out
		},
	}
}

// RemoveRelationTypes removes the given relation-type labels from every
// edge. When any edge in the collection carries per-type mention counts the
// scenario subtracts the removed types' counts, recomputes the weight as
// the sum of the remaining counts and drops edges whose remaining weight is
// zero. Without count data it falls back to filtering the label lists,
// dropping edges whose list empties; the original weight is kept on that
// path even though the removed types' contribution is unknown. The fallback
// is a documented inexactness of the source data, not a defect.
func RemoveRelationTypes(remove []string) Scenario {
	removed := make(map[string]bool, len(remove))
	labels := make([]string, 0, len(remove))
	for _, t := range remove {
		if !removed[t] {
			removed[t] = true
			labels = append(labels, t)
		}
	}
	sort.Strings(labels)

	return Scenario{
		Name: fmt.Sprintf("removeTypes[%s]", strings.Join(labels, ",")),
		Transform: func(nodes []models.Node, edges []models.Edge) ([]models.Node, []models.Edge) {
			if anyHasCounts(edges) {
				return nodes, removeByCounts(edges, removed)
			}
			return nodes, removeByPresence(edges, removed)
		},
	}
}

func anyHasCounts(edges []models.Edge) bool {
	for _, e := range edges {
		if len(e.RelationTypeCounts) > 0 {
			return true
		}
	}
	return false
}

func removeByCounts(edges []models.Edge, removed map[string]bool) []models.Edge {
	out := make([]models.Edge, 0, len(edges))
	for _, e := range edges {
		counts := e.RelationTypeCounts
		if len(counts) == 0 {
			// No counts on this edge: synthesize one mention per label.
			counts = make(map[string]int, len(e.RelationTypes))
			for _, t := range e.RelationTypes {
				counts[t] = 1
			}
		}
		kept := make(map[string]int, len(counts))
		weight := 0.0
		for t, c := range counts {
			if removed[t] {
				continue
			}
			kept[t] = c
			weight += float64(c)
		}
		if weight <= 0 {
			continue
		}
		types := make([]string, 0, len(kept))
		for t := range kept {
			types = append(types, t)
		}
		sort.Strings(types)
		out = append(out, models.Edge{
			Source:             e.Source,
			Target:             e.Target,
			Weight:             weight,
			RelationTypes:      types,
			RelationTypeCounts: kept,
		})
	}
	return out
}

func removeByPresence(edges []models.Edge, removed map[string]bool) []models.Edge {
	out := make([]models.Edge, 0, len(edges))
	for _, e := range edges {
		types := make([]string, 0, len(e.RelationTypes))
		for _, t := range e.RelationTypes {
			if !removed[t] {
				types = append(types, t)
			}
		}
		if len(types) == 0 {
			continue
		}
		kept := e.Clone()
		kept.RelationTypes = types
		out = append(out, kept)
	}
	return out
}

// DropTopDegreeFraction removes the top ceil(fraction*n) nodes by degree
// (at least one) computed over the current collections, together with every
// edge touching a removed node. Degree ties break by original node order,
// which keeps the scenario reproducible across runs.
func DropTopDegreeFraction(fraction float64) Scenario {
	return Scenario{
		Name: fmt.Sprintf("dropTopDegree[%.3f]", fraction),
		Transform: func(nodes []models.Node, edges []models.Edge) ([]models.Node, []models.Edge) {
			if len(nodes) == 0 {
				return nodes, edges
			}
			degree := make(map[string]int, len(nodes))
			for _, n := range nodes {
				degree[n.ID] = 0
			}
			for _, e := range edges {
				degree[e.Source]++
				degree[e.Target]++
			}

			order := make([]string, len(nodes))
			for i, n := range nodes {
				order[i] = n.ID
			}
			sort.SliceStable(order, func(i, j int) bool {
				return degree[order[i]] > degree[order[j]]
			})

			k := int(math.Ceil(fraction * float64(len(nodes))))
			if k < 1 {
				k = 1
			}
			if k > len(order) {
				k = len(order)
			}
			drop := make(map[string]bool, k)
			for _, id := range order[:k] {
				drop[id] = true
			}

			keptNodes := make([]models.Node, 0, len(nodes)-k)
			for _, n := range nodes {
				if !drop[n.ID] {
					keptNodes = append(keptNodes, n)
				}
			}
			keptEdges := make([]models.Edge, 0, len(edges))
			for _, e := range edges {
				if drop[e.Source] || drop[e.Target] {
					continue
				}
				keptEdges = append(keptEdges, e)
			}
			return keptNodes, keptEdges
		},
	}
}

// DefaultFamily is the benchmark scenario set: the baseline, two weight
// thresholds, relation-type removals for the major semantic families, and
// two hub-removal fractions.
func DefaultFamily() []Scenario {
	return []Scenario{
		Baseline(),
		WeightThreshold(2),
		WeightThreshold(3),
		RemoveRelationTypes([]string{"ANTONYM"}),
		RemoveRelationTypes([]string{"DERIVATION"}),
		RemoveRelationTypes([]string{"PERTAINYM"}),
		RemoveRelationTypes([]string{"HYPERNYM", "HYPONYM", "INSTANCE_HYPERNYM", "INSTANCE_HYPONYM"}),
		RemoveRelationTypes([]string{
			"PART_MERONYM", "MEMBER_MERONYM", "SUBSTANCE_MERONYM",
			"PART_HOLONYM", "MEMBER_HOLONYM", "SUBSTANCE_HOLONYM",
		}),
		DropTopDegreeFraction(0.001),
		DropTopDegreeFraction(0.005),
	}
}
