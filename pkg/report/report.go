// Package report assembles per-scenario metrics and rankings into the
// benchmark artifacts. Assembly is pure aggregation: nothing is recomputed
// and scenario order is preserved as configured, so two runs with the same
// inputs diff cleanly.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/lexatlas/lexgraph/pkg/metrics"
)

// ScenarioEntry holds everything reported for one scenario.
type ScenarioEntry struct {
	Scenario   string                `json:"scenario"`
	Metrics    metrics.Snapshot      `json:"metrics"`
	TopHubs    []metrics.HubEntry    `json:"top_hubs_degree"`
	TopBridges []metrics.BridgeEntry `json:"top_bridges_betweenness_approx"`
}

// Outputs records where the artifacts of a run were written.
type Outputs struct {
	CSV  string `json:"csv"`
	JSON string `json:"json"`
}

// Report is the benchmark artifact: input reference, output paths, the
// community-detection capability flag and one entry per scenario in
// configured order.
type Report struct {
	InputGraph                  string          `json:"input_graph"`
	Outputs                     Outputs         `json:"outputs"`
	CommunityDetectionAvailable bool            `json:"community_detection_available"`
	RunID                       string          `json:"run_id"`
	Scenarios                   []ScenarioEntry `json:"scenarios"`
}

// Append adds one scenario entry, preserving insertion order.
func (r *Report) Append(entry ScenarioEntry) {
	r.Scenarios = append(r.Scenarios, entry)
}

// WriteJSON writes the report with indentation.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

var csvHeader = []string{
	"scenario",
	"n_nodes", "n_edges", "n_components",
	"lcc_size", "lcc_ratio", "isolates",
	"deg_p50", "deg_p95", "deg_max",
	"clustering_lcc", "max_kcore",
	"avg_path_lcc", "diameter_lcc",
	"community_modularity_lcc", "community_count_lcc",
	"top_relationTypes",
}

// WriteCSV writes the companion tabular export: one row per scenario, all
// scalar metrics as columns, empty cells for undefined values.
func (r *Report) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range r.Scenarios {
		if err := w.Write(csvRow(entry)); err != nil {
			return fmt.Errorf("write csv row %s: %w", entry.Scenario, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func csvRow(entry ScenarioEntry) []string {
	m := entry.Metrics
	return []string{
		entry.Scenario,
		strconv.Itoa(m.NumNodes),
		strconv.Itoa(m.NumEdges),
		strconv.Itoa(m.NumComponents),
		strconv.Itoa(m.LCCSize),
		formatFloat(m.LCCRatio),
		strconv.Itoa(m.Isolates),
		strconv.Itoa(m.DegreeP50),
		strconv.Itoa(m.DegreeP95),
		strconv.Itoa(m.DegreeMax),
		optFloat(m.ClusteringLCC),
		optInt(m.MaxKCore),
		optFloat(m.AvgPathLCC),
		optInt(m.DiameterLCC),
		optFloat(m.CommunityModularityLCC),
		optInt(m.CommunityCountLCC),
		m.TopRelationTypes,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func optFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
