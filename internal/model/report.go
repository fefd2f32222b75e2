package model

import "time"

// Spike marks a sharp increase in overall degradation between two adjacent
// segments.
type Spike struct {
	Position float64 `json:"position"` // Normalized position in the document (0..1)
	Percent  float64 `json:"percent"`  // Same position expressed as a percentage
}

// Findings is the derived one-line diagnosis and its remediation.
type Findings struct {
	Key            string `json:"key"`            // e.g. "Vagueness spikes in early sections"
	Recommendation string `json:"recommendation"` // Fixed per-category remediation sentence
}

// Summary is the meeting-ready digest of an analysis.
type Summary struct {
	Summary string `json:"summary"` // One/two sentence overview
	Finding string `json:"finding"` // Key finding, verbatim from Findings
	Action  string `json:"action"`  // Recommendation, verbatim from Findings
}

// Report is the complete beat map analysis artifact written to JSON output.
type Report struct {
	Source         string    `json:"source"`          // Name of the analyzed input (e.g. file path)
	AnalyzedAt     time.Time `json:"analyzed_at"`     // When the analysis ran (UTC)
	ContentLength  int       `json:"content_length"`  // Characters analyzed
	SegmentCount   int       `json:"segment_count"`   // Number of timeline segments
	SpikeThreshold float64   `json:"spike_threshold"` // Adjacent-delta threshold used

	Segments []Segment `json:"segments"`

	CategoryAverages Breakdown `json:"category_averages"` // Document-wide mean per category
	Spikes           []Spike   `json:"spikes,omitempty"`
	Findings         Findings  `json:"findings"`
	Summary          Summary   `json:"summary"`
}
