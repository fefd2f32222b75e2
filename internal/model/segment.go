package model

// Confidence labels for a segment's score. "High" marks scores near either
// extreme, where the heuristics separate cleanly; everything else is "Medium".
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
)

// ConfidenceFor returns the confidence label for an overall score.
func ConfidenceFor(overall float64) string {
	if overall < 30 || overall > 70 {
		return ConfidenceHigh
	}
	return ConfidenceMedium
}

// Segment is one contiguous character range of the analyzed content with its
// degradation scores. Segments are value objects: an analysis pass produces a
// complete list and replaces it wholesale on the next run, nothing mutates a
// segment after creation.
type Segment struct {
	Start      int       `json:"start"`      // Half-open start offset into the content
	End        int       `json:"end"`        // Half-open end offset into the content
	Score      float64   `json:"score"`      // Overall score: mean of the six breakdown values
	Primary    Category  `json:"primary"`    // Category most responsible for degradation here
	Confidence string    `json:"confidence"` // "High" or "Medium"
	Breakdown  Breakdown `json:"breakdown"`  // Per-category scores, all six always present
}

// DegradationData is the advisory payload from an upstream analysis engine.
// The built-in positional heuristics accept but do not read it; a real
// analysis backend is expected to populate document-level category scores
// here and consume them from its own scoring strategy.
type DegradationData struct {
	OverallScore float64            `json:"overall_score"`
	Categories   map[string]float64 `json:"categories,omitempty"`
}
