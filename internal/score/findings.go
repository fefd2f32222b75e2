package score

import (
	"fmt"

	"github.com/lucidity/beatmap/internal/model"
)

// recommendations maps each category to its fixed remediation sentence.
// Indexed by Category, so the table is exhaustive over the closed set with
// no fallback path.
var recommendations = [model.NumCategories]string{
	model.Repetition:          "Remove redundant content and vary phrasing",
	model.Vagueness:           "Add specific details and concrete examples",
	model.IntentDecay:         "Apply focused editing to restore original intent",
	model.ConfidenceInflation: "Moderate certainty claims with appropriate caveats",
	model.VoiceDegradation:    "Restore consistent tone and perspective",
	model.EntropyCollapse:     "Restructure content to maintain complexity",
}

// GenerateFindings derives the key finding and its recommendation from the
// worst-performing category and the position of peak degradation.
func GenerateFindings(averages model.Breakdown, segments []model.Segment) model.Findings {
	if len(segments) == 0 {
		return model.Findings{Key: "No data", Recommendation: "Run analysis"}
	}

	// Worst category: argmax over averages, declaration-order ties.
	worst := averages.Primary()
	worstAvg := averages[worst]

	// Peak segment: first index with the maximum overall score.
	peakIdx := 0
	for i := 1; i < len(segments); i++ {
		if segments[i].Score > segments[peakIdx].Score {
			peakIdx = i
		}
	}
	peakPct := int(float64(peakIdx) / float64(len(segments)) * 100)

	var key string
	if worstAvg > 60 {
		switch {
		case peakPct < 30:
			key = fmt.Sprintf("%s spikes in early sections", worst)
		case peakPct > 70:
			key = fmt.Sprintf("%s spikes in final sections", worst)
		default:
			key = fmt.Sprintf("%s spikes at %d%% mark", worst, peakPct)
		}
	} else {
		key = fmt.Sprintf("Moderate %s detected throughout", worst)
	}

	return model.Findings{
		Key:            key,
		Recommendation: recommendations[worst],
	}
}
