package render

import (
	"fmt"
	"strings"

	"github.com/lucidity/beatmap/internal/model"
	"github.com/lucidity/beatmap/internal/score"
)

// MeetingSummary produces the meeting-ready digest: segment count, mean
// degradation, the most frequent primary issue, spike positions if any, and
// the finding/recommendation verbatim.
func MeetingSummary(segments []model.Segment, threshold float64) model.Summary {
	if len(segments) == 0 {
		return model.Summary{
			Summary: "No analysis available",
			Finding: "Run analysis first",
			Action:  "Execute beat map analysis",
		}
	}

	avgScore := score.MeanScore(segments)
	topIssue := modePrimary(segments)
	spikes := score.DetectSpikes(segments, threshold)
	avgs := score.CategoryAverages(segments)
	findings := score.GenerateFindings(avgs, segments)

	var b strings.Builder
	fmt.Fprintf(&b, "Analysis of %d segments shows %.0f%% average degradation. ", len(segments), avgScore)
	fmt.Fprintf(&b, "Primary concern: %s. ", topIssue)

	if len(spikes) > 0 {
		positions := make([]string, len(spikes))
		for i, sp := range spikes {
			positions[i] = fmt.Sprintf("%d%%", int(sp.Percent))
		}
		fmt.Fprintf(&b, "Detected %d degradation spike(s) at %s. ", len(spikes), strings.Join(positions, ", "))
	}

	return model.Summary{
		Summary: b.String(),
		Finding: findings.Key,
		Action:  findings.Recommendation,
	}
}

// modePrimary returns the most frequent primary category across segments.
// Ties go to the category encountered first in segment order.
func modePrimary(segments []model.Segment) model.Category {
	counts := make(map[model.Category]int)
	for _, seg := range segments {
		counts[seg.Primary]++
	}

	best := segments[0].Primary
	for _, seg := range segments {
		if counts[seg.Primary] > counts[best] {
			best = seg.Primary
		}
	}
	return best
}
