package score

import (
	"math"
	"strings"

	"github.com/lucidity/beatmap/internal/model"
)

// Strategy computes the per-category degradation breakdown for one segment.
// Implementations must be deterministic: the same inputs always yield the
// same breakdown.
//
// data carries document-level scores from an upstream analysis engine. The
// built-in heuristic accepts it without reading it; a real backend would
// blend it into the per-segment scores.
type Strategy interface {
	Score(text string, data *model.DegradationData, position float64) model.Breakdown
}

// Heuristic is the built-in positional scoring strategy. It derives each
// category from the segment's normalized position in the document plus a
// unique-token ratio, standing in for a real analysis engine.
type Heuristic struct{}

// NewHeuristic creates the positional heuristic strategy.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Score computes the six-category breakdown for a segment at the given
// normalized position (0..1).
func (h *Heuristic) Score(text string, _ *model.DegradationData, position float64) model.Breakdown {
	var b model.Breakdown

	// Repetition tracks the unique-token ratio of the segment text. An
	// empty segment counts as one word so the ratio stays defined.
	words := strings.Fields(text)
	total := len(words)
	if total == 0 {
		total = 1
	}
	distinct := make(map[string]struct{}, total)
	for _, w := range words {
		distinct[w] = struct{}{}
	}
	b[model.Repetition] = math.Min(100, float64(len(distinct))/float64(total)*100)

	// Vagueness is front-loaded: ramps down over the first half.
	if position < 0.5 {
		b[model.Vagueness] = math.Max(0, 80-position*60)
	} else {
		b[model.Vagueness] = 20
	}

	// Intent decay is back-loaded.
	b[model.IntentDecay] = math.Min(100, position*120)

	// Confidence inflation oscillates with a 0.25 period.
	b[model.ConfidenceInflation] = 30 + 20*math.Abs(0.5-math.Mod(position, 0.25)*4)

	// Voice degradation has late onset past the 70% mark.
	if position > 0.7 {
		b[model.VoiceDegradation] = math.Max(0, (position-0.7)*200)
	} else {
		b[model.VoiceDegradation] = 5
	}

	// Entropy collapse dominates early and fades.
	b[model.EntropyCollapse] = math.Max(0, 60-position*50)

	return b
}
