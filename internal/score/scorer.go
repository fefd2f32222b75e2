// Package score turns segment text into degradation scores and derives
// document-wide diagnostics (spikes, category averages, findings) from the
// ordered segment list.
package score

import (
	"github.com/lucidity/beatmap/internal/model"
	"github.com/lucidity/beatmap/internal/segment"
)

// Scorer builds scored segments from spans using a pluggable strategy.
type Scorer struct {
	strategy Strategy
}

// NewScorer creates a scorer backed by the given strategy. A nil strategy
// falls back to the built-in positional heuristic.
func NewScorer(strategy Strategy) *Scorer {
	if strategy == nil {
		strategy = NewHeuristic()
	}
	return &Scorer{strategy: strategy}
}

// Calculate scores one segment. The overall score is always recomputed as
// the mean of the breakdown; breakdown values are clamped to [0,100]
// regardless of what the strategy produced.
func (s *Scorer) Calculate(span segment.Span, text string, data *model.DegradationData, position float64) model.Segment {
	b := s.strategy.Score(text, data, position)
	for i := range b {
		if b[i] < 0 {
			b[i] = 0
		} else if b[i] > 100 {
			b[i] = 100
		}
	}

	overall := b.Mean()
	return model.Segment{
		Start:      span.Start,
		End:        span.End,
		Score:      overall,
		Primary:    b.Primary(),
		Confidence: model.ConfidenceFor(overall),
		Breakdown:  b,
	}
}
