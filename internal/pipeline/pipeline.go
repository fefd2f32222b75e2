// Package pipeline orchestrates the beat map analysis: segmentation,
// scoring, storage of the segment list, and rendering.
package pipeline

import (
	"encoding/json"
	"time"

	"github.com/lucidity/beatmap/internal/cache"
	"github.com/lucidity/beatmap/internal/model"
	"github.com/lucidity/beatmap/internal/render"
	"github.com/lucidity/beatmap/internal/score"
	"github.com/lucidity/beatmap/internal/segment"
)

// BeatMap runs analyses and renders their results. It owns the segment list
// produced by the last Analyze call; renderers only read it. Analyze and the
// render methods are expected to run on one logical thread of control --
// concurrent renders are safe as long as no Analyze is in flight.
type BeatMap struct {
	segmentCount int
	threshold    float64
	scorer       *score.Scorer
	cache        cache.Cache // nil when caching is disabled
	renderCfg    render.Config

	segments []model.Segment
}

// New creates a beat map using the built-in heuristic scoring strategy.
func New(cfg *model.Config) *BeatMap {
	return NewWithStrategy(cfg, nil)
}

// NewWithStrategy creates a beat map with a custom scoring strategy, the
// seam where a real analysis backend plugs in. A nil strategy selects the
// positional heuristic.
func NewWithStrategy(cfg *model.Config, strategy score.Strategy) *BeatMap {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}
	return &BeatMap{
		segmentCount: cfg.Analysis.SegmentCount,
		threshold:    cfg.Analysis.SpikeThreshold,
		scorer:       score.NewScorer(strategy),
		cache:        c,
		renderCfg: render.Config{
			Width:          cfg.Render.Width,
			UseColor:       cfg.Render.UseColor,
			SpikeThreshold: cfg.Analysis.SpikeThreshold,
		},
	}
}

// Analyze splits content into segments, scores each one, and stores the
// resulting list, replacing any previous one wholesale. data is the advisory
// payload handed through to the scoring strategy.
func (b *BeatMap) Analyze(content string, data *model.DegradationData) ([]model.Segment, error) {
	key := cache.Key(content, b.segmentCount, b.threshold)
	if b.cache != nil {
		if raw, ok := b.cache.Get(key); ok {
			var segs []model.Segment
			if err := json.Unmarshal(raw, &segs); err == nil {
				b.segments = segs
				return segs, nil
			}
			_ = b.cache.Delete(key)
		}
	}

	spans, err := segment.Split(len(content), b.segmentCount)
	if err != nil {
		return nil, err
	}

	segs := make([]model.Segment, len(spans))
	for i, span := range spans {
		position := float64(i) / float64(b.segmentCount)
		segs[i] = b.scorer.Calculate(span, content[span.Start:span.End], data, position)
	}

	if b.cache != nil {
		if raw, err := json.Marshal(segs); err == nil {
			_ = b.cache.Set(key, raw)
		}
	}

	b.segments = segs
	return segs, nil
}

// Segments returns the segment list stored by the last Analyze call.
func (b *BeatMap) Segments() []model.Segment {
	return b.segments
}

// RenderASCII renders the fixed-width terminal report.
func (b *BeatMap) RenderASCII() string {
	return render.ASCII(b.segments, b.renderCfg)
}

// RenderHTML renders the self-contained HTML fragment.
func (b *BeatMap) RenderHTML() string {
	return render.HTML(b.segments)
}

// MeetingSummary renders the meeting-ready digest.
func (b *BeatMap) MeetingSummary() model.Summary {
	return render.MeetingSummary(b.segments, b.threshold)
}

// Report assembles the complete analysis artifact for JSON output.
func (b *BeatMap) Report(source string, contentLen int) *model.Report {
	avgs := score.CategoryAverages(b.segments)
	return &model.Report{
		Source:           source,
		AnalyzedAt:       time.Now().UTC(),
		ContentLength:    contentLen,
		SegmentCount:     b.segmentCount,
		SpikeThreshold:   b.threshold,
		Segments:         b.segments,
		CategoryAverages: avgs,
		Spikes:           score.DetectSpikes(b.segments, b.threshold),
		Findings:         score.GenerateFindings(avgs, b.segments),
		Summary:          render.MeetingSummary(b.segments, b.threshold),
	}
}
