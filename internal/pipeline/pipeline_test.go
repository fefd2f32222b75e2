package pipeline

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/lucidity/beatmap/internal/model"
	"github.com/lucidity/beatmap/internal/score"
	"github.com/lucidity/beatmap/internal/segment"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return cfg
}

func TestBeatMap_Analyze_EndToEnd(t *testing.T) {
	bm := New(testConfig())

	content := strings.Repeat("x", 1000)
	segs, err := bm.Analyze(content, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(segs) != 20 {
		t.Fatalf("Expected 20 segments, got %d", len(segs))
	}
	for i, seg := range segs {
		if seg.End-seg.Start != 50 {
			t.Errorf("Segment %d: width %d, want 50", i, seg.End-seg.Start)
		}
		if seg.Score < 0 || seg.Score > 100 {
			t.Errorf("Segment %d: score %.2f out of range", i, seg.Score)
		}
		if got, want := seg.Score, seg.Breakdown.Mean(); math.Abs(got-want) > 1e-9 {
			t.Errorf("Segment %d: score %.4f != breakdown mean %.4f", i, got, want)
		}
	}

	// Category averages must be recomputable from the positional formulas.
	report := bm.Report("test", len(content))
	var wantIntent float64
	for i := 0; i < 20; i++ {
		pos := float64(i) / 20
		wantIntent += math.Min(100, pos*120)
	}
	wantIntent /= 20
	if got := report.CategoryAverages[model.IntentDecay]; math.Abs(got-wantIntent) > 1e-9 {
		t.Errorf("Intent Decay average = %.4f, want %.4f", got, wantIntent)
	}
}

func TestBeatMap_Analyze_EmptyContent(t *testing.T) {
	bm := New(testConfig())

	segs, err := bm.Analyze("", nil)
	if err != nil {
		t.Fatalf("Analyze on empty content: %v", err)
	}

	if len(segs) != 20 {
		t.Fatalf("Expected 20 segments, got %d", len(segs))
	}
	for i, seg := range segs {
		if seg.Start != 0 || seg.End != 0 {
			t.Errorf("Segment %d: expected degenerate range, got [%d,%d)", i, seg.Start, seg.End)
		}
		// Position-based scoring still proceeds.
		if seg.Confidence == "" {
			t.Errorf("Segment %d: missing confidence", i)
		}
	}
}

func TestBeatMap_Analyze_InvalidSegmentCount(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.SegmentCount = 0

	bm := New(cfg)
	if _, err := bm.Analyze("some content", nil); !errors.Is(err, segment.ErrInvalidCount) {
		t.Errorf("Expected ErrInvalidCount, got %v", err)
	}
}

func TestBeatMap_Analyze_ReplacesSegmentsWholesale(t *testing.T) {
	bm := New(testConfig())

	first, err := bm.Analyze(strings.Repeat("a b c ", 100), nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	second, err := bm.Analyze(strings.Repeat("z ", 400), nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if &first[0] == &second[0] {
		t.Error("Second analysis reused the first segment list")
	}
	if !reflect.DeepEqual(bm.Segments(), second) {
		t.Error("Stored segment list does not match the latest analysis")
	}
}

func TestBeatMap_Analyze_CacheHitMatchesFreshRun(t *testing.T) {
	cfg := model.DefaultConfig() // cache enabled
	bm := New(cfg)

	content := strings.Repeat("alpha beta gamma ", 60)
	first, err := bm.Analyze(content, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	second, err := bm.Analyze(content, nil)
	if err != nil {
		t.Fatalf("Analyze (cached): %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Cached analysis differs from fresh analysis")
	}
}

func TestBeatMap_Report_Consistency(t *testing.T) {
	bm := New(testConfig())

	content := strings.Repeat("word ", 200)
	if _, err := bm.Analyze(content, nil); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	report := bm.Report("draft.txt", len(content))

	if report.Source != "draft.txt" {
		t.Errorf("Source = %q", report.Source)
	}
	if report.ContentLength != len(content) {
		t.Errorf("ContentLength = %d, want %d", report.ContentLength, len(content))
	}
	if report.SegmentCount != 20 {
		t.Errorf("SegmentCount = %d, want 20", report.SegmentCount)
	}
	if len(report.Segments) != 20 {
		t.Errorf("Segments = %d, want 20", len(report.Segments))
	}

	wantSpikes := score.DetectSpikes(report.Segments, report.SpikeThreshold)
	if !reflect.DeepEqual(report.Spikes, wantSpikes) {
		t.Error("Report spikes do not match detector output")
	}
	if report.Findings.Key == "" || report.Findings.Recommendation == "" {
		t.Error("Report findings incomplete")
	}
	if report.Summary.Finding != report.Findings.Key {
		t.Error("Summary finding does not match report findings")
	}
}

func TestBeatMap_RenderersHandleNoAnalysis(t *testing.T) {
	bm := New(testConfig())

	if out := bm.RenderASCII(); !strings.Contains(out, "No beat map data") {
		t.Errorf("ASCII empty state: %q", out)
	}
	if out := bm.RenderHTML(); !strings.Contains(out, "No beat map data") {
		t.Errorf("HTML empty state: %q", out)
	}
	if s := bm.MeetingSummary(); s.Summary != "No analysis available" {
		t.Errorf("Summary empty state: %+v", s)
	}
}

func TestBeatMap_RenderIdempotent(t *testing.T) {
	bm := New(testConfig())
	if _, err := bm.Analyze(strings.Repeat("one two three ", 70), nil); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if bm.RenderASCII() != bm.RenderASCII() {
		t.Error("ASCII render not idempotent")
	}
	if bm.RenderHTML() != bm.RenderHTML() {
		t.Error("HTML render not idempotent")
	}
	if bm.MeetingSummary() != bm.MeetingSummary() {
		t.Error("Meeting summary not idempotent")
	}
}
