package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCategories_ClosedOrderedSet(t *testing.T) {
	cats := Categories()
	if len(cats) != 6 {
		t.Fatalf("Expected 6 categories, got %d", len(cats))
	}

	wantOrder := []string{
		"Repetition",
		"Vagueness",
		"Intent Decay",
		"Confidence Inflation",
		"Voice Degradation",
		"Entropy Collapse",
	}
	for i, cat := range cats {
		if cat.String() != wantOrder[i] {
			t.Errorf("Category %d = %q, want %q", i, cat.String(), wantOrder[i])
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories() {
		parsed, err := ParseCategory(cat.String())
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", cat.String(), err)
		}
		if parsed != cat {
			t.Errorf("ParseCategory(%q) = %v, want %v", cat.String(), parsed, cat)
		}
	}

	if _, err := ParseCategory("Nonsense"); err == nil {
		t.Error("Expected error for unknown category name")
	}
}

func TestBreakdown_PrimaryTieBreaksByDeclarationOrder(t *testing.T) {
	var b Breakdown
	for i := range b {
		b[i] = 42
	}
	if got := b.Primary(); got != Repetition {
		t.Errorf("All-equal breakdown: Primary = %s, want Repetition", got)
	}

	b[VoiceDegradation] = 43
	if got := b.Primary(); got != VoiceDegradation {
		t.Errorf("Primary = %s, want Voice Degradation", got)
	}
}

func TestBreakdown_Mean(t *testing.T) {
	b := Breakdown{60, 60, 60, 60, 60, 60}
	if got := b.Mean(); got != 60 {
		t.Errorf("Mean = %.2f, want 60", got)
	}
}

func TestBreakdown_JSONRoundTrip(t *testing.T) {
	b := Breakdown{10, 20, 30, 40, 50, 60}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// Wire form is a name-keyed object with all six categories present.
	s := string(data)
	for _, cat := range Categories() {
		if !strings.Contains(s, `"`+cat.String()+`"`) {
			t.Errorf("Marshaled breakdown missing key %q: %s", cat.String(), s)
		}
	}

	var back Breakdown
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != b {
		t.Errorf("Round trip mismatch: got %v, want %v", back, b)
	}
}

func TestSegment_JSONRoundTrip(t *testing.T) {
	seg := Segment{
		Start:      100,
		End:        150,
		Score:      47.5,
		Primary:    IntentDecay,
		Confidence: ConfidenceMedium,
		Breakdown:  Breakdown{10, 20, 95, 40, 50, 60},
	}

	data, err := json.Marshal(seg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"primary":"Intent Decay"`) {
		t.Errorf("Primary not encoded as display name: %s", data)
	}

	var back Segment
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != seg {
		t.Errorf("Round trip mismatch: got %+v, want %+v", back, seg)
	}
}
