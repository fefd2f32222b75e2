package score

import (
	"math"
	"testing"

	"github.com/lucidity/beatmap/internal/model"
)

func TestHeuristic_PositionZero(t *testing.T) {
	h := NewHeuristic()
	b := h.Score("alpha beta gamma", nil, 0)

	if b[model.Repetition] != 100 {
		t.Errorf("Repetition: expected 100 for all-unique words, got %.2f", b[model.Repetition])
	}
	if b[model.Vagueness] != 80 {
		t.Errorf("Vagueness: expected 80 at position 0, got %.2f", b[model.Vagueness])
	}
	if b[model.IntentDecay] != 0 {
		t.Errorf("Intent Decay: expected 0 at position 0, got %.2f", b[model.IntentDecay])
	}
	if b[model.ConfidenceInflation] != 40 {
		t.Errorf("Confidence Inflation: expected 40 at position 0, got %.2f", b[model.ConfidenceInflation])
	}
	if b[model.VoiceDegradation] != 5 {
		t.Errorf("Voice Degradation: expected flat 5 before 0.7, got %.2f", b[model.VoiceDegradation])
	}
	if b[model.EntropyCollapse] != 60 {
		t.Errorf("Entropy Collapse: expected 60 at position 0, got %.2f", b[model.EntropyCollapse])
	}
}

func TestHeuristic_PositionFormulas(t *testing.T) {
	h := NewHeuristic()

	positions := []float64{0.05, 0.25, 0.45, 0.5, 0.75, 0.95}
	for _, pos := range positions {
		b := h.Score("one two three", nil, pos)

		wantVague := 20.0
		if pos < 0.5 {
			wantVague = math.Max(0, 80-pos*60)
		}
		if b[model.Vagueness] != wantVague {
			t.Errorf("pos %.2f: Vagueness = %.2f, want %.2f", pos, b[model.Vagueness], wantVague)
		}

		wantIntent := math.Min(100, pos*120)
		if b[model.IntentDecay] != wantIntent {
			t.Errorf("pos %.2f: Intent Decay = %.2f, want %.2f", pos, b[model.IntentDecay], wantIntent)
		}

		wantConf := 30 + 20*math.Abs(0.5-math.Mod(pos, 0.25)*4)
		if b[model.ConfidenceInflation] != wantConf {
			t.Errorf("pos %.2f: Confidence Inflation = %.2f, want %.2f", pos, b[model.ConfidenceInflation], wantConf)
		}

		wantVoice := 5.0
		if pos > 0.7 {
			wantVoice = math.Max(0, (pos-0.7)*200)
		}
		if b[model.VoiceDegradation] != wantVoice {
			t.Errorf("pos %.2f: Voice Degradation = %.2f, want %.2f", pos, b[model.VoiceDegradation], wantVoice)
		}

		wantEntropy := math.Max(0, 60-pos*50)
		if b[model.EntropyCollapse] != wantEntropy {
			t.Errorf("pos %.2f: Entropy Collapse = %.2f, want %.2f", pos, b[model.EntropyCollapse], wantEntropy)
		}
	}
}

func TestHeuristic_RepetitionRatio(t *testing.T) {
	h := NewHeuristic()

	// 2 distinct words out of 4 total.
	b := h.Score("the cat the cat", nil, 0.1)
	if b[model.Repetition] != 50 {
		t.Errorf("Repetition: expected 50 for ratio 2/4, got %.2f", b[model.Repetition])
	}

	// Empty segment text must not divide by zero.
	b = h.Score("", nil, 0.1)
	if b[model.Repetition] != 0 {
		t.Errorf("Repetition: expected 0 for empty text, got %.2f", b[model.Repetition])
	}
}

func TestHeuristic_AllValuesInRange(t *testing.T) {
	h := NewHeuristic()
	for i := 0; i < 100; i++ {
		pos := float64(i) / 100
		b := h.Score("some words here and there", nil, pos)
		for cat, v := range b {
			if v < 0 || v > 100 {
				t.Errorf("pos %.2f: %s = %.2f out of [0,100]", pos, model.Category(cat), v)
			}
		}
	}
}
