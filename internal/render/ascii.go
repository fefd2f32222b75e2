package render

import (
	"fmt"
	"strings"

	"github.com/lucidity/beatmap/internal/model"
	"github.com/lucidity/beatmap/internal/score"
)

// asciiNoData is returned when no analysis has been run yet.
const asciiNoData = "No beat map data available. Run analysis first."

// minASCIIWidth keeps the bar regions positive; narrower reports would
// collapse the label columns into the bars.
const minASCIIWidth = 40

// ASCII renders the boxed fixed-width beat map report. Every interior line
// is padded to exactly cfg.Width printable characters; ANSI escapes are not
// counted toward the width.
func ASCII(segments []model.Segment, cfg Config) string {
	if len(segments) == 0 {
		return asciiNoData
	}
	if cfg.Width < minASCIIWidth {
		cfg.Width = minASCIIWidth
	}

	var lines []string
	lines = append(lines, "╔"+strings.Repeat("═", cfg.Width)+"╗")
	lines = append(lines, boxText(cfg, "BEAT MAP ANALYSIS"))
	lines = append(lines, "╠"+strings.Repeat("═", cfg.Width)+"╣")
	lines = append(lines, boxText(cfg, ""))

	// Timeline and degradation bars share a label column of 15 characters
	// plus surrounding brackets.
	barWidth := cfg.Width - 19
	lines = append(lines, boxText(cfg, "Document Flow: ["+strings.Repeat("█", barWidth)+"]"))
	lines = append(lines, boxText(cfg, ""))
	lines = append(lines, boxText(cfg, "Degradation:   ["+degradationBar(segments, barWidth, cfg)+"]"))

	spikes := score.DetectSpikes(segments, cfg.SpikeThreshold)
	if len(spikes) > 0 {
		markerLine := blankLine(cfg.Width - 2)
		pctLine := blankLine(cfg.Width - 2)
		for _, sp := range spikes {
			at := 15 + int(sp.Position*float64(cfg.Width-20))
			overlay(markerLine, "↑ Spike", at)
			overlay(pctLine, fmt.Sprintf("@ %d%%", int(sp.Percent)), at)
		}
		lines = append(lines, boxText(cfg, string(markerLine)))
		lines = append(lines, boxText(cfg, string(pctLine)))
	}

	lines = append(lines, boxText(cfg, ""))
	lines = append(lines, boxText(cfg, "Category Breakdown:"))

	avgs := score.CategoryAverages(segments)
	for _, cat := range model.Categories() {
		avg := avgs[cat]
		tier := TierFor(avg)
		line := fmt.Sprintf("%s: [%s] %3.0f%% (%s)",
			cat.Abbrev(),
			categoryBar(segments, cat, cfg.Width-30),
			avg,
			cfg.colorize(tier.Label(), tier))
		lines = append(lines, boxText(cfg, line))
	}

	lines = append(lines, boxText(cfg, ""))

	findings := score.GenerateFindings(avgs, segments)
	for _, text := range wrapLine("Key Finding: "+findings.Key, cfg.Width-2) {
		lines = append(lines, boxText(cfg, text))
	}
	for _, text := range wrapLine("Recommendation: "+findings.Recommendation, cfg.Width-2) {
		lines = append(lines, boxText(cfg, text))
	}
	lines = append(lines, "╚"+strings.Repeat("═", cfg.Width)+"╝")

	return strings.Join(lines, "\n")
}

// boxText wraps text in the border glyphs, padded to the interior width.
func boxText(cfg Config, text string) string {
	return "║ " + padVisible(text, cfg.Width-2) + " ║"
}

// wrapLine word-wraps text into lines of at most width printable
// characters, so finding text longer than the box interior carries over
// instead of being cut off. Continuation lines are indented two spaces.
// A single word longer than width is left intact for padVisible to clip.
func wrapLine(text string, width int) []string {
	if len([]rune(text)) <= width {
		return []string{text}
	}
	var lines []string
	cur := ""
	for _, word := range strings.Fields(text) {
		joined := word
		if cur != "" {
			joined = cur + " " + word
		}
		if len([]rune(joined)) > width && cur != "" {
			lines = append(lines, cur)
			cur = "  " + word
			continue
		}
		cur = joined
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// blankLine returns a rune buffer of spaces for marker overlays.
func blankLine(width int) []rune {
	buf := make([]rune, width)
	for i := range buf {
		buf[i] = ' '
	}
	return buf
}

// overlay writes s into buf starting at index at, clipping at both ends.
func overlay(buf []rune, s string, at int) {
	for i, r := range []rune(s) {
		if at+i >= 0 && at+i < len(buf) {
			buf[at+i] = r
		}
	}
}

// degradationBar builds the intensity bar, one density glyph run per
// segment, colored by tier. The bar is padded to exactly width printable
// characters.
func degradationBar(segments []model.Segment, width int, cfg Config) string {
	segWidth := width / len(segments)
	var b strings.Builder
	for _, seg := range segments {
		if segWidth == 0 {
			break
		}
		tier := TierFor(seg.Score)
		b.WriteString(cfg.colorize(strings.Repeat(string(tier.Glyph()), segWidth), tier))
	}
	return padVisible(b.String(), width)
}

// categoryBar builds the binary high/low bar for one category: a full block
// where the segment's category score exceeds 50, a light shade otherwise.
func categoryBar(segments []model.Segment, cat model.Category, width int) string {
	segWidth := width / len(segments)
	if segWidth < 1 {
		segWidth = 1
	}
	var b strings.Builder
	for _, seg := range segments {
		glyph := '░'
		if seg.Breakdown[cat] > 50 {
			glyph = '█'
		}
		for i := 0; i < segWidth; i++ {
			b.WriteRune(glyph)
		}
	}
	runes := []rune(b.String())
	if len(runes) > width {
		runes = runes[:width]
	}
	for len(runes) < width {
		runes = append(runes, '░')
	}
	return string(runes)
}
