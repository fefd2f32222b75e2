// Package render turns a scored segment list into presentation output:
// a fixed-width ASCII report, a self-contained HTML fragment, or a
// meeting-ready summary. Renderers are pure functions of their inputs.
package render

import "strings"

// Config carries presentation settings. Renderers take it by value, so
// callers with different widths or color settings never interfere.
type Config struct {
	Width          int     // Interior width of the ASCII report in printable characters
	UseColor       bool    // Emit ANSI color codes in the ASCII report
	SpikeThreshold float64 // Adjacent-delta threshold for spike markers
}

// DefaultConfig returns the standard render settings.
func DefaultConfig() Config {
	return Config{
		Width:          60,
		UseColor:       true,
		SpikeThreshold: 20.0,
	}
}

// ANSI escape codes for terminal output.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiGreen  = "\033[92m"
	ansiYellow = "\033[93m"
	ansiOrange = "\033[38;5;208m"
	ansiRed    = "\033[91m"
)

// Tier is the four-step severity scale shared by bar glyphs, terminal
// colors, HTML block colors, and status labels.
type Tier int

const (
	TierGood Tier = iota
	TierCaution
	TierWarning
	TierAlert
)

// TierFor maps a 0-100 score onto the severity scale.
func TierFor(score float64) Tier {
	switch {
	case score < 25:
		return TierGood
	case score < 50:
		return TierCaution
	case score < 75:
		return TierWarning
	default:
		return TierAlert
	}
}

var (
	tierGlyphs = [...]rune{'░', '▒', '▓', '█'}
	tierLabels = [...]string{"Good", "Caution", "Warning", "Alert!"}
	tierANSI   = [...]string{ansiGreen, ansiYellow, ansiOrange, ansiRed}
	tierHex    = [...]string{"#00ff00", "#ffff00", "#ff8800", "#ff0000"}
)

// Glyph returns the density glyph for the tier.
func (t Tier) Glyph() rune { return tierGlyphs[t] }

// Label returns the status label for the tier.
func (t Tier) Label() string { return tierLabels[t] }

// Hex returns the HTML color for the tier.
func (t Tier) Hex() string { return tierHex[t] }

// colorize wraps text in the tier's ANSI color when colors are enabled.
func (c Config) colorize(text string, tier Tier) string {
	if !c.UseColor {
		return text
	}
	return tierANSI[tier] + text + ansiReset
}

// visibleLen counts printable characters, skipping ANSI escape sequences.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\033':
			inEscape = true
		default:
			n++
		}
	}
	return n
}

// padVisible pads (or truncates, ignoring trailing color state) text to
// exactly width printable characters.
func padVisible(text string, width int) string {
	n := visibleLen(text)
	if n < width {
		return text + strings.Repeat(" ", width-n)
	}
	if n > width {
		return truncateVisible(text, width)
	}
	return text
}

// truncateVisible cuts text to width printable characters, preserving any
// escape sequences seen so far and closing color state at the end.
func truncateVisible(s string, width int) string {
	var b strings.Builder
	n := 0
	inEscape := false
	sawEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			b.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
		case r == '\033':
			inEscape = true
			sawEscape = true
			b.WriteRune(r)
		default:
			if n == width {
				continue
			}
			b.WriteRune(r)
			n++
		}
	}
	out := b.String()
	if sawEscape && !strings.HasSuffix(out, ansiReset) {
		out += ansiReset
	}
	return out
}
