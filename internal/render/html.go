package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/lucidity/beatmap/internal/model"
	"github.com/lucidity/beatmap/internal/score"
)

// htmlNoData is returned when no analysis has been run yet.
const htmlNoData = "<p>No beat map data available.</p>"

// HTML renders the beat map as a self-contained markup fragment. All styling
// is inline; the only scripting is the opacity toggle on segment hover.
func HTML(segments []model.Segment) string {
	if len(segments) == 0 {
		return htmlNoData
	}

	var b strings.Builder

	b.WriteString(`<div id="beatmap-container" style="font-family: 'Courier New', monospace; background: #1a1a1a; color: #00ff00; padding: 20px; border-radius: 8px;">` + "\n")
	b.WriteString(`<h2 style="text-align: center; color: #00ff00; margin-bottom: 20px;">BEAT MAP</h2>` + "\n")

	// Overall timeline: one colored block per segment.
	b.WriteString(`<div id="timeline" style="margin: 20px 0;">` + "\n")
	b.WriteString(`<div style="display: flex; align-items: center; margin-bottom: 10px;">` + "\n")
	b.WriteString(`<span style="width: 150px;">Overall Flow:</span>` + "\n")
	b.WriteString(`<div style="flex: 1; height: 30px; background: #333; border-radius: 4px; overflow: hidden;">` + "\n")

	widthPct := 100.0 / float64(len(segments))
	for i, seg := range segments {
		fmt.Fprintf(&b,
			`<div style="display: inline-block; width: %.4f%%; height: 100%%; background: %s; cursor: pointer;" title="Segment %d: %.1f%% degradation - %s" onmouseover="this.style.opacity='0.7'" onmouseout="this.style.opacity='1'"></div>`+"\n",
			widthPct, TierFor(seg.Score).Hex(), i+1, seg.Score, html.EscapeString(seg.Primary.String()))
	}

	b.WriteString("</div>\n</div>\n</div>\n")

	// Per-category proportional bars.
	avgs := score.CategoryAverages(segments)
	b.WriteString(`<div id="categories" style="margin: 20px 0;">` + "\n")
	for _, cat := range model.Categories() {
		avg := avgs[cat]
		tier := TierFor(avg)
		b.WriteString(`<div style="display: flex; align-items: center; margin: 5px 0;">` + "\n")
		fmt.Fprintf(&b, `<span style="width: 150px; font-weight: bold;">%s:</span>`+"\n", cat.Abbrev())
		b.WriteString(`<div style="flex: 1; height: 20px; background: #333; border-radius: 4px; overflow: hidden;">` + "\n")
		fmt.Fprintf(&b, `<div style="width: %.1f%%; height: 100%%; background: %s;"></div>`+"\n", avg, tier.Hex())
		b.WriteString("</div>\n")
		fmt.Fprintf(&b, `<span style="width: 100px; text-align: right; margin-left: 10px;">%.0f%% %s</span>`+"\n", avg, tier.Label())
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")

	// Findings callout.
	findings := score.GenerateFindings(avgs, segments)
	b.WriteString(`<div id="insights" style="margin-top: 30px; padding: 15px; background: #2a2a2a; border-left: 4px solid #00ff00; border-radius: 4px;">` + "\n")
	fmt.Fprintf(&b, `<p style="margin: 5px 0;"><strong>Key Finding:</strong> %s</p>`+"\n", html.EscapeString(findings.Key))
	fmt.Fprintf(&b, `<p style="margin: 5px 0;"><strong>Recommendation:</strong> %s</p>`+"\n", html.EscapeString(findings.Recommendation))
	b.WriteString("</div>\n</div>\n")

	return b.String()
}

// HTMLPage wraps the fragment in a standalone document shell for the demo
// file output.
func HTMLPage(fragment string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<title>Beat Map</title>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<style>\nbody { font-family: Arial, sans-serif; margin: 20px; background: #f0f0f0; }\n.container { max-width: 1200px; margin: 0 auto; }\n</style>\n")
	b.WriteString("</head>\n<body>\n<div class=\"container\">\n")
	b.WriteString("<h1 style=\"text-align: center;\">Beat Map</h1>\n")
	b.WriteString(fragment)
	b.WriteString("\n</div>\n</body>\n</html>\n")
	return b.String()
}
