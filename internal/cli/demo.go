package cli

import (
	"fmt"
	"strings"

	"github.com/lucidity/beatmap/internal/model"
	"github.com/lucidity/beatmap/internal/pipeline"
	"github.com/lucidity/beatmap/internal/render"
	"github.com/spf13/cobra"
)

// demoSample is a deliberately degraded text block: repetitive, vague, and
// progressively losing intent. The demo repeats it to build a longer
// document.
const demoSample = `
Artificial intelligence is transforming the world. AI is changing everything.
Machine learning models are very powerful. They can do many things. They are useful
for various applications. Many people use AI systems. These systems are increasingly
common. They help with tasks. AI helps people. It's important to understand AI.
Understanding is key. Knowledge is power. We should learn more. Education matters.
The future is AI. AI is the future. Technology advances. Progress continues.
Innovation happens. Change occurs. Things evolve. Development proceeds. Growth happens.
`

var demoHTMLOut string

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a demonstration analysis on sample degraded content",
	Long: `Demo analyzes a built-in sample of degraded AI output with a fixed
advisory degradation payload, prints the ASCII beat map and meeting-mode
summary, and writes an HTML version to disk.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoHTMLOut, "html-out", "beatmap_demo.html", "output path for the HTML demo page")
}

func runDemo(cmd *cobra.Command, args []string) error {
	content := strings.Repeat(demoSample, 5)

	// Advisory document-level scores, as a real analysis backend would
	// supply them. The heuristic strategy accepts but does not read these.
	data := &model.DegradationData{
		OverallScore: 67.5,
		Categories: map[string]float64{
			model.Repetition.String():          45.2,
			model.Vagueness.String():           78.3,
			model.IntentDecay.String():         52.1,
			model.ConfidenceInflation.String(): 23.4,
			model.VoiceDegradation.String():    34.6,
			model.EntropyCollapse.String():     71.2,
		},
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("Beatmap - Demonstration Mode")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println()

	cfg := loadConfig()
	bm := pipeline.New(cfg)

	fmt.Println("Analyzing content...")
	if _, err := bm.Analyze(content, data); err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	fmt.Println()
	fmt.Println(bm.RenderASCII())

	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("MEETING MODE SUMMARY")
	fmt.Println(strings.Repeat("=", 70))

	summary := bm.MeetingSummary()
	fmt.Println()
	fmt.Println("60-Second Summary:")
	fmt.Printf("   %s\n", summary.Summary)
	fmt.Println()
	fmt.Println("Key Finding:")
	fmt.Printf("   %s\n", summary.Finding)
	fmt.Println()
	fmt.Println("Action Item:")
	fmt.Printf("   %s\n", summary.Action)
	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println()

	page := render.HTMLPage(bm.RenderHTML())
	if err := pipeline.WriteText(page, demoHTMLOut); err != nil {
		return fmt.Errorf("write HTML demo: %w", err)
	}

	fmt.Printf("✓ HTML demo saved to: %s\n", demoHTMLOut)
	fmt.Println("  Open in a browser to see the interactive visualization")
	fmt.Println()

	return nil
}
