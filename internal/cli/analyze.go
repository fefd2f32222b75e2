package cli

import (
	"fmt"
	"os"

	"github.com/lucidity/beatmap/internal/pipeline"
	"github.com/lucidity/beatmap/internal/render"
	"github.com/spf13/cobra"
)

var (
	segmentCount   int
	spikeThreshold float64
	asciiWidth     int
	noColor        bool
	noCache        bool
	outJSON        string
	outHTML        string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a content file and render its degradation beat map",
	Long: `Analyze reads a text file and:
- Divides it into fixed-count timeline segments
- Scores every segment across the six degradation categories
- Detects abrupt degradation spikes between adjacent segments
- Prints the ASCII beat map and meeting summary to stdout

Example:
  beatmap analyze draft.txt
  beatmap analyze draft.txt --segments 40 --width 80 --no-color
  beatmap analyze draft.txt --json report.json --html report.html`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Analysis flags
	analyzeCmd.Flags().IntVar(&segmentCount, "segments", 20, "number of timeline segments")
	analyzeCmd.Flags().Float64Var(&spikeThreshold, "threshold", 20.0, "spike detection threshold (score delta)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis result cache")

	// Render flags
	analyzeCmd.Flags().IntVar(&asciiWidth, "width", 60, "interior width of the ASCII report")
	analyzeCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors in terminal output")

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	analyzeCmd.Flags().StringVar(&outHTML, "html", "", "output HTML page path (optional)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}
	content := string(raw)

	// Build configuration: file/env values, then explicit flags on top.
	cfg := loadConfig()
	if cmd.Flags().Changed("segments") {
		cfg.Analysis.SegmentCount = segmentCount
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Analysis.SpikeThreshold = spikeThreshold
	}
	if cmd.Flags().Changed("width") {
		cfg.Render.Width = asciiWidth
	}
	if noColor {
		cfg.Render.UseColor = false
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s (%d characters)\n", path, len(content))
		fmt.Fprintf(os.Stderr, "Segments:  %d\n", cfg.Analysis.SegmentCount)
		fmt.Fprintf(os.Stderr, "Threshold: %.1f\n", cfg.Analysis.SpikeThreshold)
		fmt.Fprintln(os.Stderr)
	}

	bm := pipeline.New(cfg)
	segments, err := bm.Analyze(content, nil)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	report := bm.Report(path, len(content))

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Scored %d segments\n", len(segments))
		fmt.Fprintf(os.Stderr, "✓ Detected %d degradation spike(s)\n", len(report.Spikes))
		fmt.Fprintln(os.Stderr)
	}

	// ASCII report and meeting summary to stdout.
	fmt.Println(bm.RenderASCII())
	fmt.Println()

	summary := bm.MeetingSummary()
	fmt.Printf("Summary:        %s\n", summary.Summary)
	fmt.Printf("Key Finding:    %s\n", summary.Finding)
	fmt.Printf("Action:         %s\n", summary.Action)

	if outJSON != "" {
		if err := pipeline.WriteJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	if outHTML != "" {
		page := render.HTMLPage(bm.RenderHTML())
		if err := pipeline.WriteText(page, outHTML); err != nil {
			return fmt.Errorf("render HTML: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote HTML: %s\n", outHTML)
		}
	}

	return nil
}
