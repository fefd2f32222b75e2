package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/lucidity/beatmap/internal/pipeline"
	"github.com/lucidity/beatmap/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple content files from a list in parallel",
	Long: `Batch processes multiple content files concurrently:
- Read file paths from the input file (one per line, # comments allowed)
- Analyze files in parallel with a configurable worker count
- Write one JSON report per file into the output directory

Example:
  beatmap batch files.txt
  beatmap batch files.txt --concurrency 10 --output-dir ./reports
  beatmap batch files.txt --segments 40 --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./beatmap-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().IntVar(&segmentCount, "segments", 20, "number of timeline segments")
	batchCmd.Flags().Float64Var(&spikeThreshold, "threshold", 20.0, "spike detection threshold (score delta)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis result cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	paths, err := worker.ReadPathsFile(file)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no content paths found in %s", file)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Beatmap Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Files:        %d\n", len(paths))
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg := loadConfig()
	if cmd.Flags().Changed("segments") {
		cfg.Analysis.SegmentCount = segmentCount
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Analysis.SpikeThreshold = spikeThreshold
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(cfg, concurrency)
	results := processor.ProcessFiles(ctx, paths)

	succeeded := 0
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", res.Path, res.Err)
			continue
		}

		outPath := filepath.Join(outputDir, filepath.Base(res.Path)+".json")
		if err := pipeline.WriteJSON(res.Report, outPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", res.Path, err)
			continue
		}

		succeeded++
		fmt.Fprintf(os.Stderr, "  ✓ %s → %s\n", res.Path, outPath)
	}

	if skipped := len(paths) - len(results); skipped > 0 {
		failed += skipped
		fmt.Fprintf(os.Stderr, "  ✗ %d file(s) not processed before the timeout\n", skipped)
	}

	fmt.Fprintf(os.Stderr, "\nProcessed %d of %d file(s): %d succeeded, %d failed\n", len(results), len(paths), succeeded, failed)

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}
