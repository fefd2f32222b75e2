package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lucidity/beatmap/internal/model"
	"github.com/lucidity/beatmap/internal/pipeline"
)

// AnalyzeJob analyzes one content file.
type AnalyzeJob struct {
	Path string
	Cfg  *model.Config
}

// AnalyzeResult is the outcome of one file analysis.
type AnalyzeResult struct {
	Path   string
	Report *model.Report
	Err    error
}

// Execute reads the file and runs a full analysis on a private BeatMap.
func (j AnalyzeJob) Execute(ctx context.Context) *AnalyzeResult {
	if err := ctx.Err(); err != nil {
		return &AnalyzeResult{Path: j.Path, Err: err}
	}

	data, err := os.ReadFile(j.Path)
	if err != nil {
		return &AnalyzeResult{Path: j.Path, Err: fmt.Errorf("read %s: %w", j.Path, err)}
	}

	bm := pipeline.New(j.Cfg)
	if _, err := bm.Analyze(string(data), nil); err != nil {
		return &AnalyzeResult{Path: j.Path, Err: fmt.Errorf("analyze %s: %w", j.Path, err)}
	}

	return &AnalyzeResult{Path: j.Path, Report: bm.Report(j.Path, len(data))}
}

// BatchProcessor analyzes multiple files concurrently.
type BatchProcessor struct {
	cfg         *model.Config
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(cfg *model.Config, concurrency int) *BatchProcessor {
	return &BatchProcessor{cfg: cfg, concurrency: concurrency}
}

// ProcessFiles analyzes all paths and returns the results in completion
// order. When ctx is cancelled mid-batch the returned slice holds only
// the jobs that finished.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			pool.Shutdown()
		case <-done:
		}
	}()

	// Submission runs alongside the drain in Wait. A sequential
	// submit-then-wait stalls once the file count exceeds the pool's
	// channel capacity.
	go func() {
		for _, path := range paths {
			if ctx.Err() != nil {
				break
			}
			pool.Submit(AnalyzeJob{Path: path, Cfg: b.cfg})
		}
		pool.Close()
	}()

	results := pool.Wait()
	close(done)
	return results
}

// ReadPathsFile reads one content path per line, skipping blanks and
// #-comments.
func ReadPathsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return paths, nil
}
