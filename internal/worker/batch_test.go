package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestBatchProcessor_ProcessFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeContentFile(t, dir, "one.txt", "the quick brown fox jumps over the lazy dog"),
		writeContentFile(t, dir, "two.txt", "alpha alpha alpha beta beta gamma"),
		filepath.Join(dir, "missing.txt"),
	}

	processor := NewBatchProcessor(batchConfig(), 2)
	results := processor.ProcessFiles(context.Background(), paths)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			continue
		}
		if res.Report == nil || res.Report.Source != res.Path {
			t.Errorf("%s: report missing or mislabeled", res.Path)
		}
	}
	if failures != 1 {
		t.Errorf("Expected exactly 1 failure (missing file), got %d", failures)
	}
}

func TestBatchProcessor_ManyFilesSingleWorker(t *testing.T) {
	// Far more files than the pool's channel capacity, so submission
	// only completes if draining runs alongside it.
	dir := t.TempDir()
	paths := make([]string, 12)
	for i := range paths {
		paths[i] = writeContentFile(t, dir, fmt.Sprintf("note%d.txt", i), "one two three four five six")
	}

	processor := NewBatchProcessor(batchConfig(), 1)
	results := processor.ProcessFiles(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("Expected %d results, got %d", len(paths), len(results))
	}
	seen := make(map[string]bool)
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("%s: %v", res.Path, res.Err)
		}
		seen[res.Path] = true
	}
	for _, p := range paths {
		if !seen[p] {
			t.Errorf("No result for %s", p)
		}
	}
}

func TestBatchProcessor_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeContentFile(t, dir, "one.txt", "alpha beta"),
		writeContentFile(t, dir, "two.txt", "gamma delta"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	processor := NewBatchProcessor(batchConfig(), 2)
	results := processor.ProcessFiles(ctx, paths)
	if len(results) > len(paths) {
		t.Fatalf("Got %d results for %d paths", len(results), len(paths))
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	processor := NewBatchProcessor(batchConfig(), 2)
	results := processor.ProcessFiles(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestReadPathsFile(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "files.txt")
	content := "# comment line\nfirst.txt\n\n  second.txt  \n# another\nthird.txt\n"
	if err := os.WriteFile(listPath, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	paths, err := ReadPathsFile(listPath)
	if err != nil {
		t.Fatalf("ReadPathsFile: %v", err)
	}

	want := []string{"first.txt", "second.txt", "third.txt"}
	if len(paths) != len(want) {
		t.Fatalf("Expected %d paths, got %d: %v", len(want), len(paths), paths)
	}
	for i, p := range paths {
		if p != want[i] {
			t.Errorf("Path %d = %q, want %q", i, p, want[i])
		}
	}
}

func TestReadPathsFile_Missing(t *testing.T) {
	if _, err := ReadPathsFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected error for missing list file")
	}
}
