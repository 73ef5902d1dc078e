package runner

import (
	"path/filepath"
	"testing"
)

// TestNewOutputPaths verifies path construction for a result row.
func TestNewOutputPaths(t *testing.T) {
	paths, err := NewOutputPaths("analyses", "r1")
	if err != nil {
		t.Fatalf("new output paths: %v", err)
	}
	if paths.Dir() != filepath.Join("analyses", "r1") {
		t.Fatalf("unexpected dir: %s", paths.Dir())
	}
	if paths.PromptPath() != filepath.Join("analyses", "r1", "prompt.json") {
		t.Fatalf("unexpected prompt path: %s", paths.PromptPath())
	}
	if paths.ResponsePath() != filepath.Join("analyses", "r1", "response.json") {
		t.Fatalf("unexpected response path: %s", paths.ResponsePath())
	}
	if paths.AnalysisPath() != filepath.Join("analyses", "r1", "analysis.md") {
		t.Fatalf("unexpected analysis path: %s", paths.AnalysisPath())
	}
	if paths.SkipNotePath() != filepath.Join("analyses", "r1", "skipped_api_call.txt") {
		t.Fatalf("unexpected skip note path: %s", paths.SkipNotePath())
	}
	if paths.ErrorPath() != filepath.Join("analyses", "r1", "error.txt") {
		t.Fatalf("unexpected error path: %s", paths.ErrorPath())
	}
}

// TestNewOutputPathsRejectsUnsafeIDs verifies traversal-prone result
// IDs are refused.
func TestNewOutputPathsRejectsUnsafeIDs(t *testing.T) {
	cases := []string{"", "   ", ".", "..", "a/b", "../escape", "a/../b"}
	for _, id := range cases {
		if _, err := NewOutputPaths("analyses", id); err == nil {
			t.Fatalf("expected error for id %q", id)
		}
	}
	if _, err := NewOutputPaths("", "r1"); err == nil {
		t.Fatalf("expected error for empty root")
	}
}
