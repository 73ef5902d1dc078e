package runner

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputPaths describes the output locations for one result row.
type OutputPaths struct {
	Root     string
	ResultID string
}

// NewOutputPaths validates and constructs per-row output paths. The
// result ID becomes a directory name, so it must not traverse out of
// the output root.
func NewOutputPaths(root, resultID string) (OutputPaths, error) {
	if strings.TrimSpace(root) == "" {
		return OutputPaths{}, fmt.Errorf("output root is empty")
	}
	if strings.TrimSpace(resultID) == "" {
		return OutputPaths{}, fmt.Errorf("result ID is empty")
	}
	if resultID != filepath.Base(resultID) || resultID == "." || resultID == ".." {
		return OutputPaths{}, fmt.Errorf("result ID %q is not a safe directory name", resultID)
	}
	return OutputPaths{Root: root, ResultID: resultID}, nil
}

// Dir returns the directory for this result row.
func (o OutputPaths) Dir() string {
	return filepath.Join(o.Root, o.ResultID)
}

// PromptPath returns the path to prompt.json.
func (o OutputPaths) PromptPath() string {
	return filepath.Join(o.Dir(), "prompt.json")
}

// ResponsePath returns the path to response.json.
func (o OutputPaths) ResponsePath() string {
	return filepath.Join(o.Dir(), "response.json")
}

// AnalysisPath returns the path to analysis.md.
func (o OutputPaths) AnalysisPath() string {
	return filepath.Join(o.Dir(), "analysis.md")
}

// SkipNotePath returns the path to skipped_api_call.txt.
func (o OutputPaths) SkipNotePath() string {
	return filepath.Join(o.Dir(), "skipped_api_call.txt")
}

// ErrorPath returns the path to error.txt.
func (o OutputPaths) ErrorPath() string {
	return filepath.Join(o.Dir(), "error.txt")
}
