package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/config"
	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/runner"
)

const quizzesCSV = `question_id,question,category,expected_answer,source_1
q1,Capital of France?,geography,Paris,Wikipedia|https://en.wikipedia.org/wiki/Paris
q2,Boiling point of water in C?,science,100,
`

const resultsCSV = `result_id,question_id,submitted_value,actualValue
r1,q1,Lyon,Paris
r2,q2,90,100
`

// writeCSVFixtures writes a dataset pair and returns their paths plus
// an output directory.
func writeCSVFixtures(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	quizzesPath := filepath.Join(dir, "quizzes.csv")
	resultsPath := filepath.Join(dir, "results.csv")
	if err := os.WriteFile(quizzesPath, []byte(quizzesCSV), 0o644); err != nil {
		t.Fatalf("write quizzes: %v", err)
	}
	if err := os.WriteFile(resultsPath, []byte(resultsCSV), 0o644); err != nil {
		t.Fatalf("write results: %v", err)
	}
	return quizzesPath, resultsPath, filepath.Join(dir, "analyses")
}

// TestAnalyzeDryRun verifies the full dry-run flow through the CLI.
func TestAnalyzeDryRun(t *testing.T) {
	quizzesPath, resultsPath, outputDir := writeCSVFixtures(t)
	var out, errOut bytes.Buffer
	code := Run([]string{
		"analyze", "--dry-run", "--ui", "plain",
		"--quizzes", quizzesPath,
		"--results", resultsPath,
		"--output-dir", outputDir,
	}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("unexpected exit: %d, stderr: %s", code, errOut.String())
	}
	if errOut.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", errOut.String())
	}
	if !strings.Contains(out.String(), "Processed 2 result(s). Output in: "+outputDir) {
		t.Fatalf("missing closing line: %q", out.String())
	}
	for _, name := range []string{"r1", "r2"} {
		if _, err := os.Stat(filepath.Join(outputDir, name, "prompt.json")); err != nil {
			t.Fatalf("missing prompt for %s: %v", name, err)
		}
	}
}

// TestAnalyzeParsesFlags verifies CLI flag parsing for analyze.
func TestAnalyzeParsesFlags(t *testing.T) {
	quizzesPath, resultsPath, outputDir := writeCSVFixtures(t)

	var gotCfg config.Run
	var gotParams runner.RunParams
	origRun := runAnalysis
	runAnalysis = func(_ context.Context, cfg config.Run, params runner.RunParams) (runner.Results, error) {
		gotCfg = cfg
		gotParams = params
		return runner.Results{RunID: "run-1"}, nil
	}
	t.Cleanup(func() { runAnalysis = origRun })

	var stdout, stderr bytes.Buffer
	code := Run([]string{
		"analyze", "--dry-run", "--ui", "plain",
		"--quizzes", quizzesPath,
		"--results", resultsPath,
		"--output-dir", outputDir,
		"--model", "custom-model",
		"--timeout", "30",
		"--limit", "3",
		"--print-json",
		"--verbose",
		"--no-color",
	}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("unexpected exit: %d, stderr: %s", code, stderr.String())
	}
	if gotCfg.Model != "custom-model" || gotCfg.TimeoutSeconds != 30 {
		t.Fatalf("unexpected config: %+v", gotCfg)
	}
	if gotCfg.Quizzes != quizzesPath || gotCfg.Results != resultsPath || gotCfg.OutputDir != outputDir {
		t.Fatalf("unexpected paths: %+v", gotCfg)
	}
	if !gotParams.DryRun || gotParams.Limit != 3 || !gotParams.PrintJSON {
		t.Fatalf("unexpected params: %+v", gotParams)
	}
	if !gotParams.Verbose || !gotParams.NoColor {
		t.Fatalf("expected verbose and no-color: %+v", gotParams)
	}
	if gotParams.Stdout != &stdout {
		t.Fatalf("expected stdout passthrough in plain mode")
	}
	if gotParams.Observer != nil {
		t.Fatalf("expected no observer in plain mode")
	}
	if !strings.Contains(stdout.String(), "Run run-1 completed") {
		t.Fatalf("missing report: %q", stdout.String())
	}
}

// TestAnalyzeConfigFileOverlay verifies file values apply under flags.
func TestAnalyzeConfigFileOverlay(t *testing.T) {
	quizzesPath, resultsPath, _ := writeCSVFixtures(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "quizanalyze.yml")
	configBody := `quizzes: from-file-quizzes.csv
results: from-file-results.csv
model: file-model
`
	if err := os.WriteFile(configPath, []byte(configBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var gotCfg config.Run
	origRun := runAnalysis
	runAnalysis = func(_ context.Context, cfg config.Run, _ runner.RunParams) (runner.Results, error) {
		gotCfg = cfg
		return runner.Results{RunID: "run-1"}, nil
	}
	t.Cleanup(func() { runAnalysis = origRun })

	var stdout, stderr bytes.Buffer
	code := Run([]string{
		"analyze", "--dry-run", "--ui", "plain",
		"--config", configPath,
		"--quizzes", quizzesPath,
		"--results", resultsPath,
	}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("unexpected exit: %d, stderr: %s", code, stderr.String())
	}
	if gotCfg.Model != "file-model" {
		t.Fatalf("expected file model, got %+v", gotCfg)
	}
	if gotCfg.Quizzes != quizzesPath || gotCfg.Results != resultsPath {
		t.Fatalf("expected flags to win over file paths: %+v", gotCfg)
	}
	if gotCfg.OutputDir != "analyses" {
		t.Fatalf("expected default output dir, got %q", gotCfg.OutputDir)
	}
}

// TestAnalyzeUnexpectedArgs verifies positional arguments are refused.
func TestAnalyzeUnexpectedArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"analyze", "extra"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "unexpected arguments") {
		t.Fatalf("expected argument error, got %q", errOut.String())
	}
}

// TestAnalyzeMissingDataset verifies a missing quizzes file is fatal.
func TestAnalyzeMissingDataset(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer
	code := Run([]string{
		"analyze", "--dry-run", "--ui", "plain",
		"--quizzes", filepath.Join(dir, "missing.csv"),
		"--results", filepath.Join(dir, "missing-too.csv"),
		"--output-dir", filepath.Join(dir, "analyses"),
	}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Analysis failed") {
		t.Fatalf("expected failure message, got %q", errOut.String())
	}
}

// TestAnalyzeInvalidUIMode verifies an unknown ui value is rejected.
func TestAnalyzeInvalidUIMode(t *testing.T) {
	quizzesPath, resultsPath, outputDir := writeCSVFixtures(t)
	var out, errOut bytes.Buffer
	code := Run([]string{
		"analyze", "--dry-run", "--ui", "fancy",
		"--quizzes", quizzesPath,
		"--results", resultsPath,
		"--output-dir", outputDir,
	}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Invalid configuration") {
		t.Fatalf("expected configuration error, got %q", errOut.String())
	}
}
