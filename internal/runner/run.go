package runner

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/config"
	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/dataset"
	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/perplexity"
)

// ClientFactory builds the completion client for a live run.
type ClientFactory func(apiKey string, timeout time.Duration) (perplexity.Completer, error)

// RunDependencies carries injectable collaborators. Nil fields get
// production defaults.
type RunDependencies struct {
	NewClient ClientFactory
	RunID     func() string
	Now       func() time.Time
}

// RunParams selects the behavior of one run.
type RunParams struct {
	// DryRun skips the API call and writes prompts plus a skip note.
	DryRun bool
	// Limit caps the number of result rows processed. Zero means all.
	Limit int
	// PrintJSON echoes the raw API response after each live call.
	PrintJSON bool
	// Credentials is the resolved API key state. Live runs abort
	// before touching the filesystem when no key is present.
	Credentials config.Credentials
	// Verbose enables progress logging to VerboseWriter.
	Verbose       bool
	VerboseWriter io.Writer
	NoColor       bool
	// Stdout receives the per-row response echo. Nil suppresses the
	// echo, which the live UI relies on to keep its screen intact.
	Stdout io.Writer
	// Observer receives run lifecycle events. May be nil.
	Observer RunObserver
	Deps     RunDependencies
}

// Run loads both datasets, processes each result row in order, and
// returns the aggregated results. Dataset format errors and
// authentication failures are fatal; everything else is recorded on
// the row and the run continues.
func Run(ctx context.Context, cfg config.Run, params RunParams) (Results, error) {
	newClient := params.Deps.NewClient
	if newClient == nil {
		newClient = func(apiKey string, timeout time.Duration) (perplexity.Completer, error) {
			return perplexity.NewClient(apiKey, "", timeout, nil)
		}
	}
	runID := params.Deps.RunID
	if runID == nil {
		runID = NewRunID
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}

	var client perplexity.Completer
	if !params.DryRun {
		apiKey, err := params.Credentials.Require()
		if err != nil {
			return Results{}, err
		}
		client, err = newClient(apiKey, time.Duration(cfg.TimeoutSeconds)*time.Second)
		if err != nil {
			return Results{}, err
		}
	}

	questions, questionWarnings, err := dataset.LoadQuestions(cfg.Quizzes)
	if err != nil {
		return Results{}, err
	}
	rowsIn, resultWarnings, err := dataset.LoadResults(cfg.Results)
	if err != nil {
		return Results{}, err
	}
	warnings := fileWarnings(cfg.Quizzes, questionWarnings)
	warnings = append(warnings, fileWarnings(cfg.Results, resultWarnings)...)

	if params.Limit > 0 && params.Limit < len(rowsIn) {
		rowsIn = rowsIn[:params.Limit]
	}

	id := runID()
	startedAt := now()
	logVerbose(params.Verbose, params.VerboseWriter, params.NoColor, styleDefault,
		"Run %s: %d result(s), model=%s, dry-run=%t", id, len(rowsIn), cfg.Model, params.DryRun)
	if params.Observer != nil {
		params.Observer.OnRunStart(id, cfg.Model, params.DryRun, len(rowsIn))
	}

	processor := &rowRunner{
		cfg:       cfg,
		params:    params,
		client:    client,
		questions: questions,
		total:     len(rowsIn),
		now:       now,
	}
	for index, result := range rowsIn {
		processor.emit(index, result, RowQueued, "")
	}

	rows := make([]RowResult, 0, len(rowsIn))
	for index, result := range rowsIn {
		row, err := processor.processRow(ctx, index, result)
		if err != nil {
			return Results{}, err
		}
		rows = append(rows, row)
	}

	results := Results{
		RunID:      id,
		Model:      cfg.Model,
		DryRun:     params.DryRun,
		StartedAt:  startedAt,
		FinishedAt: now(),
		Warnings:   warnings,
		Rows:       rows,
		Summary:    summarize(rows),
	}
	logVerbose(params.Verbose, params.VerboseWriter, params.NoColor, styleReport,
		"Run %s finished: %d succeeded, %d failed", id, results.Summary.RowsSucceeded, results.Summary.RowsFailed)
	if params.Observer != nil {
		params.Observer.OnRunEnd(results)
	}
	return results, nil
}

// fileWarnings prefixes dataset warnings with the file they came from.
func fileWarnings(path string, warnings []dataset.Warning) []string {
	name := filepath.Base(path)
	out := make([]string, 0, len(warnings))
	for _, warning := range warnings {
		out = append(out, fmt.Sprintf("%s: %s", name, warning))
	}
	return out
}
