package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/config"
	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/dataset"
	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/perplexity"
	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/prompt"
)

// rowRunner holds the collaborators shared by every row of one run.
type rowRunner struct {
	cfg       config.Run
	params    RunParams
	client    perplexity.Completer
	questions map[string]dataset.Question
	total     int
	now       func() time.Time
}

// processRow runs the per-row pipeline: lookup, prompt build, output
// writes, and (unless dry-run) the API call. A non-nil error aborts
// the whole run; row-scoped failures come back in the RowResult.
func (r *rowRunner) processRow(ctx context.Context, index int, result dataset.Result) (RowResult, error) {
	logVerbose(r.params.Verbose, r.params.VerboseWriter, r.params.NoColor, styleRow,
		"Result %s (%d/%d) question=%s model=%s", result.ID, index+1, r.total, result.QuestionID, r.cfg.Model)

	r.emit(index, result, RowBuilding, "")
	question, ok := r.questions[result.QuestionID]
	if !ok {
		lookupErr := &LookupError{ResultID: result.ID, QuestionID: result.QuestionID}
		return r.failRow(index, result, StatusLookupError, lookupErr.Error(), ""), nil
	}

	doc, err := prompt.Build(result, question, r.cfg.Model)
	if err != nil {
		return r.failRow(index, result, StatusWriteError, fmt.Sprintf("build prompt: %v", err), ""), nil
	}
	paths, err := NewOutputPaths(r.cfg.OutputDir, result.ID)
	if err != nil {
		return r.failRow(index, result, StatusWriteError, err.Error(), ""), nil
	}

	r.emit(index, result, RowWriting, "")
	if err := ensureRowDir(paths); err != nil {
		return r.failRow(index, result, StatusWriteError, err.Error(), paths.Dir()), nil
	}
	payload, err := doc.Encode()
	if err != nil {
		return r.failRow(index, result, StatusWriteError, fmt.Sprintf("encode prompt: %v", err), paths.Dir()), nil
	}
	if err := writeRowFile(paths.PromptPath(), payload); err != nil {
		return r.failRow(index, result, StatusWriteError, err.Error(), paths.Dir()), nil
	}

	if r.params.DryRun {
		if err := writeRowFile(paths.SkipNotePath(), []byte(skipNote+"\n")); err != nil {
			return r.failRow(index, result, StatusWriteError, err.Error(), paths.Dir()), nil
		}
		return r.finishRow(index, result, StatusPromptOnly, paths.Dir()), nil
	}

	r.emit(index, result, RowCalling, "")
	response, err := r.client.CreateCompletion(ctx, doc)
	if err != nil {
		var authErr *perplexity.AuthenticationError
		if errors.As(err, &authErr) {
			return RowResult{}, err
		}
		_ = writeRowFile(paths.ErrorPath(), []byte(err.Error()+"\n"))
		return r.failRow(index, result, StatusRequestError, err.Error(), paths.Dir()), nil
	}

	r.emit(index, result, RowWriting, "")
	indented, err := response.IndentedJSON()
	if err != nil {
		return r.failRow(index, result, StatusWriteError, err.Error(), paths.Dir()), nil
	}
	if err := writeRowFile(paths.ResponsePath(), indented); err != nil {
		return r.failRow(index, result, StatusWriteError, err.Error(), paths.Dir()), nil
	}
	markdown := response.Markdown()
	if markdown != "" {
		if err := writeRowFile(paths.AnalysisPath(), []byte(markdown+"\n")); err != nil {
			return r.failRow(index, result, StatusWriteError, err.Error(), paths.Dir()), nil
		}
	}
	r.echoResponse(result.ID, markdown, indented)
	if markdown == "" {
		return r.finishRow(index, result, StatusEmptyResponse, paths.Dir()), nil
	}
	return r.finishRow(index, result, StatusAnalyzed, paths.Dir()), nil
}

// echoResponse mirrors the response to stdout in plain mode.
func (r *rowRunner) echoResponse(resultID, markdown string, indented []byte) {
	if r.params.Stdout == nil {
		return
	}
	fmt.Fprintf(r.params.Stdout, "\n=== Perplexity Response (Result ID: %s ) ===\n", resultID)
	if markdown != "" {
		fmt.Fprintln(r.params.Stdout, markdown)
	} else {
		fmt.Fprintln(r.params.Stdout, "(No assistant content found in response)")
	}
	if r.params.PrintJSON {
		fmt.Fprintln(r.params.Stdout, "\n--- Raw API Response JSON ---")
		fmt.Fprint(r.params.Stdout, string(indented))
	}
}

func (r *rowRunner) emit(index int, result dataset.Result, eventType RowEventType, errText string) {
	if r.params.Observer == nil {
		return
	}
	r.params.Observer.OnRowEvent(RowEvent{
		RowIndex:   index,
		ResultID:   result.ID,
		QuestionID: result.QuestionID,
		Type:       eventType,
		Error:      errText,
		EmittedAt:  r.now(),
	})
}

func (r *rowRunner) failRow(index int, result dataset.Result, status RowStatus, reason, outputDir string) RowResult {
	r.emit(index, result, terminalEvent(status), reason)
	logVerbose(r.params.Verbose, r.params.VerboseWriter, r.params.NoColor, styleError,
		"Result %s failed: %s", result.ID, reason)
	return RowResult{
		ResultID:      result.ID,
		QuestionID:    result.QuestionID,
		Status:        status,
		FailureReason: &reason,
		OutputDir:     outputDir,
	}
}

func (r *rowRunner) finishRow(index int, result dataset.Result, status RowStatus, outputDir string) RowResult {
	r.emit(index, result, terminalEvent(status), "")
	return RowResult{
		ResultID:   result.ID,
		QuestionID: result.QuestionID,
		Status:     status,
		OutputDir:  outputDir,
	}
}
