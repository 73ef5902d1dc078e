package runner

import "time"

// RowStatus classifies the outcome of one result row.
type RowStatus string

const (
	// StatusAnalyzed marks a row with a live response and extracted markdown.
	StatusAnalyzed RowStatus = "analyzed"
	// StatusPromptOnly marks a row whose API call was skipped (dry-run).
	StatusPromptOnly RowStatus = "prompt_only"
	// StatusEmptyResponse marks a live response without assistant content.
	StatusEmptyResponse RowStatus = "empty_response"
	// StatusLookupError marks a row referencing an unknown question.
	StatusLookupError RowStatus = "lookup_error"
	// StatusRequestError marks a failed API call.
	StatusRequestError RowStatus = "request_error"
	// StatusWriteError marks a failed output write.
	StatusWriteError RowStatus = "write_error"
)

// RowResult captures the outcome of one result row.
type RowResult struct {
	ResultID      string
	QuestionID    string
	Status        RowStatus
	FailureReason *string
	OutputDir     string
}

// Failed reports whether the row ended in a row-scoped error.
func (r RowResult) Failed() bool {
	return r.FailureReason != nil
}

// Summary aggregates row outcomes for the run report.
type Summary struct {
	RowsTotal     int
	RowsSucceeded int
	RowsFailed    int
	RowsAnalyzed  int
}

// Results describes one completed analysis run.
type Results struct {
	RunID      string
	Model      string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
	Warnings   []string
	Rows       []RowResult
	Summary    Summary
}

func summarize(rows []RowResult) Summary {
	summary := Summary{RowsTotal: len(rows)}
	for _, row := range rows {
		if row.Failed() {
			summary.RowsFailed++
			continue
		}
		summary.RowsSucceeded++
		if row.Status == StatusAnalyzed {
			summary.RowsAnalyzed++
		}
	}
	return summary
}
