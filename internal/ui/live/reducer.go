package live

import (
	"fmt"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/runner"
)

// Reduce applies a row event to the UI state.
func Reduce(state State, event runner.RowEvent) State {
	state = ensureRow(state, event)
	state = applyRowEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRow grows the state rows to include the target index.
func ensureRow(state State, event runner.RowEvent) State {
	if event.RowIndex < 0 {
		return state
	}
	if event.RowIndex < len(state.Rows) {
		return state
	}
	rows := make([]ResultRow, event.RowIndex+1)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < len(rows); i++ {
		rows[i] = ResultRow{Index: i, Status: runner.RowQueued}
	}
	state.Rows = rows
	return state
}

// applyRowEvent updates a row with the given event.
func applyRowEvent(state State, event runner.RowEvent) State {
	if event.RowIndex < 0 || event.RowIndex >= len(state.Rows) {
		return state
	}
	row := state.Rows[event.RowIndex]
	if row.ResultID == "" {
		row.ResultID = event.ResultID
	}
	if row.QuestionID == "" {
		row.QuestionID = event.QuestionID
	}
	row.Status = event.Type
	if event.Type == runner.RowBuilding && row.StartedAt.IsZero() {
		row.StartedAt = event.EmittedAt
	}
	if isTerminalStatus(event.Type) {
		if !event.EmittedAt.IsZero() {
			row.FinishedAt = event.EmittedAt
		}
		row.Error = event.Error
	}
	state.Rows[event.RowIndex] = row
	return state
}

// isTerminalStatus reports whether a status is final.
func isTerminalStatus(status runner.RowEventType) bool {
	switch status {
	case runner.RowAnalyzed,
		runner.RowPromptOnly,
		runner.RowEmptyResponse,
		runner.RowLookupError,
		runner.RowRequestError,
		runner.RowWriteError:
		return true
	default:
		return false
	}
}

// recount recomputes status counts for the current rows.
func recount(rows []ResultRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case runner.RowQueued:
			counts.Queued++
		case runner.RowBuilding:
			counts.Building++
		case runner.RowCalling:
			counts.Calling++
		case runner.RowWriting:
			counts.Writing++
		case runner.RowAnalyzed:
			counts.Done++
			counts.Analyzed++
		case runner.RowPromptOnly:
			counts.Done++
			counts.PromptOnly++
		case runner.RowEmptyResponse:
			counts.Done++
			counts.Empty++
		case runner.RowLookupError,
			runner.RowRequestError,
			runner.RowWriteError:
			counts.Done++
			counts.Failed++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event runner.RowEvent) string {
	label := event.ResultID
	if label == "" {
		label = fmt.Sprintf("R%d", event.RowIndex+1)
	}
	switch event.Type {
	case runner.RowCalling:
		return fmt.Sprintf("%s calling Perplexity", label)
	case runner.RowLookupError,
		runner.RowRequestError,
		runner.RowWriteError:
		return fmt.Sprintf("%s failed: %s", label, event.Error)
	case runner.RowAnalyzed,
		runner.RowPromptOnly,
		runner.RowEmptyResponse:
		return fmt.Sprintf("%s completed", label)
	}
	return ""
}
