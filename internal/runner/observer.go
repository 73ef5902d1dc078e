package runner

import "time"

// RowEventType identifies a result-row status update for observers.
type RowEventType string

const (
	// RowQueued marks a row loaded but not yet processed.
	RowQueued RowEventType = "queued"
	// RowBuilding marks question lookup and prompt construction.
	RowBuilding RowEventType = "building"
	// RowCalling marks an active API call.
	RowCalling RowEventType = "calling"
	// RowWriting marks output files being written.
	RowWriting RowEventType = "writing"
	// RowAnalyzed marks a completed row with extracted markdown.
	RowAnalyzed RowEventType = "analyzed"
	// RowPromptOnly marks a completed row whose API call was skipped.
	RowPromptOnly RowEventType = "prompt_only"
	// RowEmptyResponse marks a live response without assistant content.
	RowEmptyResponse RowEventType = "empty_response"
	// RowLookupError marks a row referencing an unknown question.
	RowLookupError RowEventType = "lookup_error"
	// RowRequestError marks a failed API call.
	RowRequestError RowEventType = "request_error"
	// RowWriteError marks a failed output write.
	RowWriteError RowEventType = "write_error"
)

// RowEvent carries a single status update for a result row.
type RowEvent struct {
	RowIndex   int
	ResultID   string
	QuestionID string
	Type       RowEventType
	Error      string
	EmittedAt  time.Time
}

// RunObserver receives run lifecycle events for UI or logging.
type RunObserver interface {
	// OnRunStart signals the start of a run.
	OnRunStart(runID string, model string, dryRun bool, totalRows int)
	// OnRowEvent delivers a row status update.
	OnRowEvent(event RowEvent)
	// OnRunEnd signals run completion.
	OnRunEnd(results Results)
}

// terminalEvent maps a final row status to its observer event type.
func terminalEvent(status RowStatus) RowEventType {
	return RowEventType(status)
}
