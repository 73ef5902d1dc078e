package live

import "github.com/Bhavyaa-T/Quiz-result-analysis/internal/runner"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a run.
	EventRunStart EventKind = iota
	// EventRow delivers a result row status update.
	EventRow
	// EventRunEnd signals run completion.
	EventRunEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind      EventKind
	RunID     string
	Model     string
	DryRun    bool
	TotalRows int
	Row       runner.RowEvent
}
