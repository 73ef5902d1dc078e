package live

import (
	"time"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/runner"
)

// ResultRow holds UI state for a single result row.
type ResultRow struct {
	Index      int
	ResultID   string
	QuestionID string
	Status     runner.RowEventType
	StartedAt  time.Time
	FinishedAt time.Time
	Error      string
}

// StatusCounts aggregates counts by status bucket.
type StatusCounts struct {
	Queued     int
	Building   int
	Calling    int
	Writing    int
	Done       int
	Analyzed   int
	PromptOnly int
	Empty      int
	Failed     int
}

// State captures the live UI state for an analysis run.
type State struct {
	RunID     string
	Model     string
	DryRun    bool
	TotalRows int
	StartedAt time.Time
	LastEvent string
	Rows      []ResultRow
	Counts    StatusCounts
}
