package dataset

import (
	"fmt"
	"strings"
)

// Issue captures a single problem found while validating a dataset file.
type Issue struct {
	Field   string
	Message string
}

// FormatError reports a dataset file that cannot be used at all: a missing
// required column, an unreadable table, or zero usable rows.
type FormatError struct {
	File   string
	Issues []Issue
}

// Error returns a readable message for dataset format failures.
func (err *FormatError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("%s: invalid data format: %s", err.File, strings.Join(parts, "; "))
}

// Warning records a row that was skipped or repaired while loading.
// Row counts data records, starting at 1 for the first row after the header.
type Warning struct {
	Row     int
	Message string
}

// String renders the warning for console output.
func (w Warning) String() string {
	return fmt.Sprintf("row %d: %s", w.Row, w.Message)
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result(file string) error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &FormatError{File: file, Issues: collector.issues}
}
