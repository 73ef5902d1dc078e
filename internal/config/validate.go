package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks the run settings for usable values.
func (cfg Run) Validate() error {
	collector := &issueCollector{}
	if strings.TrimSpace(cfg.Quizzes) == "" {
		collector.add("quizzes", "is required")
	}
	if strings.TrimSpace(cfg.Results) == "" {
		collector.add("results", "is required")
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		collector.add("output_dir", "is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		collector.add("model", "is required")
	}
	if cfg.TimeoutSeconds < 0 {
		collector.add("timeout_seconds", "must not be negative")
	}
	switch cfg.UI {
	case "auto", "live", "plain":
	default:
		collector.add("ui", fmt.Sprintf("unsupported mode %q", cfg.UI))
	}
	return collector.result()
}
