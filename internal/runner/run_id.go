package runner

import "github.com/google/uuid"

// NewRunID returns a unique identifier for a single analysis run.
func NewRunID() string {
	return uuid.NewString()
}
