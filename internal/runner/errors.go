package runner

import "fmt"

// LookupError reports a result row referencing a question that is not
// in the quiz dataset. Row-scoped: the run records it and moves on.
type LookupError struct {
	ResultID   string
	QuestionID string
}

func (err *LookupError) Error() string {
	return fmt.Sprintf("result %s references unknown question %q", err.ResultID, err.QuestionID)
}
