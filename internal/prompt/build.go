package prompt

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/dataset"
)

const systemPrompt = "You are an educational explainer and fact-grounded analyst. " +
	"Given a user's quiz results that compare their guesses against actual values, " +
	"identify key misconceptions, quantify where possible, and offer concise, actionable guidance to learn. " +
	"Cite sources with direct URLs. Prefer the provided candidate sources when relevant. " +
	"Be neutral, clear, and avoid fluff."

const analysisTask = "Analyze quiz performance and provide educational guidance with citations."

var requirements = []string{
	"Treat actual_value as the ground truth for the correct answer, regardless of any other answer data.",
	"Summarize how the submitted value compares to the actual value and identify the likely misconception or bias.",
	"Explain briefly how to recalibrate and remember the correct answer.",
	"Include 4-8 relevant sources with URLs; prefer the provided sources when suitable, otherwise rely on well-established knowledge.",
	"Return a short bullet list of next steps for learning.",
}

var formatSections = []string{
	"Overview",
	"Key Misconceptions",
	"Recommended Sources",
	"Next Steps",
}

// userPayload is the JSON embedded as the user message content. Field
// order is the wire order.
type userPayload struct {
	Task          string        `json:"task"`
	ResultContext resultContext `json:"result_context"`
	Requirements  []string      `json:"requirements"`
	Format        formatSpec    `json:"format"`
}

type resultContext struct {
	ResultID   string      `json:"result_id"`
	SessionID  string      `json:"session_id,omitempty"`
	CreatedAt  string      `json:"created_at,omitempty"`
	QuestionID string      `json:"question_id"`
	Question   string      `json:"question"`
	Category   string      `json:"category,omitempty"`
	Submitted  string      `json:"submitted_value"`
	Actual     string      `json:"actual_value"`
	AbsError   *float64    `json:"abs_error,omitempty"`
	Sources    []sourceRef `json:"sources"`
}

type sourceRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type formatSpec struct {
	Style    string   `json:"style"`
	Sections []string `json:"sections"`
}

// Build constructs the analysis request for one result row. The actual
// value from the result is presented as ground truth; the question's
// own expected answer never enters the payload. Output depends only on
// the inputs, so identical rows encode to identical bytes.
func Build(result dataset.Result, question dataset.Question, model string) (Document, error) {
	sources := make([]sourceRef, 0, len(question.Sources))
	for _, source := range question.Sources {
		sources = append(sources, sourceRef{Name: source.Name, URL: source.URL})
	}

	payload := userPayload{
		Task: analysisTask,
		ResultContext: resultContext{
			ResultID:   result.ID,
			SessionID:  result.SessionID,
			CreatedAt:  result.CreatedAt,
			QuestionID: question.ID,
			Question:   question.Text,
			Category:   question.Category,
			Submitted:  result.Submitted,
			Actual:     result.Actual,
			AbsError:   absError(result.Submitted, result.Actual),
			Sources:    sources,
		},
		Requirements: requirements,
		Format:       formatSpec{Style: "markdown", Sections: formatSections},
	}

	content, err := encodeJSON(payload, "")
	if err != nil {
		return Document{}, fmt.Errorf("encode user payload: %w", err)
	}

	return Document{
		Model: model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(bytes.TrimRight(content, "\n"))},
		},
	}, nil
}

// absError returns the absolute distance between the submitted and
// actual values when both parse as numbers.
func absError(submitted, actual string) *float64 {
	submittedValue, err := strconv.ParseFloat(submitted, 64)
	if err != nil {
		return nil
	}
	actualValue, err := strconv.ParseFloat(actual, 64)
	if err != nil {
		return nil
	}
	diff := math.Abs(submittedValue - actualValue)
	return &diff
}
