package dataset

// Source is a single candidate reference attached to a question.
type Source struct {
	Name string
	URL  string
}

// Question represents one quiz question loaded from quizzes.csv.
type Question struct {
	ID             string
	Text           string
	Category       string
	ExpectedAnswer string
	Sources        []Source
}

// Result represents one respondent answer loaded from results.csv.
// Actual is the authoritative value for the question; it always takes
// precedence over the question's own ExpectedAnswer.
type Result struct {
	ID         string
	QuestionID string
	Submitted  string
	Actual     string
	SessionID  string
	CreatedAt  string
}
