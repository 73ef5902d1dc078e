package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Normalized column keys (lowercase, non-alphanumerics stripped).
const (
	keyQuestionID     = "questionid"
	keyQuestion       = "question"
	keyCategory       = "category"
	keyExpectedAnswer = "expectedanswer"
	keyAnswer         = "answer"
	keyResultID       = "resultid"
	keySubmitted      = "submittedvalue"
	keyUserGuess      = "userguessvalue"
	keyActual         = "actualvalue"
	keySessionID      = "sessionid"
	keyCreatedAt      = "createdat"

	sourcePrefix = "source"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadQuestions reads, parses, and validates the quiz question table.
// The returned map is keyed by question ID; a duplicate ID keeps the
// last occurrence and records a warning.
func LoadQuestions(path string) (map[string]Question, []Warning, error) {
	parsed, err := readTable(path)
	if err != nil {
		return nil, nil, err
	}
	warnings := parsed.warnings

	collector := &issueCollector{}
	if !parsed.has(keyQuestionID) {
		collector.add("question_id", "required column is missing")
	}
	if !parsed.has(keyQuestion) {
		collector.add("question", "required column is missing")
	}
	if err := collector.result(path); err != nil {
		return nil, warnings, err
	}

	questions := make(map[string]Question, len(parsed.rows))
	for _, entry := range parsed.rows {
		id := parsed.cell(entry.cells, keyQuestionID)
		if id == "" {
			warnings = append(warnings, Warning{Row: entry.number, Message: "skipping row with empty question_id"})
			continue
		}
		text := parsed.cell(entry.cells, keyQuestion)
		if text == "" {
			warnings = append(warnings, Warning{Row: entry.number, Message: fmt.Sprintf("skipping question %q with empty question text", id)})
			continue
		}
		if _, exists := questions[id]; exists {
			warnings = append(warnings, Warning{Row: entry.number, Message: fmt.Sprintf("duplicate question_id %q, keeping the last occurrence", id)})
		}
		questions[id] = Question{
			ID:             id,
			Text:           text,
			Category:       parsed.cell(entry.cells, keyCategory),
			ExpectedAnswer: parsed.first(entry.cells, keyExpectedAnswer, keyAnswer),
			Sources:        parsed.sources(entry.cells),
		}
	}
	if len(questions) == 0 {
		collector := &issueCollector{}
		collector.add("rows", "no usable question rows")
		return nil, warnings, collector.result(path)
	}
	return questions, warnings, nil
}

// LoadResults reads, parses, and validates the quiz result table,
// preserving file order. The submitted value may be empty; the actual
// value is required because it anchors the analysis.
func LoadResults(path string) ([]Result, []Warning, error) {
	parsed, err := readTable(path)
	if err != nil {
		return nil, nil, err
	}
	warnings := parsed.warnings

	collector := &issueCollector{}
	if !parsed.has(keyResultID) {
		collector.add("result_id", "required column is missing")
	}
	if !parsed.has(keyQuestionID) {
		collector.add("question_id", "required column is missing")
	}
	if !parsed.has(keySubmitted) && !parsed.has(keyUserGuess) {
		collector.add("submitted_value", "required column is missing")
	}
	if !parsed.has(keyActual) {
		collector.add("actualValue", "required column is missing")
	}
	if err := collector.result(path); err != nil {
		return nil, warnings, err
	}

	results := make([]Result, 0, len(parsed.rows))
	for _, entry := range parsed.rows {
		id := parsed.cell(entry.cells, keyResultID)
		if id == "" {
			warnings = append(warnings, Warning{Row: entry.number, Message: "skipping row with empty result_id"})
			continue
		}
		questionID := parsed.cell(entry.cells, keyQuestionID)
		if questionID == "" {
			warnings = append(warnings, Warning{Row: entry.number, Message: fmt.Sprintf("skipping result %q with empty question_id", id)})
			continue
		}
		actual := parsed.cell(entry.cells, keyActual)
		if actual == "" {
			warnings = append(warnings, Warning{Row: entry.number, Message: fmt.Sprintf("skipping result %q with empty actualValue", id)})
			continue
		}
		results = append(results, Result{
			ID:         id,
			QuestionID: questionID,
			Submitted:  parsed.first(entry.cells, keySubmitted, keyUserGuess),
			Actual:     actual,
			SessionID:  parsed.cell(entry.cells, keySessionID),
			CreatedAt:  parsed.cell(entry.cells, keyCreatedAt),
		})
	}
	if len(results) == 0 {
		collector := &issueCollector{}
		collector.add("rows", "no usable result rows")
		return nil, warnings, collector.result(path)
	}
	return results, warnings, nil
}

// table is a header-indexed view of one CSV file.
type table struct {
	columns  map[string]int
	header   []string
	rows     []tableRow
	warnings []Warning
}

// tableRow keeps the physical row number so warnings stay accurate
// even after malformed rows were skipped.
type tableRow struct {
	number int
	cells  []string
}

func (t *table) has(key string) bool {
	_, ok := t.columns[key]
	return ok
}

func (t *table) cell(record []string, key string) string {
	index, ok := t.columns[key]
	if !ok || index >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[index])
}

func (t *table) first(record []string, keys ...string) string {
	for _, key := range keys {
		if value := t.cell(record, key); value != "" {
			return value
		}
	}
	return ""
}

func readTable(path string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	buffered := bufio.NewReader(file)
	if lead, err := buffered.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		if _, err := buffered.Discard(len(utf8BOM)); err != nil {
			return nil, fmt.Errorf("read dataset: %w", err)
		}
	}

	reader := csv.NewReader(buffered)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		collector := &issueCollector{}
		collector.add("header", "file is empty")
		return nil, collector.result(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	parsed := &table{columns: map[string]int{}}
	for index, name := range header {
		key := normalizeHeader(name)
		parsed.header = append(parsed.header, key)
		if key == "" {
			continue
		}
		if _, exists := parsed.columns[key]; !exists {
			parsed.columns[key] = index
		}
	}

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				parsed.warnings = append(parsed.warnings, Warning{Row: row, Message: fmt.Sprintf("skipping malformed row: %v", parseErr.Err)})
				continue
			}
			return nil, fmt.Errorf("read dataset: %w", err)
		}
		parsed.rows = append(parsed.rows, tableRow{number: row, cells: record})
	}
	return parsed, nil
}

// normalizeHeader lowercases a column name and strips every character
// that is not a letter or digit, so "Question ID", "question_id", and
// "questionId" all match the same key.
func normalizeHeader(name string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
