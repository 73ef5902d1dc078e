package live

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/runner"
)

// formatResultID returns the display id for a result row.
func formatResultID(row ResultRow) string {
	if row.ResultID != "" {
		return row.ResultID
	}
	return formatIndex(row.Index)
}

// formatIndex formats a row index.
func formatIndex(index int) string {
	return "R" + pad2(index+1)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return fmtInt(value)
	}
	return "0" + fmtInt(value)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatStatus renders a status string for a row.
func formatStatus(row ResultRow, noColor bool) string {
	text := statusLabel(row.Status)
	if row.Error != "" && isTerminalStatus(row.Status) {
		text += ": " + row.Error
	}
	return stylizeStatus(text, row.Status, noColor)
}

// statusLabel maps status codes to display labels.
func statusLabel(status runner.RowEventType) string {
	switch status {
	case runner.RowQueued:
		return "queued"
	case runner.RowBuilding:
		return "building prompt"
	case runner.RowCalling:
		return "calling api"
	case runner.RowWriting:
		return "writing output"
	case runner.RowAnalyzed:
		return "analyzed"
	case runner.RowPromptOnly:
		return "prompt only"
	case runner.RowEmptyResponse:
		return "empty response"
	case runner.RowLookupError:
		return "lookup error"
	case runner.RowRequestError:
		return "request error"
	case runner.RowWriteError:
		return "write error"
	default:
		return string(status)
	}
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row ResultRow, now time.Time) string {
	if !row.FinishedAt.IsZero() && !row.StartedAt.IsZero() {
		return row.FinishedAt.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	if !row.StartedAt.IsZero() {
		return now.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	return ""
}

// stylizeStatus applies status coloring when enabled.
func stylizeStatus(text string, status runner.RowEventType, noColor bool) string {
	if noColor {
		return text
	}
	return statusStyle(status).Render(text)
}

// statusStyle selects a style for a given status.
func statusStyle(status runner.RowEventType) lipgloss.Style {
	color := lipgloss.Color("244")
	switch status {
	case runner.RowAnalyzed:
		color = lipgloss.Color("42")
	case runner.RowPromptOnly:
		color = lipgloss.Color("246")
	case runner.RowEmptyResponse:
		color = lipgloss.Color("220")
	case runner.RowLookupError,
		runner.RowRequestError,
		runner.RowWriteError:
		color = lipgloss.Color("196")
	case runner.RowCalling:
		color = lipgloss.Color("33")
	case runner.RowWriting:
		color = lipgloss.Color("201")
	case runner.RowBuilding:
		color = lipgloss.Color("39")
	case runner.RowQueued:
		color = lipgloss.Color("246")
	}
	return lipgloss.NewStyle().Foreground(color)
}
