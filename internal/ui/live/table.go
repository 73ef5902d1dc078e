package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// statusColumn is the index of the flexible status column.
const statusColumn = 2

// defaultColumns returns the table layout before the first resize.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "Result", Width: 14},
		{Title: "Question", Width: 14},
		{Title: "Status", Width: 24},
		{Title: "Elapsed", Width: 10},
	}
}

// columnsForWidth widens the status column to fill the terminal.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	if width <= 0 {
		return columns
	}
	fixed := 0
	for index, column := range columns {
		if index == statusColumn {
			continue
		}
		fixed += column.Width
	}
	available := width - fixed - len(columns)*2
	if available > columns[statusColumn].Width {
		columns[statusColumn].Width = available
	}
	return columns
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatResultID(row),
			row.QuestionID,
			formatStatus(row, noColor),
			formatRowDuration(row, now),
		})
	}
	return rows
}
