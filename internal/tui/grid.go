package tui

import (
	"cheesecatalog/internal/models"

	"github.com/charmbracelet/bubbles/table"
)

const (
	columnWidth = 16
	// cellPadding matches the horizontal padding of table.DefaultStyles cells.
	cellPadding = 2
)

// window is the range of columns currently visible.
type window struct {
	first int
	count int
}

// visibleColumns returns how many columns fit into width.
func visibleColumns(width int) int {
	if width <= 0 {
		return 6
	}
	n := (width - 4) / (columnWidth + cellPadding)
	if n < 1 {
		n = 1
	}
	if n > models.ColumnCount {
		n = models.ColumnCount
	}
	return n
}

// scrollTo moves w so that col is visible.
func (w window) scrollTo(col int) window {
	if col < w.first {
		w.first = col
	}
	if col >= w.first+w.count {
		w.first = col - w.count + 1
	}
	if w.first+w.count > models.ColumnCount {
		w.first = models.ColumnCount - w.count
	}
	if w.first < 0 {
		w.first = 0
	}
	return w
}

func projectColumns(w window, focusCol int) []table.Column {
	columns := make([]table.Column, 0, w.count)
	for col := w.first; col < w.first+w.count && col < models.ColumnCount; col++ {
		title := models.Columns[col]
		if models.IsConstrained(col) {
			title += " ▾"
		}
		if col == focusCol {
			title = "▸" + title
		}
		columns = append(columns, table.Column{Title: title, Width: columnWidth})
	}
	return columns
}

// projectRows renders the catalog into table rows for the visible columns. The focused
// cell is bracketed so it stands out inside the highlighted row.
func projectRows(catalog models.Catalog, w window, focusRow, focusCol int) []table.Row {
	rows := make([]table.Row, 0, len(catalog))
	for r, record := range catalog {
		row := make(table.Row, 0, w.count)
		for col := w.first; col < w.first+w.count && col < models.ColumnCount; col++ {
			value := record[col]
			if r == focusRow && col == focusCol {
				value = "[" + value + "]"
			}
			row = append(row, value)
		}
		rows = append(rows, row)
	}
	return rows
}
