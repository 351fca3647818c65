package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Static output: no row is highlighted.
	s.Selected = s.Cell.Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// DialogTableColumns returns columns for the configured dialogs table.
func DialogTableColumns() []table.Column {
	return []table.Column{
		{Title: "Dialog", Width: 14},
		{Title: "Bounds", Width: 22},
		{Title: "Grace", Width: 8},
		{Title: "DevTools", Width: 9},
		{Title: "URL", Width: 48},
	}
}

// DialogRow is one configured dialog.
type DialogRow struct {
	Name                string
	X, Y, Width, Height int
	HideGraceMs         int
	DevTools            bool
	URL                 string
}

// ToTableRow converts the dialog to a table row.
func (r DialogRow) ToTableRow() table.Row {
	devtools := "no"
	if r.DevTools {
		devtools = "yes"
	}
	return table.Row{
		r.Name,
		formatBounds(r.X, r.Y, r.Width, r.Height),
		strconv.Itoa(r.HideGraceMs) + "ms",
		devtools,
		r.URL,
	}
}

func formatBounds(x, y, w, h int) string {
	size := func(v int) string {
		if v == 0 {
			return "auto"
		}
		return strconv.Itoa(v)
	}
	return strconv.Itoa(x) + "," + strconv.Itoa(y) + " " + size(w) + "x" + size(h)
}

// RenderDialogTable renders rows as a static table.
func RenderDialogTable(theme *Theme, rows []DialogRow) string {
	tableRows := make([]table.Row, 0, len(rows))
	width := 0
	for _, c := range DialogTableColumns() {
		width += c.Width + 2
	}
	for _, r := range rows {
		tableRows = append(tableRows, r.ToTableRow())
	}
	t := NewStyledTable(theme, DialogTableColumns(), tableRows, width, len(tableRows)+1)
	return t.View()
}
