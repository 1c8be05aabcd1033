package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableColumn describes one column of a rendered table.
type TableColumn struct {
	Title      string
	AlignRight bool
}

// TableStyle provides consistent styling for tables across the CLI.
type TableStyle struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// RenderTable renders a static table with a rule under the header and no
// outer frame. Columns marked AlignRight are right aligned in every row.
func RenderTable(columns []TableColumn, rows [][]string) string {
	style := DefaultTableStyle()

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Title
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(style.Border).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := style.Cell
			if row == table.HeaderRow {
				s = style.Header
			}
			if col < len(columns) && columns[col].AlignRight {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	return t.String()
}
