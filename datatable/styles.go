// styles.go - Lipgloss styles for the table, built from a theme
package datatable

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rootisgod/tablekit/theme"
)

// Styles is the rendered look of one table instance.
type Styles struct {
	Header        lipgloss.Style
	HeaderFocused lipgloss.Style
	Separator     lipgloss.Style
	Cell          lipgloss.Style
	CursorRow     lipgloss.Style
	SelectedRow   lipgloss.Style
	Cursor        lipgloss.Style
	Checkbox      lipgloss.Style
	CheckboxOn    lipgloss.Style
	Spinner       lipgloss.Style
	Loading       lipgloss.Style
	Empty         lipgloss.Style
}

// NewStyles builds the table styles for t.
func NewStyles(t theme.Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			PaddingRight(cellPadding),

		HeaderFocused: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(t.AccentLight).
			PaddingRight(cellPadding),

		Separator: lipgloss.NewStyle().
			Foreground(t.Subtle),

		Cell: lipgloss.NewStyle().
			Foreground(t.Text).
			PaddingRight(cellPadding),

		CursorRow: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Highlight).
			Bold(true).
			PaddingRight(cellPadding),

		SelectedRow: lipgloss.NewStyle().
			Foreground(t.AccentLight).
			PaddingRight(cellPadding),

		Cursor: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		Checkbox: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Width(checkboxWidth),

		CheckboxOn: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true).
			Width(checkboxWidth),

		Spinner: lipgloss.NewStyle().
			Foreground(t.Accent),

		Loading: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			MarginLeft(1),

		Empty: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true).
			PaddingLeft(3),
	}
}
