// styles.go - Lipgloss styles for the application chrome
package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rootisgod/tablekit/theme"
)

type appStyles struct {
	titleBar   lipgloss.Style
	titleCount lipgloss.Style
	status     lipgloss.Style
	notice     lipgloss.Style
	modal      lipgloss.Style
	modalTitle lipgloss.Style
	modalText  lipgloss.Style
	errorTitle lipgloss.Style
	hint       lipgloss.Style
	key        lipgloss.Style
	footer     lipgloss.Style
}

func newAppStyles(t theme.Theme) appStyles {
	return appStyles{
		titleBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(t.Accent).
			Padding(0, 1),

		titleCount: lipgloss.NewStyle().
			Foreground(t.AccentLight).
			PaddingLeft(1),

		status: lipgloss.NewStyle().
			Foreground(t.Warning).
			PaddingLeft(1),

		notice: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			PaddingLeft(1),

		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(1, 3).
			MaxWidth(80),

		modalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			MarginBottom(1),

		modalText: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		errorTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Danger),

		hint: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true),

		key: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		footer: lipgloss.NewStyle().
			PaddingLeft(1),
	}
}
