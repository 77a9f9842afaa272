// modals.go - Help, error and export modal views
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rootisgod/tablekit/internal/version"
	"github.com/rootisgod/tablekit/theme"
)

const closeHint = "Press Esc or Enter to close"

// ─── Help Modal ────────────────────────────────────────────────────────────────

func (m model) helpView() string {
	title := m.styles.modalTitle.Render("Keyboard Shortcuts")

	var lines []string
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			help := binding.Help()
			lines = append(lines, fmt.Sprintf("  %s  %s",
				m.styles.key.Width(8).Render(help.Key),
				m.styles.modalText.Render(help.Desc)))
		}
	}
	lines = append(lines, "",
		m.styles.hint.Render("Mouse: click a header to sort, a row or checkbox to select"))

	themeLines := []string{"", m.styles.modalText.Render("  Themes (t to cycle):")}
	for _, t := range theme.Themes {
		marker := "  "
		if t.Name == m.theme.Name {
			marker = "● "
		}
		swatch := lipgloss.NewStyle().Foreground(t.Accent).Render("██")
		themeLines = append(themeLines, fmt.Sprintf("  %s%s %s", marker, swatch, m.styles.modalText.Render(t.Name)))
	}

	footer := []string{
		"",
		m.styles.hint.Render(version.String()),
		m.styles.hint.Render(closeHint),
	}

	content := title + "\n" + strings.Join(lines, "\n") + "\n" + strings.Join(themeLines, "\n") + "\n" + strings.Join(footer, "\n")
	return m.place(m.styles.modal.Render(content))
}

// ─── Error Modal ───────────────────────────────────────────────────────────────

func (m model) errorView() string {
	title := m.styles.errorTitle.Render(m.errorTitle)
	body := m.styles.modalText.Render(m.errorMessage)
	hint := m.styles.hint.Render(closeHint)

	return m.place(m.styles.modal.Render(title + "\n\n" + body + "\n\n" + hint))
}

// ─── Export Modal ──────────────────────────────────────────────────────────────

func (m model) exportView() string {
	title := m.styles.modalTitle.Render(fmt.Sprintf("Export %d records", len(m.exportRecords())))
	hint := m.styles.hint.Render("Enter to write, Esc to cancel")

	return m.place(m.styles.modal.Render(title + "\n" + m.export.View() + "\n\n" + hint))
}

// place centers a modal in the window.
func (m model) place(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
