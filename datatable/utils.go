// utils.go - Cell text helpers
package datatable

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// truncateCell fits s into a cell of the given width, padding
// included, appending "…" when it had to cut. Widths are measured in
// terminal cells, so wide runes and escape sequences are handled.
func truncateCell(s string, width int) string {
	room := width - cellPadding
	if room <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= room {
		return s
	}
	return ansi.Truncate(s, room, truncationTail)
}
