// view.go - Layout, hit-testing and rendering of the table
package datatable

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tableLayout is the horizontal geometry shared by rendering and mouse
// hit-testing.
type tableLayout struct {
	checkbox bool
	widths   []int
}

// layout computes the column widths for projection p.
func (m Model[T]) layout(p Projection[T]) tableLayout {
	return tableLayout{
		checkbox: m.props.Selectable,
		widths:   m.computeColumnWidths(p),
	}
}

// columnAt maps a table-relative x coordinate to the checkbox cell or
// a column index.
func (l tableLayout) columnAt(x int) (index int, onCheckbox bool, onColumn bool) {
	x -= cursorWidth
	if x < 0 {
		return 0, false, false
	}
	if l.checkbox {
		if x < checkboxWidth {
			return 0, true, false
		}
		x -= checkboxWidth
	}
	for i, width := range l.widths {
		if x < width {
			return i, false, true
		}
		x -= width
	}
	return 0, false, false
}

// totalWidth is the width of a rendered line.
func (l tableLayout) totalWidth() int {
	total := cursorWidth
	if l.checkbox {
		total += checkboxWidth
	}
	for _, width := range l.widths {
		total += width
	}
	return total
}

// computeColumnWidths sizes each column from its title, its indicator
// and the widest cell, then shrinks the widest columns until the table
// fits the available width.
func (m Model[T]) computeColumnWidths(p Projection[T]) []int {
	widths := make([]int, len(p.Headers))
	for i, header := range p.Headers {
		column := header.Column
		if column.Width > 0 {
			widths[i] = max(column.Width, MinColumnWidth)
			continue
		}
		w := lipgloss.Width(headerText(header))
		for _, row := range p.Rows {
			w = max(w, lipgloss.Width(row.Cells[i]))
		}
		widths[i] = max(MinColumnWidth, min(w+cellPadding, MaxColumnWidth))
	}

	if m.width <= 0 {
		return widths
	}
	available := m.width - cursorWidth
	if m.props.Selectable {
		available -= checkboxWidth
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	for total > available {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= MinColumnWidth {
			break
		}
		widths[widest]--
		total--
	}
	return widths
}

func headerText(header HeaderCell) string {
	glyph := header.Indicator.Glyph()
	if glyph == "" {
		return header.Column.Title
	}
	return header.Column.Title + " " + glyph
}

// ─── View ──────────────────────────────────────────────────────────────────────

// View renders the table in its current display mode.
func (m Model[T]) View() string {
	p := m.Projection()
	switch p.Mode {
	case ModeLoading:
		return m.spinner.View() + m.styles.Loading.Render(LoadingMessage)
	case ModeEmpty:
		return m.styles.Empty.Render(EmptyMessage)
	}

	l := m.layout(p)
	var b strings.Builder

	b.WriteString(m.renderHeader(p, l) + "\n")
	b.WriteString(m.styles.Separator.Render(strings.Repeat("─", l.totalWidth())))

	end := min(m.offset+m.visibleRows(), len(p.Rows))
	for i := m.offset; i < end; i++ {
		b.WriteString("\n" + m.renderRow(p.Rows[i], l, i == m.cursor))
	}

	return b.String()
}

func (m Model[T]) renderHeader(p Projection[T], l tableLayout) string {
	var b strings.Builder
	b.WriteString(cursorBlank)
	if l.checkbox {
		b.WriteString(m.renderCheckbox(p.AllSelected))
	}
	for i, header := range p.Headers {
		style := m.styles.Header
		if i == m.focusColumn {
			style = m.styles.HeaderFocused
		}
		title := truncateCell(headerText(header), l.widths[i])
		b.WriteString(style.Width(l.widths[i]).Render(title))
	}
	return b.String()
}

func (m Model[T]) renderRow(row ProjectedRow[T], l tableLayout, atCursor bool) string {
	var b strings.Builder
	if atCursor {
		b.WriteString(m.styles.Cursor.Render(cursorMarker))
	} else {
		b.WriteString(cursorBlank)
	}
	if l.checkbox {
		b.WriteString(m.renderCheckbox(row.Selected))
	}

	style := m.styles.Cell
	switch {
	case atCursor:
		style = m.styles.CursorRow
	case row.Selected:
		style = m.styles.SelectedRow
	}
	for i, cell := range row.Cells {
		b.WriteString(style.Width(l.widths[i]).Render(truncateCell(cell, l.widths[i])))
	}
	return b.String()
}

func (m Model[T]) renderCheckbox(checked bool) string {
	if checked {
		return m.styles.CheckboxOn.Render(checkboxChecked)
	}
	return m.styles.Checkbox.Render(checkboxUnchecked)
}
