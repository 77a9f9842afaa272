// constants.go - Glyphs and layout constants for the table component
package datatable

// Sort indicator glyphs shown after sortable column titles.
const (
	GlyphNeutral    = "↕"
	GlyphAscending  = "↑"
	GlyphDescending = "↓"
)

// Checkbox and cursor glyphs.
const (
	checkboxChecked   = "[x]"
	checkboxUnchecked = "[ ]"
	cursorMarker      = "▸ "
	cursorBlank       = "  "
	truncationTail    = "…"
)

// Layout
const (
	// cursorWidth is the width of the cursor prefix on every line.
	cursorWidth = 2

	// checkboxWidth is the width of the checkbox cell, padding included.
	checkboxWidth = 4

	// cellPadding is the right padding applied to every column cell.
	cellPadding = 2

	// MinColumnWidth is the narrowest a column is ever rendered,
	// padding included.
	MinColumnWidth = 6

	// MaxColumnWidth caps content-sized columns. Columns with an
	// explicit Width are not capped.
	MaxColumnWidth = 40

	// headerLines is the header row plus the separator beneath it.
	headerLines = 2
)

// Display-mode messages.
const (
	LoadingMessage = "Loading..."
	EmptyMessage   = "No data available"
)
