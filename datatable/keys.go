// keys.go - Key bindings for the table component
package datatable

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the table.
type KeyMap struct {
	// Row cursor.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Header focus.
	PrevColumn key.Binding
	NextColumn key.Binding
	Sort       key.Binding // Click the focused header.

	// Selection (selectable tables only).
	ToggleRow key.Binding
	ToggleAll key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k, h/l) alongside arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "bottom"),
	),
	PrevColumn: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev column"),
	),
	NextColumn: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next column"),
	),
	Sort: key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("s", "sort"),
	),
	ToggleRow: key.NewBinding(
		key.WithKeys(" ", "space", "x"),
		key.WithHelp("space", "select row"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
}

// ShortHelp returns the bindings shown in a one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextColumn, k.Sort, k.ToggleRow, k.ToggleAll}
}

// FullHelp returns the bindings grouped for an expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.PrevColumn, k.NextColumn, k.Sort},
		{k.ToggleRow, k.ToggleAll},
	}
}
