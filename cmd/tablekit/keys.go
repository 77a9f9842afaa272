// keys.go - Application key bindings and the footer help map
package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/rootisgod/tablekit/datatable"
)

type appKeyMap struct {
	Theme  key.Binding
	Export key.Binding
	Help   key.Binding
	Quit   key.Binding
	Close  key.Binding // closes modals

	table datatable.KeyMap
}

func newAppKeyMap(table datatable.KeyMap) appKeyMap {
	return appKeyMap{
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Export: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "export"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "enter", "q"),
			key.WithHelp("esc", "close"),
		),
		table: table,
	}
}

// ShortHelp is the footer line: table keys first, then app keys.
func (k appKeyMap) ShortHelp() []key.Binding {
	return append(k.table.ShortHelp(), k.Theme, k.Export, k.Help, k.Quit)
}

func (k appKeyMap) FullHelp() [][]key.Binding {
	return append(k.table.FullHelp(), []key.Binding{k.Theme, k.Export, k.Help, k.Quit})
}
