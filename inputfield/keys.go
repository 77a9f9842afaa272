// keys.go - Key bindings for the input field buttons
package inputfield

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the keyboard equivalents of the field's buttons. Text
// editing keys are those of bubbles/textinput.
type KeyMap struct {
	Clear          key.Binding
	TogglePassword key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Clear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear"),
	),
	TogglePassword: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "show/hide"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.TogglePassword}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
