// model.go - Single-line text input with label, helper text and buttons
package inputfield

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rootisgod/tablekit/theme"
)

const (
	clearGlyph   = "✕"
	showPassword = "show"
	hidePassword = "hide"
	maskRune     = '•'
)

// Model is a bubbletea sub-model wrapping textinput.Model.
type Model struct {
	props        Props
	input        textinput.Model
	showPassword bool

	keys   KeyMap
	theme  theme.Theme
	styles Styles
}

// New creates an input field. It starts blurred.
func New(props Props) Model {
	props = props.withDefaults()

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = props.Placeholder
	ti.EchoCharacter = maskRune
	ti.Width = props.Size.width()
	ti.SetValue(props.Value)

	m := Model{
		props: props,
		input: ti,
		keys:  DefaultKeyMap,
	}
	m.syncEchoMode()
	m.SetTheme(theme.Default())
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// ─── State ─────────────────────────────────────────────────────────────────────

// Props returns the current props with Value holding the current text.
func (m Model) Props() Props { return m.props }

func (m Model) Value() string { return m.input.Value() }

// SetValue replaces the text without calling OnChange.
func (m *Model) SetValue(value string) {
	m.input.SetValue(value)
	m.props.Value = m.input.Value()
}

func (m Model) Focused() bool { return m.input.Focused() }

// Focus gives the field keyboard focus. Disabled fields stay blurred.
func (m *Model) Focus() tea.Cmd {
	if m.props.Disabled {
		return nil
	}
	return m.input.Focus()
}

func (m *Model) Blur() { m.input.Blur() }

// SetDisabled enables or disables the field. Disabling also blurs it.
func (m *Model) SetDisabled(disabled bool) {
	m.props.Disabled = disabled
	if disabled {
		m.input.Blur()
	}
}

func (m *Model) SetInvalid(invalid bool) { m.props.Invalid = invalid }

func (m *Model) SetErrorMessage(message string) { m.props.ErrorMessage = message }

func (m *Model) SetHelperText(text string) { m.props.HelperText = text }

// SetTheme switches the palette.
func (m *Model) SetTheme(t theme.Theme) {
	m.theme = t
	m.styles = NewStyles(t)
	m.input.TextStyle = m.styles.Text
	m.input.PlaceholderStyle = m.styles.Placeholder
}

func (m Model) KeyMap() KeyMap { return m.keys }

// Invalid reports whether the field renders in its error state.
func (m Model) Invalid() bool {
	return m.props.Invalid || m.props.ErrorMessage != ""
}

// PasswordVisible reports whether a password field shows its text.
func (m Model) PasswordVisible() bool { return m.showPassword }

// ─── Buttons ───────────────────────────────────────────────────────────────────

func (m Model) clearVisible() bool {
	return m.props.ShowClearButton && m.input.Value() != "" && !m.props.Disabled
}

func (m Model) toggleVisible() bool {
	return m.props.Type == TypePassword && m.props.ShowPasswordToggle
}

// Clear empties the field and reports "" to OnChange. It does nothing
// unless the clear button is showing.
func (m *Model) Clear() {
	if !m.clearVisible() {
		return
	}
	m.input.SetValue("")
	m.changed()
}

// TogglePassword flips a password field between masked and visible.
// It does nothing unless the password toggle is showing.
func (m *Model) TogglePassword() {
	if !m.toggleVisible() {
		return
	}
	m.showPassword = !m.showPassword
	m.syncEchoMode()
}

func (m *Model) syncEchoMode() {
	if m.props.Type == TypePassword && !m.showPassword {
		m.input.EchoMode = textinput.EchoPassword
		return
	}
	m.input.EchoMode = textinput.EchoNormal
}

func (m *Model) changed() {
	m.props.Value = m.input.Value()
	if m.props.OnChange != nil {
		m.props.OnChange(m.props.Value)
	}
}

// ─── Update ────────────────────────────────────────────────────────────────────

// Update forwards editing keys to the text input while focused and
// handles the button keys. Disabled fields ignore all input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.props.Disabled {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.input.Focused() {
		switch {
		case key.Matches(msg, m.keys.Clear):
			m.Clear()
			return m, nil
		case key.Matches(msg, m.keys.TogglePassword):
			m.TogglePassword()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.changed()
	}
	return m, cmd
}

// ─── View ──────────────────────────────────────────────────────────────────────

// View renders the label, the framed input with its buttons, and the
// helper or error line.
func (m Model) View() string {
	var lines []string

	if m.props.Label != "" {
		label := m.styles.Label
		if m.props.Disabled {
			label = label.Foreground(m.styles.Disabled)
		}
		lines = append(lines, label.Render(m.props.Label))
	}

	field := m.input.View()
	if m.clearVisible() {
		field += m.styles.Button.Render(clearGlyph)
	}
	if m.toggleVisible() {
		text := showPassword
		if m.showPassword {
			text = hidePassword
		}
		field += m.styles.Button.Render(text)
	}
	lines = append(lines, m.frame().Render(field))

	switch {
	case m.props.ErrorMessage != "":
		lines = append(lines, m.styles.Error.Render(m.props.ErrorMessage))
	case m.props.HelperText != "":
		lines = append(lines, m.styles.Helper.Render(m.props.HelperText))
	}

	return strings.Join(lines, "\n")
}

// frame returns the variant's frame colored for the current state.
func (m Model) frame() lipgloss.Style {
	var style lipgloss.Style
	switch m.props.Variant {
	case VariantFilled:
		style = m.styles.Filled
	case VariantGhost:
		style = m.styles.Ghost
	default:
		style = m.styles.Outlined
	}

	color := m.styles.Idle
	switch {
	case m.props.Disabled:
		color = m.styles.Disabled
		style = style.Foreground(m.styles.Disabled)
	case m.Invalid():
		color = m.styles.Invalid
	case m.input.Focused():
		color = m.styles.Focused
	}
	if m.props.Variant == VariantGhost && m.Invalid() {
		style = style.Foreground(m.styles.Invalid)
	}

	return style.BorderForeground(color).Padding(0, m.props.Size.padding())
}
