// styles.go - Lipgloss styles for the input field, built from a theme
package inputfield

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rootisgod/tablekit/theme"
)

// Styles is the rendered look of one input field.
type Styles struct {
	Label       lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Helper      lipgloss.Style
	Error       lipgloss.Style
	Button      lipgloss.Style

	// Frames per variant. Border colors are overridden per state.
	Outlined lipgloss.Style
	Filled   lipgloss.Style
	Ghost    lipgloss.Style

	Focused  lipgloss.Color
	Invalid  lipgloss.Color
	Disabled lipgloss.Color
	Idle     lipgloss.Color
}

// NewStyles builds the input field styles for t.
func NewStyles(t theme.Theme) Styles {
	return Styles{
		Label: lipgloss.NewStyle().
			Foreground(t.AccentLight).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(t.Highlight),

		Placeholder: lipgloss.NewStyle().
			Foreground(t.Subtle),

		Helper: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		Error: lipgloss.NewStyle().
			Foreground(t.Danger),

		Button: lipgloss.NewStyle().
			Foreground(t.Subtle).
			PaddingLeft(1),

		Outlined: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()),

		Filled: lipgloss.NewStyle().
			Background(t.Surface),

		Ghost: lipgloss.NewStyle(),

		Focused:  t.Accent,
		Invalid:  t.Danger,
		Disabled: t.Disabled,
		Idle:     t.Subtle,
	}
}
