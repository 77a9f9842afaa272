// theme.go - Named color palettes shared by the table and input widgets
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all configurable colors of the widgets.
type Theme struct {
	Name        string
	Accent      lipgloss.Color
	AccentLight lipgloss.Color
	Subtle      lipgloss.Color
	Dimmed      lipgloss.Color
	Highlight   lipgloss.Color
	Surface     lipgloss.Color
	Text        lipgloss.Color // normal cell text
	TextMuted   lipgloss.Color // secondary text (helper text, hints)
	Success     lipgloss.Color // checked boxes
	Danger      lipgloss.Color // errors, invalid input
	Warning     lipgloss.Color // status counters
	Disabled    lipgloss.Color
}

// Themes is the list of built-in themes.
var Themes = []Theme{
	// Default Violet (inspired by VSCode default dark)
	{
		Name: "Violet", Accent: "#7C3AED", AccentLight: "#A78BFA",
		Subtle: "#6C6C6C", Dimmed: "#4A4A4A", Highlight: "#E8E8E8",
		Surface: "#2A2A2A", Text: "#BBBBBB", TextMuted: "#CCCCCC",
		Success: "#10B981", Danger: "#EF4444", Warning: "#F59E0B", Disabled: "#6B7280",
	},
	{
		Name: "Dracula", Accent: "#BD93F9", AccentLight: "#D6BCFA",
		Subtle: "#6272A4", Dimmed: "#44475A", Highlight: "#F8F8F2",
		Surface: "#282A36", Text: "#BFBFBF", TextMuted: "#F8F8F2",
		Success: "#50FA7B", Danger: "#FF5555", Warning: "#FFB86C", Disabled: "#6272A4",
	},
	{
		Name: "Tokyo Night", Accent: "#7AA2F7", AccentLight: "#89DDFF",
		Subtle: "#565F89", Dimmed: "#3B4261", Highlight: "#C0CAF5",
		Surface: "#1A1B26", Text: "#A9B1D6", TextMuted: "#C0CAF5",
		Success: "#9ECE6A", Danger: "#F7768E", Warning: "#E0AF68", Disabled: "#565F89",
	},
	{
		Name: "One Dark", Accent: "#61AFEF", AccentLight: "#82CFFF",
		Subtle: "#5C6370", Dimmed: "#3E4451", Highlight: "#ABB2BF",
		Surface: "#282C34", Text: "#9DA5B4", TextMuted: "#ABB2BF",
		Success: "#98C379", Danger: "#E06C75", Warning: "#E5C07B", Disabled: "#5C6370",
	},
	{
		Name: "Nord", Accent: "#88C0D0", AccentLight: "#8FBCBB",
		Subtle: "#4C566A", Dimmed: "#3B4252", Highlight: "#ECEFF4",
		Surface: "#2E3440", Text: "#D8DEE9", TextMuted: "#ECEFF4",
		Success: "#A3BE8C", Danger: "#BF616A", Warning: "#EBCB8B", Disabled: "#4C566A",
	},
	{
		Name: "Catppuccin", Accent: "#CBA6F7", AccentLight: "#F5C2E7",
		Subtle: "#6C7086", Dimmed: "#45475A", Highlight: "#CDD6F4",
		Surface: "#1E1E2E", Text: "#BAC2DE", TextMuted: "#CDD6F4",
		Success: "#A6E3A1", Danger: "#F38BA8", Warning: "#F9E2AF", Disabled: "#6C7086",
	},
	{
		Name: "Gruvbox", Accent: "#FE8019", AccentLight: "#FABD2F",
		Subtle: "#928374", Dimmed: "#665C54", Highlight: "#EBDBB2",
		Surface: "#282828", Text: "#BDAE93", TextMuted: "#EBDBB2",
		Success: "#B8BB26", Danger: "#FB4934", Warning: "#FABD2F", Disabled: "#928374",
	},
	{
		Name: "Solarized", Accent: "#268BD2", AccentLight: "#2AA198",
		Subtle: "#586E75", Dimmed: "#073642", Highlight: "#FDF6E3",
		Surface: "#002B36", Text: "#93A1A1", TextMuted: "#EEE8D5",
		Success: "#859900", Danger: "#DC322F", Warning: "#B58900", Disabled: "#586E75",
	},
}

// Default returns the first built-in theme.
func Default() Theme {
	return Themes[0]
}

// ByName finds a built-in theme, ignoring case.
func ByName(name string) (Theme, bool) {
	for _, t := range Themes {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Theme{}, false
}

// Next returns the built-in theme after current, wrapping around.
// Unknown themes are followed by the default.
func Next(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Default()
}

// Names lists the built-in theme names in order.
func Names() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
