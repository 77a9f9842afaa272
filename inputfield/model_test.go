package inputfield

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNewDefaults(t *testing.T) {
	m := New(Props{})
	p := m.Props()
	if p.Variant != VariantOutlined || p.Size != SizeMedium || p.Type != TypeText {
		t.Errorf("defaults = %q/%q/%q, want outlined/md/text", p.Variant, p.Size, p.Type)
	}
	if m.Focused() {
		t.Error("new field should start blurred")
	}
}

func TestTypingCallsOnChange(t *testing.T) {
	var got []string
	m := New(Props{OnChange: func(v string) { got = append(got, v) }})
	m.Focus()

	m = typeText(m, "ab")
	if m.Value() != "ab" {
		t.Errorf("Value() = %q, want %q", m.Value(), "ab")
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "ab" {
		t.Errorf("OnChange calls = %q, want [a ab]", got)
	}
	if m.Props().Value != "ab" {
		t.Errorf("Props().Value = %q, want %q", m.Props().Value, "ab")
	}
}

func TestBlurredIgnoresTyping(t *testing.T) {
	m := typeText(New(Props{}), "x")
	if m.Value() != "" {
		t.Errorf("Value() = %q, want empty", m.Value())
	}
}

func TestClear(t *testing.T) {
	tests := []struct {
		name      string
		props     Props
		wantValue string
		wantCalls int
	}{
		{"clears", Props{Value: "abc", ShowClearButton: true}, "", 1},
		{"button hidden", Props{Value: "abc"}, "abc", 0},
		{"already empty", Props{ShowClearButton: true}, "", 0},
		{"disabled", Props{Value: "abc", ShowClearButton: true, Disabled: true}, "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			props := tt.props
			props.OnChange = func(v string) {
				calls++
				if v != "" {
					t.Errorf("OnChange(%q), want empty", v)
				}
			}
			m := New(props)
			m.Clear()
			if m.Value() != tt.wantValue {
				t.Errorf("Value() = %q, want %q", m.Value(), tt.wantValue)
			}
			if calls != tt.wantCalls {
				t.Errorf("OnChange calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestClearKey(t *testing.T) {
	m := New(Props{Value: "abc", ShowClearButton: true})
	m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if m.Value() != "" {
		t.Errorf("Value() = %q, want empty", m.Value())
	}
}

func TestTogglePassword(t *testing.T) {
	m := New(Props{Value: "secret", Type: TypePassword, ShowPasswordToggle: true})

	if view := ansi.Strip(m.View()); strings.Contains(view, "secret") || !strings.Contains(view, "••••••") {
		t.Errorf("masked view = %q", view)
	}

	m.TogglePassword()
	if !m.PasswordVisible() {
		t.Fatal("password should be visible after toggle")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "secret") || !strings.Contains(view, hidePassword) {
		t.Errorf("visible view = %q", view)
	}

	m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.PasswordVisible() {
		t.Error("ctrl+r should mask the password again")
	}
}

func TestTogglePasswordIgnored(t *testing.T) {
	tests := []struct {
		name  string
		props Props
	}{
		{"text field", Props{Value: "x", ShowPasswordToggle: true}},
		{"toggle hidden", Props{Value: "x", Type: TypePassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.props)
			m.TogglePassword()
			if m.PasswordVisible() {
				t.Error("toggle should be ignored")
			}
		})
	}
}

func TestDisabled(t *testing.T) {
	calls := 0
	m := New(Props{Value: "keep", Disabled: true, OnChange: func(string) { calls++ }})

	if cmd := m.Focus(); cmd != nil || m.Focused() {
		t.Error("disabled field should not take focus")
	}
	m = typeText(m, "zz")
	if m.Value() != "keep" || calls != 0 {
		t.Errorf("Value() = %q, calls = %d; disabled field changed", m.Value(), calls)
	}

	m.SetDisabled(false)
	m.Focus()
	m.SetDisabled(true)
	if m.Focused() {
		t.Error("disabling should blur the field")
	}
}

func TestViewMessages(t *testing.T) {
	tests := []struct {
		name    string
		props   Props
		want    []string
		notWant []string
	}{
		{
			name:  "label and helper",
			props: Props{Label: "Email", HelperText: "We never share it"},
			want:  []string{"Email", "We never share it"},
		},
		{
			name:    "error hides helper",
			props:   Props{Label: "Email", HelperText: "We never share it", ErrorMessage: "Required"},
			want:    []string{"Email", "Required"},
			notWant: []string{"We never share it"},
		},
		{
			name:  "clear button with value",
			props: Props{Value: "abc", ShowClearButton: true},
			want:  []string{clearGlyph},
		},
		{
			name:    "no clear button when empty",
			props:   Props{ShowClearButton: true},
			notWant: []string{clearGlyph},
		},
		{
			name:    "no clear button when disabled",
			props:   Props{Value: "abc", ShowClearButton: true, Disabled: true},
			notWant: []string{clearGlyph},
		},
		{
			name:  "password toggle",
			props: Props{Type: TypePassword, ShowPasswordToggle: true},
			want:  []string{showPassword},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ansi.Strip(New(tt.props).View())
			for _, s := range tt.want {
				if !strings.Contains(view, s) {
					t.Errorf("view missing %q:\n%s", s, view)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(view, s) {
					t.Errorf("view should not contain %q:\n%s", s, view)
				}
			}
		})
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		props Props
		want  bool
	}{
		{Props{}, false},
		{Props{Invalid: true}, true},
		{Props{ErrorMessage: "bad"}, true},
	}

	for _, tt := range tests {
		if got := New(tt.props).Invalid(); got != tt.want {
			t.Errorf("Invalid() with %+v = %v, want %v", tt.props, got, tt.want)
		}
	}
}

func TestVariantFrames(t *testing.T) {
	tests := []struct {
		variant    Variant
		wantBorder bool
	}{
		{VariantOutlined, true},
		{VariantFilled, false},
		{VariantGhost, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			view := ansi.Strip(New(Props{Value: "v", Variant: tt.variant}).View())
			if got := strings.Contains(view, "╭"); got != tt.wantBorder {
				t.Errorf("border drawn = %v, want %v:\n%s", got, tt.wantBorder, view)
			}
		})
	}
}

func TestSizeWidths(t *testing.T) {
	small := New(Props{Size: SizeSmall})
	large := New(Props{Size: SizeLarge})
	if small.input.Width >= large.input.Width {
		t.Errorf("small width %d should be less than large width %d", small.input.Width, large.input.Width)
	}
}
