package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used to draw the stepper.
type Theme struct {
	Name string

	// Base colors
	Surface string
	FocusBg string

	// Buttons
	SelectionBg   string // Focused button background
	SelectionText string // Focused button text
	Border        string
	BorderFocus   string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Warning string
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(1, 2),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Editing: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Underline(true),

		FocusedField: lipgloss.NewStyle().
			Background(lipgloss.Color(t.FocusBg)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		ButtonHover: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)).
			Bold(true),

		ButtonFocus: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.Surface)).
			Padding(1, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Surface lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Editing lipgloss.Style

	FocusedField lipgloss.Style

	Button         lipgloss.Style
	ButtonHover    lipgloss.Style
	ButtonFocus    lipgloss.Style
	ButtonDisabled lipgloss.Style
	Separator      lipgloss.Style

	MutedText lipgloss.Style

	Modal lipgloss.Style
}

// themes lists the built-in themes in cycling order. The first is the
// default.
var themes = []Theme{
	{
		// https://draculatheme.com
		Name:          "Dracula",
		Surface:       "#282A36",
		FocusBg:       "#343746",
		SelectionBg:   "#44475A",
		SelectionText: "#F8F8F2",
		Border:        "#44475A",
		BorderFocus:   "#BD93F9",
		Text:          "#F8F8F2",
		Muted:         "#6272A4",
		Faint:         "#44475A",
		Accent:        "#BD93F9",
		Warning:       "#FFB86C",
		Info:          "#8BE9FD",
	},
	{
		// Tailwind slate with sky accents
		Name:          "Slate",
		Surface:       "#0f172a",
		FocusBg:       "#283548",
		SelectionBg:   "#0284c7",
		SelectionText: "#f8fafc",
		Border:        "#334155",
		BorderFocus:   "#38bdf8",
		Text:          "#f1f5f9",
		Muted:         "#94a3b8",
		Faint:         "#64748b",
		Accent:        "#38bdf8",
		Warning:       "#f59e0b",
		Info:          "#06b6d4",
	},
}

// GetTheme returns the theme called name, or the default theme.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the theme after current in the cycle. Unknown names
// start the cycle over.
func NextTheme(current string) string {
	for i, t := range themes {
		if t.Name == current {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// ThemeNames returns available theme names in cycling order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
