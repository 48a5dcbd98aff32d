package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the key hints below the widget. The full listing is
// framed as a modal.
func (m Model) renderHelp() string {
	view := m.help.View(m.keys)
	if !m.help.ShowAll {
		return view
	}
	styles := m.theme.Styles()
	title := styles.Label.Render("Keyboard Shortcuts")
	return styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", view))
}

// applyHelpStyles colors the help bubble from the current theme.
func (m *Model) applyHelpStyles() {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))

	m.help.Styles.ShortKey = keyStyle
	m.help.Styles.ShortDesc = descStyle
	m.help.Styles.ShortSeparator = sepStyle
	m.help.Styles.FullKey = keyStyle
	m.help.Styles.FullDesc = descStyle
	m.help.Styles.FullSeparator = sepStyle
	m.help.Styles.Ellipsis = sepStyle
}
