package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the stepper.
type keyMap struct {
	// Stepping
	Increment key.Binding
	Decrement key.Binding

	// Buttons
	FocusDecrease key.Binding
	FocusIncrease key.Binding
	Press         key.Binding

	// Date fields
	NextField key.Binding
	PrevField key.Binding

	// Text entry
	Backspace key.Binding

	// Global
	Confirm    key.Binding
	Escape     key.Binding
	Abort      key.Binding
	Help       key.Binding
	CycleTheme key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Increment: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/k", "Increase"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/j", "Decrease"),
		),

		FocusDecrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Focus decrease button"),
		),
		FocusIncrease: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Focus increase button"),
		),
		Press: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "Press focused button"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next date field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous date field"),
		),

		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("0-9/bksp", "Type a value"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Leave field / cancel"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
	}
}

// forStyle enables only the bindings that mean something for the widget.
func (k keyMap) forStyle(editable, date bool) keyMap {
	k.NextField.SetEnabled(date)
	k.PrevField.SetEnabled(date)
	k.Backspace.SetEnabled(editable)
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.NextField, k.Confirm, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement, k.Backspace},
		{k.FocusDecrease, k.FocusIncrease, k.Press},
		{k.NextField, k.PrevField, k.Escape},
		{k.Confirm, k.Abort, k.CycleTheme, k.Help},
	}
}
