// Package ui renders a counter as a Bubble Tea program.
//
// The Model owns one counter.Counter and translates terminal events into
// counter calls: arrow keys and the mouse wheel step the value, digits and
// backspace feed the text fields of editable styles, tab cycles date
// fields, and left/right move focus between the stepper buttons.
//
// # Rendering
//
// Each style draws a single row:
//
//   - list:    label   [ - ]  12  [ + ]
//   - compact: [ - │ 12 │ + ]
//   - inline:  12 ▲▼
//   - date:    2024/02/29 ▲▼
//
// Buttons at their edge render faint. The row's cells are recorded as
// zones so mouse clicks and hover can be routed to the right button or
// date field.
//
// # Debounced Commits
//
// When a keystroke leaves a field holding text that cannot be committed,
// the counter asks for a timer. The model schedules it with tea.Tick and
// hands the resulting commitTimeoutMsg back to Counter.Expire; timers that
// were superseded are ignored there.
//
// # Themes
//
// Dracula and Slate are built in. T cycles them and the choice is saved
// through the prefs package.
package ui
