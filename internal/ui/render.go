package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tally/internal/counter"
)

// The widget row sits inside the surface padding.
const (
	originX = 2
	originY = 1
)

// zone is a clickable region of the widget row.
type zone int

const (
	zoneNone zone = iota
	zoneDecrease
	zoneIncrease
	zoneYear
	zoneMonth
	zoneDay
)

// span is the horizontal extent of a zone, end exclusive.
type span struct {
	zone       zone
	start, end int
}

// piece is one rendered fragment of the widget row.
type piece struct {
	text string
	zone zone
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}
	styles := m.theme.Styles()
	row, _ := m.layout()

	var b strings.Builder
	b.WriteString(row)
	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())
	return styles.Surface.Render(b.String())
}

// layout renders the widget row and records where each zone landed.
func (m Model) layout() (string, []span) {
	var pieces []piece
	switch m.counter.Style() {
	case counter.StyleCompact:
		pieces = m.compactPieces()
	case counter.StyleInline:
		pieces = m.inlinePieces()
	case counter.StyleInlineDate:
		pieces = m.datePieces()
	default:
		pieces = m.listPieces()
	}

	var (
		b     strings.Builder
		spans []span
		x     = originX
	)
	for _, p := range pieces {
		w := lipgloss.Width(p.text)
		if p.zone != zoneNone {
			spans = append(spans, span{zone: p.zone, start: x, end: x + w})
		}
		b.WriteString(p.text)
		x += w
	}
	return b.String(), spans
}

func (m Model) listPieces() []piece {
	styles := m.theme.Styles()
	var pieces []piece
	if m.label != "" {
		pieces = append(pieces, piece{text: styles.Label.Render(m.label) + "   "})
	}
	return append(pieces,
		piece{text: m.renderButton("[ - ]", buttonDecrease), zone: zoneDecrease},
		piece{text: "  "},
		piece{text: m.renderValue()},
		piece{text: "  "},
		piece{text: m.renderButton("[ + ]", buttonIncrease), zone: zoneIncrease},
	)
}

func (m Model) compactPieces() []piece {
	sep := m.theme.Styles().Separator.Render("│")
	return []piece{
		{text: m.renderButton("[ - ", buttonDecrease), zone: zoneDecrease},
		{text: sep},
		{text: " " + m.renderValue() + " "},
		{text: sep},
		{text: m.renderButton(" + ]", buttonIncrease), zone: zoneIncrease},
	}
}

func (m Model) inlinePieces() []piece {
	value := m.renderValue()
	if w := m.counter.TextWidth(); w > 0 {
		value = lipgloss.NewStyle().Width(w).Render(value)
	}
	return []piece{
		{text: value},
		{text: " "},
		{text: m.renderButton("▲", buttonIncrease), zone: zoneIncrease},
		{text: m.renderButton("▼", buttonDecrease), zone: zoneDecrease},
	}
}

func (m Model) datePieces() []piece {
	d := m.counter.Date()
	slash := m.theme.Styles().MutedText.Render("/")
	return []piece{
		{text: m.renderDateField(counter.FieldYear, counter.FocusYear, fmt.Sprintf("%04d", d.Year)), zone: zoneYear},
		{text: slash},
		{text: m.renderDateField(counter.FieldMonth, counter.FocusMonth, fmt.Sprintf("%02d", d.Month)), zone: zoneMonth},
		{text: slash},
		{text: m.renderDateField(counter.FieldDay, counter.FocusDay, fmt.Sprintf("%02d", d.Day)), zone: zoneDay},
		{text: " "},
		{text: m.renderButton("▲", buttonIncrease), zone: zoneIncrease},
		{text: m.renderButton("▼", buttonDecrease), zone: zoneDecrease},
	}
}

func (m Model) renderValue() string {
	styles := m.theme.Styles()
	text := m.counter.Text(counter.FieldValue)
	if m.counter.Editing(counter.FieldValue) {
		return styles.Editing.Render(text)
	}
	return styles.Value.Render(text)
}

func (m Model) renderDateField(f counter.Field, focus counter.Focus, settled string) string {
	styles := m.theme.Styles()
	if m.counter.Editing(f) {
		return styles.Editing.Render(m.counter.Text(f))
	}
	if m.counter.Focus() == focus {
		return styles.FocusedField.Render(settled)
	}
	return styles.Value.Render(settled)
}

func (m Model) renderButton(label string, b button) string {
	styles := m.theme.Styles()

	disabled := m.counter.DecDisabled()
	hover := m.hoverDec
	if b == buttonIncrease {
		disabled = m.counter.IncDisabled()
		hover = m.hoverInc
	}

	switch {
	case disabled:
		return styles.ButtonDisabled.Render(label)
	case m.focused == b:
		return styles.ButtonFocus.Render(label)
	case hover:
		return styles.ButtonHover.Render(label)
	default:
		return styles.Button.Render(label)
	}
}

// zoneAt returns the zone under the terminal cell (x, y).
func (m Model) zoneAt(x, y int) zone {
	if y != originY {
		return zoneNone
	}
	_, spans := m.layout()
	for _, s := range spans {
		if x >= s.start && x < s.end {
			return s.zone
		}
	}
	return zoneNone
}

// handleMouse maps wheel, click, and motion events onto the counter.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.step(counter.DirUp)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.step(counter.DirDown)
		return m, nil
	}

	z := m.zoneAt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		m.hover(z)

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.hover(z)
		switch z {
		case zoneDecrease:
			m.step(counter.DirDown)
		case zoneIncrease:
			m.step(counter.DirUp)
		case zoneYear:
			m.counter.SetFocus(counter.FocusYear, counter.DirNone)
		case zoneMonth:
			m.counter.SetFocus(counter.FocusMonth, counter.DirNone)
		case zoneDay:
			m.counter.SetFocus(counter.FocusDay, counter.DirNone)
		}
	}
	return m, nil
}

// hover updates the hover flags and reports transitions.
func (m *Model) hover(z zone) {
	if dec := z == zoneDecrease; dec != m.hoverDec {
		m.hoverDec = dec
		m.counter.HoverDecrease(dec)
	}
	if inc := z == zoneIncrease; inc != m.hoverInc {
		m.hoverInc = inc
		m.counter.HoverIncrease(inc)
	}
}
