package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/tally/internal/counter"
	"github.com/five82/tally/internal/prefs"
)

// button identifies which stepper button holds keyboard focus.
type button int

const (
	buttonNone button = iota
	buttonDecrease
	buttonIncrease
)

// commitTimeoutMsg is delivered when a text field's debounce timer fires.
type commitTimeoutMsg struct {
	field counter.Field
	seq   uint64
}

// Options configures the UI.
type Options struct {
	Counter   *counter.Counter
	Label     string
	ThemeName string
	PrefsPath string
	Logger    *zap.Logger
}

// Model is the Bubble Tea model wrapping one counter.
type Model struct {
	counter   *counter.Counter
	label     string
	prefsPath string
	logger    *zap.Logger

	keys  keyMap
	help  help.Model
	theme Theme

	width  int
	height int

	focused  button
	hoverDec bool
	hoverInc bool

	confirmed bool
	done      bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := opts.Counter
	m := Model{
		counter:   c,
		label:     opts.Label,
		prefsPath: opts.PrefsPath,
		logger:    logger,
		keys:      DefaultKeyMap().forStyle(c.Editable(), c.IsDate()),
		help:      help.New(),
		theme:     GetTheme(themeName),
	}
	m.applyHelpStyles()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Confirmed reports whether the user accepted the value.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Result returns the counter value as text: the number, or the date as
// YYYY/MM/DD.
func (m Model) Result() string {
	if m.counter.IsDate() {
		return m.counter.Date().String()
	}
	return strconv.Itoa(m.counter.Value())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case commitTimeoutMsg:
		m.counter.Expire(msg.field, msg.seq)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		return m.finish(false)

	case key.Matches(msg, m.keys.Confirm):
		m.counter.Settle()
		return m.finish(true)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		return m.handleEscape()
	}

	if m.counter.Editable() {
		if cmd, ok := m.handleTextKey(msg); ok {
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Increment):
		m.step(counter.DirUp)

	case key.Matches(msg, m.keys.Decrement):
		m.step(counter.DirDown)

	case key.Matches(msg, m.keys.NextField):
		m.counter.SetFocus(m.counter.Focus().Next(), counter.DirNone)

	case key.Matches(msg, m.keys.PrevField):
		m.counter.SetFocus(m.counter.Focus().Prev(), counter.DirNone)

	case key.Matches(msg, m.keys.FocusDecrease):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.FocusIncrease):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.Press):
		m.press()
	}
	return m, nil
}

func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	switch {
	case m.counter.IsDate() && m.counter.Focus() != counter.FocusNone:
		m.counter.SetFocus(counter.FocusNone, counter.DirNone)
		return m, nil
	case m.focused != buttonNone:
		m.setFocus(buttonNone)
		return m, nil
	}
	return m.finish(false)
}

// handleTextKey routes digits, a leading minus sign, and backspace to the
// active text field. ok is false when the key is not a text edit.
func (m Model) handleTextKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	field, ok := m.activeField()
	if !ok {
		return nil, false
	}
	editing := m.counter.Editing(field)

	var text string
	switch {
	case key.Matches(msg, m.keys.Backspace):
		text = m.counter.Text(field)
		if len(text) > 0 {
			text = text[:len(text)-1]
		}

	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && isDigit(msg.Runes[0]):
		text = string(msg.Runes)
		if editing {
			text = m.counter.Text(field) + text
		}

	case msg.String() == "-" && !m.counter.IsDate() && (editing || m.allowsNegative()):
		if editing {
			text = m.counter.Text(field)
		}
		text += "-"

	default:
		return nil, false
	}

	res := m.counter.Input(field, text)
	return commitAfter(field, res), true
}

// allowsNegative reports whether a minus sign can begin a new entry. In
// non-negative ranges it steps down instead.
func (m Model) allowsNegative() bool {
	lo, _ := m.counter.Bounds()
	return lo < 0
}

// activeField returns the text field keystrokes go to.
func (m Model) activeField() (counter.Field, bool) {
	if m.counter.IsDate() {
		return counter.FieldFor(m.counter.Focus())
	}
	return counter.FieldValue, true
}

// step moves the counter one step. A date with no field focused lands on
// the day field and nudges it.
func (m *Model) step(dir counter.Direction) {
	if m.counter.IsDate() && m.counter.Focus() == counter.FocusNone {
		m.counter.SetFocus(counter.FocusDay, dir)
		return
	}
	if dir == counter.DirUp {
		m.counter.Increment()
	} else {
		m.counter.Decrement()
	}
}

// moveFocus shifts keyboard focus between the buttons, or between date
// fields for a date counter.
func (m *Model) moveFocus(delta int) {
	if m.counter.IsDate() {
		f := m.counter.Focus().Next()
		if delta < 0 {
			f = m.counter.Focus().Prev()
		}
		m.counter.SetFocus(f, counter.DirNone)
		return
	}
	switch m.counter.Style() {
	case counter.StyleList, counter.StyleCompact:
	default:
		return
	}
	if delta < 0 {
		m.setFocus(buttonDecrease)
	} else {
		m.setFocus(buttonIncrease)
	}
}

func (m *Model) setFocus(b button) {
	if b == m.focused {
		return
	}
	switch m.focused {
	case buttonDecrease:
		m.counter.BlurDecrease()
	case buttonIncrease:
		m.counter.BlurIncrease()
	}
	m.focused = b
	switch b {
	case buttonDecrease:
		m.counter.FocusDecrease()
	case buttonIncrease:
		m.counter.FocusIncrease()
	}
}

func (m *Model) press() {
	switch m.focused {
	case buttonDecrease:
		m.step(counter.DirDown)
	case buttonIncrease:
		m.step(counter.DirUp)
	}
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyHelpStyles()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

func (m Model) finish(confirmed bool) (tea.Model, tea.Cmd) {
	m.confirmed = confirmed
	m.done = true
	return m, tea.Quit
}

// commitAfter schedules the debounce timer a keystroke asked for.
func commitAfter(field counter.Field, res counter.Result) tea.Cmd {
	if res.Arm <= 0 {
		return nil
	}
	seq := res.Seq
	return tea.Tick(res.Arm, func(time.Time) tea.Msg {
		return commitTimeoutMsg{field: field, seq: seq}
	})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Run starts the Bubble Tea program and blocks until the user confirms or
// aborts. Cancelling ctx aborts the prompt.
func Run(ctx context.Context, opts Options) (Model, error) {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return m, nil
		}
		return m, fmt.Errorf("run tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return m, nil
}
