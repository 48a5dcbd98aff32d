package counter

import (
	"go.uber.org/zap"
)

// Field names one editable text field.
type Field int

const (
	FieldValue Field = iota
	FieldYear
	FieldMonth
	FieldDay
)

func (f Field) String() string {
	switch f {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	default:
		return "value"
	}
}

// FieldFor returns the text field behind a date focus.
func FieldFor(f Focus) (Field, bool) {
	switch f {
	case FocusYear:
		return FieldYear, true
	case FocusMonth:
		return FieldMonth, true
	case FocusDay:
		return FieldDay, true
	default:
		return FieldValue, false
	}
}

// Hooks are the notifications a Counter sends outward. Every hook is
// optional and called synchronously on the caller's goroutine.
type Hooks struct {
	// OnChange fires once per committed change of a number counter.
	OnChange func(value int)
	// OnDateChange fires once per committed change of a date counter.
	OnDateChange func(date DateValue)

	OnHoverIncrease func(hovering bool)
	OnHoverDecrease func(hovering bool)
	OnFocusIncrease func()
	OnFocusDecrease func()
	OnBlurIncrease  func()
	OnBlurDecrease  func()
}

// Counter is one stepper widget instance: a number or a date, its text
// fields, and the hooks it reports to. It is not safe for concurrent use;
// all calls are expected from a single event loop.
type Counter struct {
	style     Style
	textWidth int

	number *Bounded
	date   *Date
	inputs map[Field]*TextCommit

	hooks  Hooks
	logger *zap.Logger
}

// New builds a counter from a resolved config. A nil logger discards logs.
func New(cfg Config, hooks Hooks, logger *zap.Logger) *Counter {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Counter{
		hooks:  hooks,
		logger: logger,
		inputs: make(map[Field]*TextCommit),
	}

	switch cfg := cfg.(type) {
	case DateConfig:
		c.style = StyleInlineDate
		c.date = NewDate(cfg.Year, cfg.Month, cfg.Day, cfg.Step)
		v := c.date.Value()
		c.inputs[FieldYear] = NewTextCommit(v.Year, MinYear, MaxYear, DigitsFor(MaxYear, MaxYear), DateCommitDelay)
		c.inputs[FieldMonth] = NewTextCommit(v.Month, 1, 12, DigitsFor(12, 12), DateCommitDelay)
		c.inputs[FieldDay] = NewTextCommit(v.Day, 1, c.date.DayLimit(), DigitsFor(31, 31), DateCommitDelay)
		c.inputs[FieldYear].SetEagerWidth(4)
		c.inputs[FieldMonth].SetEagerWidth(2)
		c.inputs[FieldDay].SetEagerWidth(2)
	case InlineConfig:
		c.style = StyleInline
		c.textWidth = cfg.TextWidth
		c.initNumber(cfg.NumberConfig)
	case NumberConfig:
		c.style = cfg.Kind
		c.initNumber(cfg)
	default:
		c.style = StyleList
		c.initNumber(NumberConfig{Value: DefaultValue, Min: DefaultMin, Max: DefaultMax, Step: DefaultStep})
	}

	c.logger = c.logger.With(zap.Stringer("style", c.style))
	return c
}

// FromOptions resolves opts and builds a counter.
func FromOptions(opts Options, hooks Hooks, logger *zap.Logger) (*Counter, error) {
	cfg, err := opts.Resolve()
	if err != nil {
		return nil, err
	}
	return New(cfg, hooks, logger), nil
}

func (c *Counter) initNumber(cfg NumberConfig) {
	c.number = NewBounded(cfg.Value, cfg.Min, cfg.Max, cfg.Step)
	lo, hi := c.number.Min(), c.number.Max()
	c.inputs[FieldValue] = NewTextCommit(c.number.Value(), lo, hi, DigitsFor(lo, hi), ValueCommitDelay)
}

func (c *Counter) Style() Style { return c.style }
func (c *Counter) TextWidth() int { return c.textWidth }

// IsDate reports whether the counter holds a date.
func (c *Counter) IsDate() bool { return c.date != nil }

// Editable reports whether the style accepts typed input.
func (c *Counter) Editable() bool {
	return c.style == StyleInline || c.style == StyleInlineDate
}

// Value returns the number, or zero for a date counter.
func (c *Counter) Value() int {
	if c.number == nil {
		return 0
	}
	return c.number.Value()
}

// Bounds returns the number range, or the year range for a date counter.
func (c *Counter) Bounds() (int, int) {
	if c.number == nil {
		return MinYear, MaxYear
	}
	return c.number.Min(), c.number.Max()
}

// Date returns the date, or the zero value for a number counter.
func (c *Counter) Date() DateValue {
	if c.date == nil {
		return DateValue{}
	}
	return c.date.Value()
}

// Focus returns the focused date field.
func (c *Counter) Focus() Focus {
	if c.date == nil {
		return FocusNone
	}
	return c.date.Focus()
}

// IncDisabled reports whether the increment button is at its edge.
func (c *Counter) IncDisabled() bool {
	if c.date != nil {
		return c.date.IncDisabled()
	}
	return c.number.AtMax()
}

// DecDisabled reports whether the decrement button is at its edge.
func (c *Counter) DecDisabled() bool {
	if c.date != nil {
		return c.date.DecDisabled()
	}
	return c.number.AtMin()
}

// Text returns the text shown in field f.
func (c *Counter) Text(f Field) string {
	if tc := c.inputs[f]; tc != nil {
		return tc.Text()
	}
	return ""
}

// Editing reports whether field f has a keystroke sequence in flight.
func (c *Counter) Editing(f Field) bool {
	if tc := c.inputs[f]; tc != nil {
		return tc.Editing()
	}
	return false
}

// Increment settles any text edit and steps the counter up. For a date the
// focused field moves. It reports whether the value changed.
func (c *Counter) Increment() bool {
	return c.step(DirUp)
}

// Decrement settles any text edit and steps the counter down.
func (c *Counter) Decrement() bool {
	return c.step(DirDown)
}

func (c *Counter) step(dir Direction) bool {
	changed := c.settle()

	if c.date != nil {
		prev := c.date.Value()
		if dir == DirUp {
			c.date.IncrementFocused()
		} else {
			c.date.DecrementFocused()
		}
		return c.dateChanged(prev) || changed
	}

	prev := c.number.Value()
	if dir == DirUp {
		c.number.Increment()
	} else {
		c.number.Decrement()
	}
	return c.numberChanged(prev) || changed
}

// Input feeds the full text of field f after a keystroke. The caller
// schedules Expire when the result carries a timer.
func (c *Counter) Input(f Field, text string) Result {
	tc := c.inputs[f]
	if tc == nil || !c.Editable() {
		return Result{Outcome: OutcomeIgnored}
	}
	res := tc.Input(text)
	if res.Outcome == OutcomeRejected {
		c.logger.Debug("keystroke rejected", zap.Stringer("field", f), zap.String("text", text))
	}
	c.apply(f, res)
	return res
}

// Expire delivers a fired debounce timer for field f.
func (c *Counter) Expire(f Field, seq uint64) Result {
	tc := c.inputs[f]
	if tc == nil {
		return Result{Outcome: OutcomeIgnored}
	}
	res := tc.Expire(seq)
	c.apply(f, res)
	return res
}

// Blur ends the edit in field f, committing valid text and reverting the
// rest. Submitting a field behaves the same way.
func (c *Counter) Blur(f Field) Result {
	tc := c.inputs[f]
	if tc == nil {
		return Result{Outcome: OutcomeIgnored}
	}
	res := tc.Blur()
	c.apply(f, res)
	return res
}

// Settle blurs every field with an edit in flight and reports whether a
// value changed.
func (c *Counter) Settle() bool {
	return c.settle()
}

func (c *Counter) settle() bool {
	changed := false
	for _, f := range []Field{FieldValue, FieldYear, FieldMonth, FieldDay} {
		tc := c.inputs[f]
		if tc == nil || (!tc.Editing() && !tc.Pending()) {
			continue
		}
		if res := c.Blur(f); res.Outcome == OutcomeCommitted && res.Changed {
			changed = true
		}
	}
	return changed
}

// SetFocus moves date focus, first settling the edit in the field being
// left. It reports whether the date changed.
func (c *Counter) SetFocus(f Focus, dir Direction) bool {
	if c.date == nil {
		return false
	}
	changed := false
	if cur, ok := FieldFor(c.date.Focus()); ok && c.date.Focus() != f {
		if res := c.Blur(cur); res.Outcome == OutcomeCommitted && res.Changed {
			changed = true
		}
	}

	prev := c.date.Value()
	c.date.SetFocus(f, dir)
	c.logger.Debug("focus", zap.Stringer("field", f))
	return c.dateChanged(prev) || changed
}

func (c *Counter) HoverIncrease(hovering bool) {
	if c.hooks.OnHoverIncrease != nil {
		c.hooks.OnHoverIncrease(hovering)
	}
}

func (c *Counter) HoverDecrease(hovering bool) {
	if c.hooks.OnHoverDecrease != nil {
		c.hooks.OnHoverDecrease(hovering)
	}
}

func (c *Counter) FocusIncrease() {
	if c.hooks.OnFocusIncrease != nil {
		c.hooks.OnFocusIncrease()
	}
}

func (c *Counter) FocusDecrease() {
	if c.hooks.OnFocusDecrease != nil {
		c.hooks.OnFocusDecrease()
	}
}

func (c *Counter) BlurIncrease() {
	if c.hooks.OnBlurIncrease != nil {
		c.hooks.OnBlurIncrease()
	}
}

func (c *Counter) BlurDecrease() {
	if c.hooks.OnBlurDecrease != nil {
		c.hooks.OnBlurDecrease()
	}
}

// apply pushes a text commit into the model.
func (c *Counter) apply(f Field, res Result) {
	switch res.Outcome {
	case OutcomeReverted:
		c.logger.Debug("edit reverted", zap.Stringer("field", f), zap.Int("value", res.Value))
		return
	case OutcomeCommitted:
	default:
		return
	}

	if c.number != nil {
		prev := c.number.Value()
		c.number.SetValue(res.Value)
		c.numberChanged(prev)
		return
	}

	prev := c.date.Value()
	switch f {
	case FieldYear:
		c.date.SetYear(res.Value)
	case FieldMonth:
		c.date.SetMonth(res.Value)
	case FieldDay:
		c.date.SetDay(res.Value)
	}
	c.dateChanged(prev)
}

// numberChanged syncs the text field and fires OnChange if the value moved.
func (c *Counter) numberChanged(prev int) bool {
	v := c.number.Value()
	if tc := c.inputs[FieldValue]; tc.Committed() != v {
		tc.Sync(v)
	}
	if v == prev {
		return false
	}
	c.logger.Debug("commit", zap.Int("value", v))
	if c.hooks.OnChange != nil {
		c.hooks.OnChange(v)
	}
	return true
}

// dateChanged syncs the date fields whose committed text no longer matches
// the model and fires OnDateChange if the date moved. The field that just
// committed already matches, so its edit stays in flight.
func (c *Counter) dateChanged(prev DateValue) bool {
	v := c.date.Value()
	c.inputs[FieldDay].SetBounds(1, c.date.DayLimit())
	c.syncField(FieldYear, v.Year)
	c.syncField(FieldMonth, v.Month)
	c.syncField(FieldDay, v.Day)
	if v == prev {
		return false
	}
	c.logger.Debug("commit", zap.Stringer("date", v))
	if c.hooks.OnDateChange != nil {
		c.hooks.OnDateChange(v)
	}
	return true
}

func (c *Counter) syncField(f Field, want int) {
	if tc := c.inputs[f]; tc.Committed() != want {
		tc.Sync(want)
	}
}
