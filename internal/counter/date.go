package counter

import "fmt"

// Year range accepted by the date counter.
const (
	MinYear = 1
	MaxYear = 5000
)

// DateValue is a calendar date. Day never exceeds DaysInMonth(Year, Month).
type DateValue struct {
	Year  int
	Month int
	Day   int
}

// String formats the date as YYYY/MM/DD.
func (d DateValue) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Focus selects which date field the step buttons act on.
type Focus int

const (
	FocusNone Focus = iota
	FocusYear
	FocusMonth
	FocusDay
)

func (f Focus) String() string {
	switch f {
	case FocusYear:
		return "year"
	case FocusMonth:
		return "month"
	case FocusDay:
		return "day"
	default:
		return "none"
	}
}

// Next returns the field after f, wrapping from day back to year.
func (f Focus) Next() Focus {
	switch f {
	case FocusYear:
		return FocusMonth
	case FocusMonth:
		return FocusDay
	default:
		return FocusYear
	}
}

// Prev returns the field before f, wrapping from year back to day.
func (f Focus) Prev() Focus {
	switch f {
	case FocusDay:
		return FocusMonth
	case FocusMonth:
		return FocusYear
	default:
		return FocusDay
	}
}

// Direction is the sign of a step.
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = -1
)

// Date is a year/month/day counter whose step buttons act on the focused
// field. Years clamp at MinYear and MaxYear; months and days wrap.
type Date struct {
	value DateValue
	step  int
	focus Focus
}

// NewDate clamps each field into range. A step below 1 becomes 1.
func NewDate(year, month, day, step int) *Date {
	if step < 1 {
		step = 1
	}
	d := &Date{step: step}
	d.value.Year = clamp(year, MinYear, MaxYear)
	d.value.Month = clamp(month, 1, 12)
	d.value.Day = clamp(day, 1, DaysInMonth(d.value.Year, d.value.Month))
	return d
}

func (d *Date) Value() DateValue { return d.value }
func (d *Date) Step() int { return d.step }
func (d *Date) Focus() Focus { return d.focus }

// DayLimit returns the number of days in the current month.
func (d *Date) DayLimit() int {
	return DaysInMonth(d.value.Year, d.value.Month)
}

// IncDisabled reports whether the increment button has no effect. Only the
// year field has an edge; months and days wrap.
func (d *Date) IncDisabled() bool {
	return d.focus == FocusYear && d.value.Year == MaxYear
}

// DecDisabled reports whether the decrement button has no effect.
func (d *Date) DecDisabled() bool {
	return d.focus == FocusYear && d.value.Year == MinYear
}

// IncrementFocused steps the focused field up and reports whether the date
// changed. It does nothing without a focused field.
func (d *Date) IncrementFocused() bool {
	return d.stepFocused(DirUp)
}

// DecrementFocused steps the focused field down.
func (d *Date) DecrementFocused() bool {
	return d.stepFocused(DirDown)
}

// SetFocus moves focus to f. Landing on the day field from no focus with a
// direction also steps the day once in that direction, which is how arrow
// navigation enters the widget. It reports whether the date changed.
func (d *Date) SetFocus(f Focus, dir Direction) bool {
	prev := d.focus
	d.focus = f
	if prev == FocusNone && f == FocusDay && dir != DirNone {
		return d.stepFocused(dir)
	}
	return false
}

// SetYear clamps y into [MinYear, MaxYear] and re-clamps the day.
func (d *Date) SetYear(y int) bool {
	prev := d.value
	d.value.Year = clamp(y, MinYear, MaxYear)
	d.clampDay()
	return d.value != prev
}

// SetMonth clamps m into [1, 12] and re-clamps the day.
func (d *Date) SetMonth(m int) bool {
	prev := d.value
	d.value.Month = clamp(m, 1, 12)
	d.clampDay()
	return d.value != prev
}

// SetDay clamps day into the current month.
func (d *Date) SetDay(day int) bool {
	prev := d.value
	d.value.Day = clamp(day, 1, d.DayLimit())
	return d.value != prev
}

func (d *Date) stepFocused(dir Direction) bool {
	sign := int(dir)
	switch d.focus {
	case FocusYear:
		// Steps past the whole year range saturate.
		return d.SetYear(d.value.Year + sign*min(d.step, MaxYear-MinYear))
	case FocusMonth:
		// A step that is a multiple of 12 leaves the month unchanged.
		return d.SetMonth(wrap(d.value.Month, sign*(d.step%12), 12))
	case FocusDay:
		n := d.DayLimit()
		return d.SetDay(wrap(d.value.Day, sign*(d.step%n), n))
	}
	return false
}

func (d *Date) clampDay() {
	if limit := d.DayLimit(); d.value.Day > limit {
		d.value.Day = limit
	}
}

// wrap moves a 1-based value by delta within [1, n].
func wrap(v, delta, n int) int {
	return ((v-1+delta)%n+n)%n + 1
}
