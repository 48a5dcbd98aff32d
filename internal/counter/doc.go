// Package counter implements the state behind a bounded number or date
// stepper, independent of any rendering.
//
// # Overview
//
// A Counter is one widget instance. Depending on its Style it carries
// either a Bounded number (list, compact and inline styles) or a Date
// (inline date style), plus one TextCommit per editable text field. The
// package has no knowledge of terminals; internal/ui drives it from Bubble
// Tea messages and renders the result.
//
// # Components
//
//   - calendar.go: DaysInMonth and the Gregorian leap-year rule
//   - bounded.go: integer clamped to [min, max] with edge flags
//   - textcommit.go: debounced free-text entry for one numeric field
//   - date.go: year/month/day with a focused field and wrap-around stepping
//   - options.go: caller options and their resolved Config variants
//   - counter.go: the controller tying the above to outward hooks
//
// # Text Entry
//
// Every keystroke hands the full field text to Counter.Input. Text that is
// already a valid in-range number commits at once; date fields also need
// their full width (four year digits, two for month and day). Anything
// else (short date text, an empty field, a lone minus sign, an
// out-of-range number) arms a timer: the Result carries the delay and a
// sequence number, and the caller delivers Counter.Expire(field, seq) when
// it fires. A later keystroke, an early commit or a blur bumps the
// sequence, so an old timer that still fires is ignored. When the timer
// fires, valid text commits and invalid text reverts to the last committed
// value.
//
// Delays are 1500ms for the number field and 1000ms for each date field.
// Each field owns its own sequence, so editing the month never disturbs a
// pending year edit.
//
// Typing as many characters as the field's wrap length keeps only the last
// digit, mirroring a spinner that rolls over when overfilled.
//
// # Dates
//
// Year steps clamp to [MinYear, MaxYear] and set the edge flags that dim
// the step buttons. Month and day steps wrap modulo 12 and modulo the
// month's length, using step%12 and step%days; a step that is an exact
// multiple leaves the field unchanged. After any year or month change the
// day is clamped to the new month.
//
// Focus starts at FocusNone, where the step buttons do nothing. Entering
// the day field from FocusNone with a direction also steps the day once.
//
// # Notifications
//
// Hooks.OnChange and Hooks.OnDateChange fire once per committed change.
// A keystroke that commits eagerly counts; buffered keystrokes and steps
// that land on the same value do not. Typing a year digit by digit
// notifies once, when the fourth digit lands. Hover, focus and blur hooks
// are plain pass-through calls.
//
// # Concurrency
//
// A Counter is owned by a single event loop and holds no locks. Timers are
// the caller's concern; the counter only hands out sequence numbers.
package counter
