package counter

import (
	"strconv"
	"strings"
	"time"
)

// Settle delays for free-text edits.
const (
	ValueCommitDelay = 1500 * time.Millisecond
	DateCommitDelay  = 1000 * time.Millisecond
)

// Outcome describes what a TextCommit call did with the buffered text.
type Outcome int

const (
	// OutcomeIgnored means nothing happened: a stale timer, or a blur with
	// no edit in flight.
	OutcomeIgnored Outcome = iota
	// OutcomeRejected means the keystroke contained a non-numeric character.
	OutcomeRejected
	// OutcomeBuffered means the text is not yet ready to commit and a timer
	// was armed.
	OutcomeBuffered
	// OutcomeCommitted means the buffered text became the field's value.
	OutcomeCommitted
	// OutcomeReverted means the buffered text was discarded.
	OutcomeReverted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeBuffered:
		return "buffered"
	case OutcomeCommitted:
		return "committed"
	case OutcomeReverted:
		return "reverted"
	default:
		return "ignored"
	}
}

// Result is returned by every TextCommit operation.
//
// When Arm is non-zero the caller owns the timer: after Arm elapses it must
// call Expire with Seq. Arming a new timer makes every earlier Seq stale.
type Result struct {
	Outcome Outcome
	Value   int
	Changed bool
	Arm     time.Duration
	Seq     uint64
}

// TextCommit buffers keystrokes for one numeric field and decides when the
// buffered text becomes the field's value.
//
// Valid in-range text commits as soon as it is typed, unless the field has
// an eager width and the text is shorter than it. Anything else waits for
// the timer and is reverted if it is still invalid when the timer fires or
// the field loses focus.
type TextCommit struct {
	min        int
	max        int
	maxDigits  int
	eagerWidth int
	delay      time.Duration

	committed int
	text      string
	editing   bool
	pending   bool
	seq       uint64
}

// NewTextCommit creates a field holding value. Typing maxDigits characters
// wraps the buffer around to the last digit typed.
func NewTextCommit(value, min, max, maxDigits int, delay time.Duration) *TextCommit {
	return &TextCommit{
		min:       min,
		max:       max,
		maxDigits: maxDigits,
		delay:     delay,
		committed: value,
		text:      strconv.Itoa(value),
	}
}

// DigitsFor returns the wrap-around length for a field bounded by [min, max].
func DigitsFor(lo, hi int) int {
	return max(len(strconv.Itoa(lo)), len(strconv.Itoa(hi))) + 1
}

// SetEagerWidth makes valid text shorter than n digits wait for the timer
// or a blur instead of committing at once. Zero commits any valid text.
func (t *TextCommit) SetEagerWidth(n int) { t.eagerWidth = n }

func (t *TextCommit) Text() string { return t.text }
func (t *TextCommit) Committed() int { return t.committed }
func (t *TextCommit) Editing() bool { return t.editing }
func (t *TextCommit) Pending() bool { return t.pending }
func (t *TextCommit) MaxDigits() int { return t.maxDigits }
func (t *TextCommit) Delay() time.Duration { return t.delay }

// SetBounds changes the accepted range. It does not touch the committed
// value; callers Sync after clamping it themselves.
func (t *TextCommit) SetBounds(min, max int) {
	t.min = min
	t.max = max
}

// Sync replaces the committed value after a change made elsewhere (a
// button press, a dependent field) and drops any edit in flight.
func (t *TextCommit) Sync(v int) {
	t.committed = v
	t.text = strconv.Itoa(v)
	t.editing = false
	t.pending = false
	t.seq++
}

// Input takes the full field text after a keystroke.
func (t *TextCommit) Input(text string) Result {
	if !numericText(text) {
		return Result{Outcome: OutcomeRejected, Value: t.committed}
	}

	t.editing = true
	if t.maxDigits > 0 && len(text) >= t.maxDigits {
		text = text[len(text)-1:]
	}
	t.text = text

	if v, ok := t.parse(); ok && digits(text) >= t.eagerWidth {
		t.pending = false
		t.seq++
		return t.commit(v)
	}

	t.seq++
	t.pending = true
	return Result{
		Outcome: OutcomeBuffered,
		Value:   t.committed,
		Arm:     t.delay,
		Seq:     t.seq,
	}
}

// Expire handles a fired timer. Timers superseded by a later keystroke, an
// early commit, or a blur are ignored.
func (t *TextCommit) Expire(seq uint64) Result {
	if !t.pending || seq != t.seq {
		return Result{Outcome: OutcomeIgnored, Value: t.committed}
	}
	return t.settle()
}

// Blur cancels the pending timer and commits or reverts immediately.
func (t *TextCommit) Blur() Result {
	if !t.editing && !t.pending {
		return Result{Outcome: OutcomeIgnored, Value: t.committed}
	}
	return t.settle()
}

func (t *TextCommit) settle() Result {
	t.pending = false
	t.seq++
	t.editing = false

	if v, ok := t.parse(); ok {
		res := t.commit(v)
		t.text = strconv.Itoa(v)
		return res
	}

	t.text = strconv.Itoa(t.committed)
	return Result{Outcome: OutcomeReverted, Value: t.committed}
}

func (t *TextCommit) commit(v int) Result {
	changed := v != t.committed
	t.committed = v
	return Result{Outcome: OutcomeCommitted, Value: v, Changed: changed}
}

func (t *TextCommit) parse() (int, bool) {
	v, err := strconv.Atoi(t.text)
	if err != nil {
		return 0, false
	}
	if v < t.min || v > t.max {
		return 0, false
	}
	return v, true
}

func digits(s string) int {
	return len(strings.TrimPrefix(s, "-"))
}

// numericText accepts ASCII digits with an optional leading minus sign.
func numericText(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' && i == 0 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
