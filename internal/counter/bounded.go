package counter

// Bounded is an integer that stays within [min, max] and moves by step.
type Bounded struct {
	value int
	min   int
	max   int
	step  int
}

// NewBounded builds a counter. A step below 1 becomes 1, a max below min
// collapses onto min, and value is clamped into range.
func NewBounded(value, min, max, step int) *Bounded {
	if step < 1 {
		step = 1
	}
	if max < min {
		max = min
	}
	return &Bounded{
		value: clamp(value, min, max),
		min:   min,
		max:   max,
		step:  step,
	}
}

func (b *Bounded) Value() int { return b.value }
func (b *Bounded) Min() int { return b.min }
func (b *Bounded) Max() int { return b.max }
func (b *Bounded) Step() int { return b.step }

// AtMin reports whether decrementing would have no effect.
func (b *Bounded) AtMin() bool { return b.value == b.min }

// AtMax reports whether incrementing would have no effect.
func (b *Bounded) AtMax() bool { return b.value == b.max }

// Increment moves the value up by one step, stopping at max. It reports
// whether the value changed.
func (b *Bounded) Increment() bool {
	if b.AtMax() {
		return false
	}
	if uint(b.step) >= uint(b.max)-uint(b.value) {
		return b.SetValue(b.max)
	}
	return b.SetValue(b.value + b.step)
}

// Decrement moves the value down by one step, stopping at min.
func (b *Bounded) Decrement() bool {
	if b.AtMin() {
		return false
	}
	if uint(b.step) >= uint(b.value)-uint(b.min) {
		return b.SetValue(b.min)
	}
	return b.SetValue(b.value - b.step)
}

// SetValue clamps v into range and stores it.
func (b *Bounded) SetValue(v int) bool {
	v = clamp(v, b.min, b.max)
	if v == b.value {
		return false
	}
	b.value = v
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
