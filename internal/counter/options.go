package counter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned when Options.Type names no known style.
var ErrUnknownStyle = errors.New("unknown counter type")

// Style selects the counter layout and which state it carries.
type Style int

const (
	StyleList Style = iota
	StyleCompact
	StyleInline
	StyleInlineDate
)

func (s Style) String() string {
	switch s {
	case StyleCompact:
		return "compact"
	case StyleInline:
		return "inline"
	case StyleInlineDate:
		return "date"
	default:
		return "list"
	}
}

// ParseStyle maps a style name to a Style. An empty name means list.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "list":
		return StyleList, nil
	case "compact":
		return StyleCompact, nil
	case "inline":
		return StyleInline, nil
	case "date", "inline_date", "inline-date":
		return StyleInlineDate, nil
	default:
		return StyleList, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// Defaults applied by Resolve to options left unset.
const (
	DefaultValue = 0
	DefaultMin   = 0
	DefaultMax   = 999
	DefaultStep  = 1
	DefaultYear  = 1
	DefaultMonth = 1
	DefaultDay   = 1
)

// Options is the caller-facing construction bundle. Nil fields take their
// defaults. Fields that do not apply to the selected style are ignored.
type Options struct {
	Type      string `toml:"type"`
	Value     *int   `toml:"value"`
	Min       *int   `toml:"min"`
	Max       *int   `toml:"max"`
	Step      *int   `toml:"step"`
	Year      *int   `toml:"year"`
	Month     *int   `toml:"month"`
	Day       *int   `toml:"day"`
	TextWidth *int   `toml:"text_width"`
}

// Merge returns o with every field that is set in over replacing it.
func (o Options) Merge(over Options) Options {
	if strings.TrimSpace(over.Type) != "" {
		o.Type = over.Type
	}
	pick := func(dst **int, src *int) {
		if src != nil {
			v := *src
			*dst = &v
		}
	}
	pick(&o.Value, over.Value)
	pick(&o.Min, over.Min)
	pick(&o.Max, over.Max)
	pick(&o.Step, over.Step)
	pick(&o.Year, over.Year)
	pick(&o.Month, over.Month)
	pick(&o.Day, over.Day)
	pick(&o.TextWidth, over.TextWidth)
	return o
}

// Config is the resolved form of Options: one of NumberConfig,
// InlineConfig or DateConfig.
type Config interface {
	Style() Style
}

// NumberConfig configures the list and compact styles.
type NumberConfig struct {
	Kind  Style
	Value int
	Min   int
	Max   int
	Step  int
}

func (c NumberConfig) Style() Style { return c.Kind }

// InlineConfig configures the inline style, which also accepts typed input.
type InlineConfig struct {
	NumberConfig
	TextWidth int
}

// DateConfig configures the inline date style.
type DateConfig struct {
	Year  int
	Month int
	Day   int
	Step  int
}

func (DateConfig) Style() Style { return StyleInlineDate }

// Resolve applies defaults and picks the config variant for o.Type.
func (o Options) Resolve() (Config, error) {
	style, err := ParseStyle(o.Type)
	if err != nil {
		return nil, err
	}

	step := intOr(o.Step, DefaultStep)
	if style == StyleInlineDate {
		return DateConfig{
			Year:  intOr(o.Year, DefaultYear),
			Month: intOr(o.Month, DefaultMonth),
			Day:   intOr(o.Day, DefaultDay),
			Step:  step,
		}, nil
	}

	num := NumberConfig{
		Kind:  style,
		Value: intOr(o.Value, DefaultValue),
		Min:   intOr(o.Min, DefaultMin),
		Max:   intOr(o.Max, DefaultMax),
		Step:  step,
	}
	if style == StyleInline {
		return InlineConfig{NumberConfig: num, TextWidth: intOr(o.TextWidth, 0)}, nil
	}
	return num, nil
}

// Int returns a pointer to v, for filling Options literals.
func Int(v int) *int { return &v }

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
