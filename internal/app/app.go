package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/tally/internal/config"
	"github.com/five82/tally/internal/counter"
	"github.com/five82/tally/internal/logtail"
	"github.com/five82/tally/internal/prefs"
	"github.com/five82/tally/internal/ui"
)

// Options configure one tally run. Counter fields that are set override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tally/prefs.toml
	Counter    counter.Options
	Label      string
	Theme      string
	Debug      bool
}

// Outcome is what the user did with the prompt.
type Outcome struct {
	Confirmed bool
	Text      string
}

// Run shows the counter until the user confirms, aborts, or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) (Outcome, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("load config: %w", err)
	}

	logger, err := NewLogger(cfg.LogPath, cfg.Debug || opts.Debug)
	if err != nil {
		return Outcome{}, fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	c, err := counter.FromOptions(cfg.Counter.Merge(opts.Counter), commitHooks(logger), logger)
	if err != nil {
		return Outcome{}, fmt.Errorf("build counter: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	theme := prefs.Load(prefsPath).Theme
	if opts.Theme != "" {
		theme = opts.Theme
	}

	logger.Info("prompt started", zap.Stringer("style", c.Style()), zap.String("theme", theme))

	m, err := ui.Run(ctx, ui.Options{
		Counter:   c,
		Label:     opts.Label,
		ThemeName: theme,
		PrefsPath: prefsPath,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("tui failed", zap.Error(err))
		return Outcome{}, err
	}

	out := Outcome{Confirmed: m.Confirmed(), Text: m.Result()}
	record(logger, c.Style(), out)
	return out, nil
}

// History returns the last n confirmed values from the log file named by
// the config at configPath.
func History(configPath string, n int) ([]logtail.Entry, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	entries, err := logtail.Confirmed(cfg.LogPath, n)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return entries, nil
}

func record(logger *zap.Logger, style counter.Style, out Outcome) {
	if !out.Confirmed {
		logger.Info("aborted", zap.Stringer("style", style))
		return
	}
	logger.Info(logtail.ConfirmedMessage, zap.Stringer("style", style), zap.String("value", out.Text))
}

// commitHooks logs every committed value.
func commitHooks(logger *zap.Logger) counter.Hooks {
	return counter.Hooks{
		OnChange: func(v int) {
			logger.Debug("value changed", zap.Int("value", v))
		},
		OnDateChange: func(d counter.DateValue) {
			logger.Debug("date changed", zap.Stringer("date", d))
		},
	}
}
