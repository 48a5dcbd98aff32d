package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/tally/internal/app"
	"github.com/five82/tally/internal/counter"
	"github.com/five82/tally/internal/ui"
)

// errAborted marks a prompt the user backed out of.
var errAborted = errors.New("aborted")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(os.Stdout)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errAborted) {
			fmt.Fprintf(os.Stderr, "tally: %v\n", err)
		}
		return 1
	}
	return 0
}

type rootFlags struct {
	configPath string
	prefsPath  string
	style      string
	label      string
	theme      string
	debug      bool

	value, min, max, step int
	year, month, day      int
	width                 int
}

func newRootCmd(out io.Writer) *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Prompt for a bounded number or a date in the terminal",
		Long: `tally shows a stepper widget and prints the value you confirm.

Arrow keys, the mouse wheel and the +/- buttons change the value. In the
inline and date styles you can also type digits. Enter prints the value
and exits 0; q, esc or ctrl+c exit 1 without output.`,
		Example: `  tally --type inline --min 0 --max 999 --value 12
  tally --type date --year 2024 --month 2 --day 29`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.Run(cmd.Context(), app.Options{
				ConfigPath: f.configPath,
				PrefsPath:  f.prefsPath,
				Counter:    counterOptions(cmd, f),
				Label:      f.label,
				Theme:      f.theme,
				Debug:      f.debug,
			})
			if err != nil {
				return err
			}
			if !outcome.Confirmed {
				return errAborted
			}
			fmt.Fprintln(out, outcome.Text)
			return nil
		},
	}

	flags := cmd.Flags()
	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default ~/.config/tally/config.toml)")
	flags.StringVar(&f.prefsPath, "prefs", "", "preferences file (default ~/.config/tally/prefs.toml)")
	flags.StringVarP(&f.style, "type", "t", "", "counter style: list, compact, inline or date")
	flags.StringVar(&f.label, "label", "", "label shown beside a list counter")
	flags.StringVar(&f.theme, "theme", "", "color theme: "+strings.Join(ui.ThemeNames(), ", "))
	flags.BoolVar(&f.debug, "debug", false, "log at debug level")
	flags.IntVar(&f.value, "value", counter.DefaultValue, "initial value")
	flags.IntVar(&f.min, "min", counter.DefaultMin, "lowest value")
	flags.IntVar(&f.max, "max", counter.DefaultMax, "highest value")
	flags.IntVar(&f.step, "step", counter.DefaultStep, "step size")
	flags.IntVar(&f.year, "year", counter.DefaultYear, "initial year for a date")
	flags.IntVar(&f.month, "month", counter.DefaultMonth, "initial month for a date")
	flags.IntVar(&f.day, "day", counter.DefaultDay, "initial day for a date")
	flags.IntVar(&f.width, "width", 0, "minimum text width of an inline counter")

	cmd.AddCommand(newHistoryCmd(out, &f))
	return cmd
}

// counterOptions keeps only the flags given on the command line so the
// config file supplies the rest.
func counterOptions(cmd *cobra.Command, f rootFlags) counter.Options {
	set := func(name string, v int) *int {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		return counter.Int(v)
	}
	return counter.Options{
		Type:      f.style,
		Value:     set("value", f.value),
		Min:       set("min", f.min),
		Max:       set("max", f.max),
		Step:      set("step", f.step),
		Year:      set("year", f.year),
		Month:     set("month", f.month),
		Day:       set("day", f.day),
		TextWidth: set("width", f.width),
	}
}

func newHistoryCmd(out io.Writer, f *rootFlags) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently confirmed values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.History(f.configPath, n)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s\t%s\t%s\n", e.Time, e.Style, e.Value)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of entries")
	return cmd
}
