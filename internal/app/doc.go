// Package app is the composition root for tally.
//
// Run loads the config file, opens the JSON log, builds a counter from the
// merged config and command-line options, and hands it to the ui package.
// When the prompt ends it records the outcome: a confirmed value is logged
// with the message "confirmed" so History can find it again later.
//
// Errors loading the config, opening the log, or resolving the counter
// options are returned before the terminal is touched. Preference problems
// never fail a run; prefs.Load falls back to defaults.
//
//	out, err := app.Run(ctx, app.Options{
//		Counter: counter.Options{Type: "inline", Max: counter.Int(50)},
//	})
//	if err == nil && out.Confirmed {
//		fmt.Println(out.Text)
//	}
package app
