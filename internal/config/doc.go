// Package config loads tally's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tally/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	log_file = "~/.local/state/tally/tally.log"
//	debug = false
//
//	[counter]
//	type = "inline"   # list, compact, inline, date
//	value = 12
//	min = 0
//	max = 999
//	step = 1
//	text_width = 6
//
// Counter fields left out of the file stay unset so command-line flags and
// the counter defaults can fill them in later. An unknown counter type is a
// parse error; out-of-range numbers are not, the counter clamps them.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
