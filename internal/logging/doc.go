// Package logging builds the slog logger used across the CLI and pipeline.
//
// Two formats are supported: a compact single-line console rendering for
// interactive use and standard JSON for machine consumption. When the config
// leaves the format unset, a terminal on stderr selects console and anything
// else selects json.
package logging
