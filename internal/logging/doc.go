// Package logging assembles structured slog loggers and formatting helpers used
// across camlink.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so pipeline code can tag log lines
// with the current run id. A no-op logger is provided for tests and wiring
// code that cannot fail.
package logging
