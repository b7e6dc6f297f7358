// Package logging assembles the structured slog loggers used across the
// engine and CLI.
//
// It owns the console and JSON handlers and centralizes level plumbing so
// every component emits records with the same shape. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
package logging
