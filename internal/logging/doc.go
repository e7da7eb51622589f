// Package logging assembles the structured slog loggers used across mirkit.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes typed attribute helpers plus a no-op logger for tests and wiring
// code that cannot fail. Loader packages tag their lines with a component
// attribute via NewComponentLogger so log output stays uniform regardless of
// which dataset produced it.
package logging
