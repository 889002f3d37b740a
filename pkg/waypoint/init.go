// Package waypoint normalizes navigation across host navigation runtimes
// with different capability sets into one stable contract, and provides a
// declarative link element that navigates when pressed.
//
// The pieces live in subpackages:
//
//   - route: the request descriptor and parameter lookup
//   - nav: the facade over a bound host
//   - link: the declarative trigger
//   - router: an in-memory host runtime
//   - view: an SDL renderer for links
//   - input: evdev buttons and the focus ring that presses links
//   - icon: SVG rasterizing for link icons
//
// This package carries what they share: logging, configuration and
// message bundles.
package waypoint

import (
	"log/slog"

	"github.com/waypoint-nav/waypoint/pkg/waypoint/internal"
)

// Options configures logging for the process.
type Options struct {
	LogPath     string // Full path for the log file including filename (creates parent directories)
	LogLevel    string // Application log level ("debug", "info", "warn", "error")
	NavLogLevel string // Level for the navigation packages' own tracing; empty keeps errors only
}

// OptionsFromConfig maps the [log] section onto Options.
func OptionsFromConfig(cfg Config) Options {
	return Options{
		LogPath:     cfg.Log.Path,
		LogLevel:    cfg.Log.Level,
		NavLogLevel: cfg.Log.NavLevel,
	}
}

// Init applies options. Call it before using the other packages so their
// loggers pick up the destination.
func Init(options Options) {
	internal.SetLogPath(options.LogPath)
	internal.SetRawLogLevel(options.LogLevel)

	if options.NavLogLevel != "" {
		internal.SetNavLogLevel(internal.ParseLevel(options.NavLogLevel))
	} else {
		internal.SetNavLogLevel(slog.LevelError)
	}
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
