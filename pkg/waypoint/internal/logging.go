package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logMu   sync.Mutex
	logFile *os.File
	logPath string
	output  io.Writer

	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}
	navLogger  *slog.Logger
	navLevel   = &slog.LevelVar{}
	configured bool
)

func init() {
	navLevel.Set(slog.LevelError)
}

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. An empty path logs to stdout only.
func SetLogPath(path string) {
	logMu.Lock()
	defer logMu.Unlock()

	logPath = path
	resetLocked()
}

// SetLogOutput replaces the log destination entirely. Intended for tests and
// for hosts that already own a log sink.
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()

	closeFileLocked()
	output = w
	logger = nil
	navLogger = nil
	configured = true
}

func resetLocked() {
	closeFileLocked()
	output = nil
	logger = nil
	navLogger = nil
	configured = false
}

func setupLocked() {
	if configured {
		return
	}
	configured = true

	if logPath == "" {
		output = os.Stdout
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		output = os.Stdout
		return
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Can't open log file, fall back to console-only
		output = os.Stdout
		return
	}

	logFile = f
	output = io.MultiWriter(os.Stdout, logFile)
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	logMu.Lock()
	defer logMu.Unlock()

	if logger == nil {
		setupLocked()
		logger = slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: levelVar}))
	}
	return logger
}

// GetNavLogger returns the logger used by the navigation packages themselves.
// It defaults to error level so dispatch tracing stays quiet unless asked for.
func GetNavLogger() *slog.Logger {
	logMu.Lock()
	defer logMu.Unlock()

	if navLogger == nil {
		setupLocked()
		navLogger = slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: navLevel})).
			With("component", "waypoint")
	}
	return navLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetNavLogLevel(level slog.Level) {
	navLevel.Set(level)
}

// ParseLevel maps a config string onto a slog level. Unknown values are info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(raw string) {
	SetLogLevel(ParseLevel(raw))
}

func CloseLogger() {
	logMu.Lock()
	defer logMu.Unlock()
	closeFileLocked()
}

func closeFileLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
