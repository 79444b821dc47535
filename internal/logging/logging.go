package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize is called.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize sets up the logger based on the debug flag and configuration
func Initialize(debug bool, logFile string) error {
	if os.Getenv("FOCUSD_DEBUG") == "1" {
		debug = true
	}
	if envLogFile := os.Getenv("FOCUSD_LOG_FILE"); envLogFile != "" && logFile == "" {
		logFile = envLogFile
	}

	var out io.Writer = os.Stderr
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	Logger = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))

	if debug {
		Logger.Debug("debug logging enabled")
	}
	return nil
}
