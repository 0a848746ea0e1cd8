// Package logging configures the process-wide diagnostic logger. Logs go
// to a rotated file under the XDG data directory, never to the console:
// user-facing output is printed directly by the CLI layer. Every
// invocation is tagged with a fresh run ID so one log file can interleave
// multiple runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	appName     = "gitmsg"
	logFilename = "gitmsg.log"

	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// LogFilePath returns the diagnostic log location under the XDG data home.
func LogFilePath() string {
	return filepath.Join(xdg.DataHome, appName, logFilename)
}

// NewRunID returns a per-invocation identifier: YYYYMMDD_HHMMSS_<uuid[:8]>.
func NewRunID() string {
	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s", timestamp, uuid.New().String()[:8])
}

// Init installs the global logger writing to the rotated XDG log file at
// the given level and returns the run ID it tagged. A failure to create
// the log directory is not fatal: logging falls back to a discard writer
// so the synthesis run can proceed.
func Init(level string) string {
	runID := NewRunID()

	var w io.Writer = io.Discard
	logPath := LogFilePath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err == nil {
		w = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
		}
	}

	log.Logger = zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("run_id", runID).
		Logger()

	return runID
}

// InitForTesting silences the global logger for the duration of a test.
func InitForTesting() {
	log.Logger = zerolog.New(io.Discard)
}

// parseLevel maps the config value onto a zerolog level, defaulting to info.
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
