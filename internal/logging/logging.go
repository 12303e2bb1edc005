// Package logging builds the structured loggers used by the commands.
// While the terminal UI owns the screen, logs go to a rotating file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Prefix is prepended to every log line.
const Prefix = "fireball"

// Rotation limits for log files.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 7
)

// Options configures a logger.
type Options struct {
	// Level is one of debug, info, warn, error, fatal. Empty means info.
	Level string
	// File is the log file path. Empty logs to stderr.
	File string
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		lvl, err = log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// Open creates a logger from opts. The returned closer releases the log
// file and must be called when the program exits.
func Open(opts Options) (*log.Logger, io.Closer, error) {
	if opts.File == "" {
		logger, err := New(os.Stderr, opts.Level)
		return logger, nopCloser{}, err
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	logger, err := New(lj, opts.Level)
	if err != nil {
		return nil, nil, err
	}
	return logger, lj, nil
}

// DefaultFile returns the log file used by the terminal UI,
// ~/.arcade/logs/fireball.log.
func DefaultFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".arcade", "logs", "fireball.log"), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
