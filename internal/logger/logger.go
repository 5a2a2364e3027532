// Package logger provides a small leveled logger for the TUI.
//
// The terminal belongs to Bubble Tea while the program runs, so output is
// discarded until a file is attached. Logger satisfies tea.LogOptionsSetter,
// which lets main hand it straight to tea.LogToFileWith.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Level represents a log level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ParseLevel parses a level name (case-insensitive).
// Unknown names return LevelInfo and an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %q", s)
	}
}

// Logger is a printf-style front end over zerolog's console writer.
// Safe for concurrent use.
type Logger struct {
	mu        sync.Mutex
	level     Level
	out       io.Writer
	component string
	zl        zerolog.Logger
}

// Default is the process-wide logger used by the package-level helpers.
var Default = New(LevelInfo)

// New returns a logger at the given level that discards output until
// SetOutput is called.
func New(level Level) *Logger {
	l := &Logger{level: level, out: io.Discard}
	l.rebuild()
	return l
}

// rebuild recreates the zerolog logger from the current settings.
// Callers hold mu, except New.
func (l *Logger) rebuild() {
	w := zerolog.ConsoleWriter{Out: l.out, NoColor: true, TimeFormat: "15:04:05"}
	ctx := zerolog.New(w).Level(l.level.zerolog()).With().Timestamp()
	if l.component != "" {
		ctx = ctx.Str("component", l.component)
	}
	l.zl = ctx.Logger()
}

// SetLevel sets the minimum level that is written.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.rebuild()
}

// SetOutput implements tea.LogOptionsSetter.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.rebuild()
}

// SetPrefix implements tea.LogOptionsSetter. The prefix is written as the
// component field of every entry.
func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.component = strings.TrimSpace(prefix)
	l.rebuild()
}

// Debug logs a formatted message at debug level.
func (l *Logger) Debug(format string, v ...any) { l.log(LevelDebug, format, v...) }

// Info logs a formatted message at info level.
func (l *Logger) Info(format string, v ...any) { l.log(LevelInfo, format, v...) }

// Warn logs a formatted message at warn level.
func (l *Logger) Warn(format string, v ...any) { l.log(LevelWarn, format, v...) }

// Error logs a formatted message at error level.
func (l *Logger) Error(format string, v ...any) { l.log(LevelError, format, v...) }

func (l *Logger) log(level Level, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.WithLevel(level.zerolog()).Msgf(format, v...)
}

// Debug logs to the default logger.
func Debug(format string, v ...any) { Default.Debug(format, v...) }

// Info logs to the default logger.
func Info(format string, v ...any) { Default.Info(format, v...) }

// Warn logs to the default logger.
func Warn(format string, v ...any) { Default.Warn(format, v...) }

// Error logs to the default logger.
func Error(format string, v ...any) { Default.Error(format, v...) }
