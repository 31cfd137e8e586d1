// Package log provides the optional leveled logger the dispatcher traces
// resolution and binding through. The zero-configuration default is a nop;
// applications opt in by wiring a Logger into the App.
package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
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

// ParseLevel converts a string to a Level. Valid values: "debug", "info",
// "warn", "error" (case insensitive). Unrecognized strings map to
// LevelWarn.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger is the sink the dispatcher writes trace lines to.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// WriterLogger writes timestamped leveled lines to an io.Writer,
// thread-safely.
type WriterLogger struct {
	mu       sync.Mutex
	w        io.Writer
	minLevel Level
}

// New creates a logger writing to w at the given minimum level.
func New(w io.Writer, minLevel Level) *WriterLogger {
	return &WriterLogger{w: w, minLevel: minLevel}
}

func (l *WriterLogger) log(level Level, format string, v ...any) {
	if level < l.minLevel {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s [%s] %s\n",
		time.Now().Format(time.RFC3339), level, fmt.Sprintf(format, v...))
}

func (l *WriterLogger) Debug(format string, v ...any) { l.log(LevelDebug, format, v...) }
func (l *WriterLogger) Info(format string, v ...any)  { l.log(LevelInfo, format, v...) }
func (l *WriterLogger) Warn(format string, v ...any)  { l.log(LevelWarn, format, v...) }
func (l *WriterLogger) Error(format string, v ...any) { l.log(LevelError, format, v...) }

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(format string, v ...any) {}
func (NopLogger) Info(format string, v ...any)  {}
func (NopLogger) Warn(format string, v ...any)  {}
func (NopLogger) Error(format string, v ...any) {}

var (
	_ Logger = (*WriterLogger)(nil)
	_ Logger = NopLogger{}
)
