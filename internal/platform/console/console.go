package console

import (
	"fmt"
	"io"
	"strings"
)

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
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	default:
		return "error"
	}
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a Level.
// Unknown or empty values yield LevelInfo and ok=false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "trace":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelInfo, false
}

type Logger struct {
	w   io.Writer
	min Level
}

func New(w io.Writer) Logger {
	return Logger{w: w, min: LevelInfo}
}

// Discard returns a logger that drops every message.
func Discard() Logger {
	return Logger{}
}

// WithLevel returns a copy of l that drops messages below min.
func (l Logger) WithLevel(min Level) Logger {
	l.min = min
	return l
}

func (l Logger) Debug(message string) {
	l.write(LevelDebug, message)
}

func (l Logger) Info(message string) {
	l.write(LevelInfo, message)
}

func (l Logger) Warn(message string) {
	l.write(LevelWarn, message)
}

func (l Logger) Error(message string) {
	l.write(LevelError, message)
}

func (l Logger) write(level Level, message string) {
	if l.w == nil || level < l.min {
		return
	}
	_, _ = fmt.Fprintf(l.w, "[%s] %s\n", level, message)
}
