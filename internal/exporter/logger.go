// =============================================================================
// Bolle Export - Logger
// =============================================================================
//
// Minimal leveled logging for the pipeline. The Logger interface keeps the
// exporter decoupled from any specific logging backend; the standard
// implementation prints levelled lines to stdout and filters by the
// configured level.
//
// =============================================================================

package exporter

import (
	"fmt"
	"strings"
)

// Logger is the logging interface used by the exporter.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Log levels, in increasing severity.
const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// stdLogger prints levelled lines to stdout.
type stdLogger struct {
	level int
}

// NewStdLogger creates a logger filtering below the named level.
// Valid levels: "debug", "info", "warn", "error". Unknown levels fall back
// to "info".
func NewStdLogger(level string) Logger {
	l := levelInfo
	switch strings.ToLower(level) {
	case "debug":
		l = levelDebug
	case "warn", "warning":
		l = levelWarn
	case "error":
		l = levelError
	}
	return &stdLogger{level: l}
}

func (l *stdLogger) log(level int, tag, msg string, args ...interface{}) {
	if level < l.level {
		return
	}
	fmt.Printf("["+tag+"] "+msg+"\n", args...)
}

func (l *stdLogger) Debug(msg string, args ...interface{}) { l.log(levelDebug, "DEBUG", msg, args...) }
func (l *stdLogger) Info(msg string, args ...interface{})  { l.log(levelInfo, "INFO", msg, args...) }
func (l *stdLogger) Warn(msg string, args ...interface{})  { l.log(levelWarn, "WARN", msg, args...) }
func (l *stdLogger) Error(msg string, args ...interface{}) { l.log(levelError, "ERROR", msg, args...) }
