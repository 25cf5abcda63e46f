package logger

import (
	"io"
	"log/slog"
	"os"
)

type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// Nop returns a logger that discards everything. Library entry points use it
// as the default so callers pay nothing unless they opt in.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{})   {}
func (nopLogger) Info(string, string, map[string]interface{})    {}
func (nopLogger) Warning(string, string, map[string]interface{}) {}
func (nopLogger) Error(string, error, map[string]interface{})    {}

// StructuredLogger implements Logger on top of log/slog.
type StructuredLogger struct {
	logger *slog.Logger
	level  LogLevel
}

func NewStructuredLogger(level LogLevel) *StructuredLogger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel(level),
	})
	return &StructuredLogger{logger: slog.New(handler), level: level}
}

// NewFileLogger writes JSON records to the given writer.
func NewFileLogger(level LogLevel, writer io.Writer) *StructuredLogger {
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: slogLevel(level),
	})
	return &StructuredLogger{logger: slog.New(handler), level: level}
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case InfoLevel:
		return slog.LevelInfo
	case WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func (l *StructuredLogger) Debug(component, message string, fields map[string]interface{}) {
	if l.level > DebugLevel {
		return
	}
	l.logWithFields(slog.LevelDebug, component, message, fields)
}

func (l *StructuredLogger) Info(component, message string, fields map[string]interface{}) {
	if l.level > InfoLevel {
		return
	}
	l.logWithFields(slog.LevelInfo, component, message, fields)
}

func (l *StructuredLogger) Warning(component, message string, fields map[string]interface{}) {
	if l.level > WarnLevel {
		return
	}
	l.logWithFields(slog.LevelWarn, component, message, fields)
}

func (l *StructuredLogger) Error(component string, err error, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	l.logWithFields(slog.LevelError, component, "operation failed", fields)
}

func (l *StructuredLogger) logWithFields(level slog.Level, component, message string, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2+2)
	args = append(args, "component", component)
	for k, v := range fields {
		args = append(args, k, v)
	}
	l.logger.Log(nil, level, message, args...)
}
