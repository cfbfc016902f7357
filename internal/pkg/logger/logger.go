package logger

import (
	"log/slog"
	"os"
)

// Logger defines the logging interface shared by processors, services, handlers and commands.
// Implementations must never be handed key material or plaintext.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}

// slogLogger adapts a slog handler to Logger. Console and file loggers differ only in the handler.
type slogLogger struct {
	logger *slog.Logger
}

func newSlogLogger(handler slog.Handler) Logger {
	return &slogLogger{logger: slog.New(handler)}
}

func (l *slogLogger) Debug(args ...interface{}) { l.logger.Debug(formatArgs(args...)) }
func (l *slogLogger) Info(args ...interface{}) { l.logger.Info(formatArgs(args...)) }
func (l *slogLogger) Warn(args ...interface{}) { l.logger.Warn(formatArgs(args...)) }
func (l *slogLogger) Error(args ...interface{}) { l.logger.Error(formatArgs(args...)) }

// Fatal logs at error level and exits with status 1.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs at error level and panics with the formatted message.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}
