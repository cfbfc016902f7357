package logger

import (
	"log/slog"

	"github.com/MGTheTrain/cryptovault/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// NewFileLogger returns a Logger writing JSON records to settings.FilePath.
// The file rotates at MaxSize megabytes, keeping MaxBackups compressed files for at most MaxAge days.
func NewFileLogger(settings *config.LoggerSettings) Logger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   true,
	}
	return newSlogLogger(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(settings.LogLevel)}))
}
