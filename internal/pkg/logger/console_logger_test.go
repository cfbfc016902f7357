//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/MGTheTrain/cryptovault/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(config.LogLevelInfo, &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestConsoleLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(config.LogLevelDebug, &buf)

	logger.Debug("dispatching ", "SHA-256")

	assert.Contains(t, buf.String(), "dispatching SHA-256")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestConsoleLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(config.LogLevelInfo, &buf)

	assert.PanicsWithValue(t, "boom", func() {
		logger.Panic("boom")
	})
	assert.Contains(t, buf.String(), "boom")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo, nil)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}

func TestConsoleAndFileLoggersShareAdapter(t *testing.T) {
	assert.IsType(t, &slogLogger{}, NewConsoleLogger(config.LogLevelInfo, &bytes.Buffer{}))
	assert.IsType(t, &slogLogger{}, NewFileLogger(fileSettings(t, config.LogLevelInfo)))
}
