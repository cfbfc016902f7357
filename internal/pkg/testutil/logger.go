package testutil

import (
	"testing"

	"github.com/MGTheTrain/cryptovault/internal/pkg/config"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
// Records go to stderr so command output captured from stdout stays clean.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		Output:   config.LogOutputStderr,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}
