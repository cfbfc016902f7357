//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
logger:
  log_level: debug
  log_type: console
  output: stderr
security:
  rate_limiting:
    enabled: true
    requests_per_min: 120
    burst: 10
  cors:
    allowed_origins: ["https://example.org"]
    allowed_methods: ["POST"]
  trusted_proxies: ["10.0.0.0/8", "192.168.1.10"]
metrics:
  enabled: false
  path: /internal/metrics
limits:
  max_body_bytes: 4096
server:
  shutdown_timeout: 2s
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, LogOutputStderr, cfg.Logger.Output)
	assert.Equal(t, 120, cfg.Security.RateLimiting.RequestsPerMin)
	assert.Equal(t, 10, cfg.Security.RateLimiting.Burst)
	assert.Equal(t, []string{"https://example.org"}, cfg.Security.CORS.AllowedOrigins)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.Security.TrustedProxies)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
	assert.Equal(t, int64(4096), cfg.Limits.MaxBodyBytes)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestInitializeRestConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.True(t, cfg.Security.RateLimiting.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, int64(1<<20), cfg.Limits.MaxBodyBytes)
	assert.Equal(t, 12*time.Hour, cfg.Security.CORS.MaxAge)
	assert.Empty(t, cfg.Security.TrustedProxies)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	t.Setenv("CRYPTOVAULT_PORT", "7070")
	t.Setenv("CRYPTOVAULT_LOGGER_LOG_LEVEL", LogLevelWarning)

	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, LogLevelWarning, cfg.Logger.LogLevel)
}

func TestInitializeRestConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"non numeric port", "port: http\n"},
		{"bad log level", "logger:\n  log_level: loud\n"},
		{"file logger without path", "logger:\n  log_type: file\n"},
		{"zero body limit", "limits:\n  max_body_bytes: 0\n"},
		{"relative metrics path", "metrics:\n  path: metrics\n"},
		{"bad trusted proxy", "security:\n  trusted_proxies: [\"not-an-ip\"]\n"},
		{"malformed yaml", "port: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InitializeRestConfig(writeConfigFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}
