package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CRYPTOVAULT_PORT or CRYPTOVAULT_LOGGER_LOG_LEVEL
const EnvPrefix = "CRYPTOVAULT"

// RestConfig holds the settings of the REST API server
type RestConfig struct {
	Port     string         `mapstructure:"port" validate:"required,numeric"`
	Logger   LoggerSettings `mapstructure:"logger"`
	Security SecurityConfig `mapstructure:"security"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Limits   LimitsConfig   `mapstructure:"limits"`
	Server   ServerConfig   `mapstructure:"server"`
}

// SecurityConfig groups request admission settings
type SecurityConfig struct {
	RateLimiting   RateLimitConfig `mapstructure:"rate_limiting"`
	CORS           CORSConfig      `mapstructure:"cors"`
	// TrustedProxies lists the IPs or CIDRs allowed to set X-Forwarded-For. Empty trusts no proxy.
	TrustedProxies []string        `mapstructure:"trusted_proxies" validate:"omitempty,dive,cidr|ip"`
}

// RateLimitConfig configures the per-client token bucket
type RateLimitConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	RequestsPerMin int  `mapstructure:"requests_per_min" validate:"required_if=Enabled true,gte=0"`
	Burst          int  `mapstructure:"burst" validate:"required_if=Enabled true,gte=0"`
}

// CORSConfig configures the cors middleware
type CORSConfig struct {
	AllowedOrigins   []string      `mapstructure:"allowed_origins" validate:"required,min=1"`
	AllowedMethods   []string      `mapstructure:"allowed_methods" validate:"required,min=1"`
	AllowedHeaders   []string      `mapstructure:"allowed_headers"`
	ExposeHeaders    []string      `mapstructure:"expose_headers"`
	AllowCredentials bool          `mapstructure:"allow_credentials"`
	MaxAge           time.Duration `mapstructure:"max_age"`
}

// MetricsConfig configures the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required,startswith=/"`
}

// LimitsConfig bounds request sizes
type LimitsConfig struct {
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"gt=0"`
}

// ServerConfig holds http.Server timeouts
type ServerConfig struct {
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig loads the REST configuration from path, environment overrides and defaults.
// An empty path or a missing file leaves defaults and environment in effect.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("rest-app")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setRestDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setRestDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.output", LogOutputStdout)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("security.rate_limiting.enabled", true)
	v.SetDefault("security.rate_limiting.requests_per_min", 600)
	v.SetDefault("security.rate_limiting.burst", 50)
	v.SetDefault("security.cors.allowed_origins", []string{"*"})
	v.SetDefault("security.cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("security.cors.allowed_headers", []string{"Origin", "Content-Type", "X-Request-ID"})
	v.SetDefault("security.cors.expose_headers", []string{"Content-Length", "X-Request-ID"})
	v.SetDefault("security.cors.allow_credentials", false)
	v.SetDefault("security.cors.max_age", "12h")
	v.SetDefault("security.trusted_proxies", []string{})

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("limits.max_body_bytes", 1<<20)

	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "5s")
}
