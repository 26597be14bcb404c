package leptjson

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultMaxInputSize   int64 = 1 << 20
	DefaultMaxConcurrency       = 16
	DefaultSlowThreshold        = 50 * time.Millisecond
)

// Environment variables read by ConfigFromEnv
const (
	EnvMaxInputSize   = "LEPTJSON_MAX_INPUT_SIZE"
	EnvMaxConcurrency = "LEPTJSON_MAX_CONCURRENCY"
	EnvDebug          = "LEPTJSON_DEBUG"
	EnvEnableMetrics  = "LEPTJSON_ENABLE_METRICS"
)

// Config holds configuration for the Processor
type Config struct {
	// Size limits
	MaxInputSize int64 `json:"max_input_size"`

	// Concurrency
	MaxConcurrency int `json:"max_concurrency"`

	// Observability
	EnableMetrics bool          `json:"enable_metrics"`
	Debug         bool          `json:"debug"`
	SlowThreshold time.Duration `json:"slow_threshold"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxInputSize:   DefaultMaxInputSize,
		MaxConcurrency: DefaultMaxConcurrency,
		EnableMetrics:  true,
		Debug:          false,
		SlowThreshold:  DefaultSlowThreshold,
	}
}

// ValidateConfig validates configuration values and applies corrections
func ValidateConfig(config *Config) error {
	if config == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrOperationFailed)
	}
	if config.MaxInputSize < 0 {
		return newOperationError("validate_config", "MaxInputSize cannot be negative", ErrOperationFailed)
	}
	if config.MaxConcurrency < 0 {
		return newOperationError("validate_config", "MaxConcurrency cannot be negative", ErrOperationFailed)
	}

	// Apply defaults for unset values
	if config.MaxInputSize == 0 {
		config.MaxInputSize = DefaultMaxInputSize
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = DefaultMaxConcurrency
	}
	if config.SlowThreshold <= 0 {
		config.SlowThreshold = DefaultSlowThreshold
	}
	return nil
}

// ConfigFromEnv returns DefaultConfig overridden by LEPTJSON_* environment variables
func ConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()

	if s := strings.TrimSpace(os.Getenv(EnvMaxInputSize)); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, newOperationError("config_from_env", fmt.Sprintf("invalid %s %q", EnvMaxInputSize, s), err)
		}
		cfg.MaxInputSize = n
	}
	if s := strings.TrimSpace(os.Getenv(EnvMaxConcurrency)); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, newOperationError("config_from_env", fmt.Sprintf("invalid %s %q", EnvMaxConcurrency, s), err)
		}
		cfg.MaxConcurrency = n
	}
	cfg.Debug = envBool(EnvDebug, cfg.Debug)
	cfg.EnableMetrics = envBool(EnvEnableMetrics, cfg.EnableMetrics)

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envBool(key string, fallback bool) bool {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return fallback
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", fallback)
		return fallback
	}
	return b
}

// LogLevel returns the slog level implied by the configuration
func (c *Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
