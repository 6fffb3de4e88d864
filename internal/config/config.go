// =============================================================================
// Sales Analytics Report - Configuration Module
// =============================================================================
//
// This module is responsible for loading the application configuration.
//
// CONFIGURATION FILE (config.yaml):
//   reports_dir:      ./reports
//   sessions_dir:     ./sessions
//   redis_addr:       ""            (set to read sessions from Redis)
//   redis_password:   ""
//   redis_db:         0
//   redis_key_prefix: ""
//   log_file:         ./logs/reporter.log
//   log_level:        info
//   log_max_size_mb:  10
//   log_max_backups:  3
//   default_tax:      0
//   retention_days:   0
//
// A missing file is not an error: every key has a default.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// ReportsDir is the directory where generated workbooks are placed.
	// It is created on demand.
	// Default: "./reports"
	ReportsDir string `yaml:"reports_dir"`

	// SessionsDir is the directory of the file-backed session store.
	// Each session is a <key>.json file.
	// Default: "./sessions"
	SessionsDir string `yaml:"sessions_dir"`

	// =========================================================================
	// REDIS SESSION STORE
	// =========================================================================

	// RedisAddr switches the session store to Redis when non-empty.
	// Example: "localhost:6379"
	RedisAddr string `yaml:"redis_addr"`

	// RedisPassword is the optional Redis AUTH password.
	RedisPassword string `yaml:"redis_password"`

	// RedisDB is the Redis logical database number.
	RedisDB int `yaml:"redis_db"`

	// RedisKeyPrefix is prepended to the session key to form the Redis key.
	RedisKeyPrefix string `yaml:"redis_key_prefix"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogFile is the path to the rotating application log.
	// Set to "-" to log to stderr only.
	// Default: "./logs/reporter.log"
	LogFile string `yaml:"log_file"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogMaxSizeMB is the size at which the log file is rotated.
	// Default: 10
	LogMaxSizeMB int `yaml:"log_max_size_mb"`

	// LogMaxBackups is the number of rotated log files to keep.
	// Default: 3
	LogMaxBackups int `yaml:"log_max_backups"`

	// =========================================================================
	// REPORT SETTINGS
	// =========================================================================

	// DefaultTax is the tax percentage used when a session carries none.
	// Default: 0
	DefaultTax float64 `yaml:"default_tax"`

	// RetentionDays is the age after which the clean command deletes reports.
	// 0 keeps reports forever.
	// Default: 0
	RetentionDays int `yaml:"retention_days"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the main configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the main configuration file.
//
// RETURNS:
//   - A pointer to the MainConfig struct. A missing file yields the defaults.
//   - An error if the file cannot be read, parsed or validated.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	var config MainConfig

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyMainConfigDefaults(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	var config MainConfig
	applyMainConfigDefaults(&config)
	return &config
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.ReportsDir == "" {
		config.ReportsDir = "./reports"
	}
	if config.SessionsDir == "" {
		config.SessionsDir = "./sessions"
	}
	if config.LogFile == "" {
		config.LogFile = "./logs/reporter.log"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogMaxSizeMB == 0 {
		config.LogMaxSizeMB = 10
	}
	if config.LogMaxBackups == 0 {
		config.LogMaxBackups = 3
	}
}

// validateMainConfig validates the main configuration.
func validateMainConfig(config *MainConfig) error {
	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	if config.DefaultTax < 0 || config.DefaultTax > 100 {
		return fmt.Errorf("default_tax must be between 0 and 100, got %v", config.DefaultTax)
	}

	if config.RetentionDays < 0 {
		return fmt.Errorf("retention_days must not be negative, got %d", config.RetentionDays)
	}

	if config.RedisDB < 0 {
		return fmt.Errorf("redis_db must not be negative, got %d", config.RedisDB)
	}

	if config.LogMaxSizeMB < 0 || config.LogMaxBackups < 0 {
		return fmt.Errorf("log rotation settings must not be negative")
	}

	return nil
}
