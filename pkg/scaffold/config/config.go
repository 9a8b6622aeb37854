package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level      string            `mapstructure:"level"`
	Path       string            `mapstructure:"path"`
	Components map[string]string `mapstructure:"components"`
}

// JournalConfig configures the run-history journal.
type JournalConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Path          string `mapstructure:"path"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// Config represents the application configuration.
type Config struct {
	// ManifestPath points at a YAML manifest file. Empty means the
	// built-in profile selected by Profile is used.
	ManifestPath string `mapstructure:"manifest_path"`

	// Profile selects a built-in manifest (project, test, all).
	Profile string `mapstructure:"profile"`

	// TargetPath is the root directory manifest paths are resolved against.
	TargetPath string `mapstructure:"target_path"`

	// Output is the default output format.
	Output string `mapstructure:"output"`

	Journal JournalConfig `mapstructure:"journal"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/scaffold/config.yaml
//   - $HOME/.config/scaffold/config.yaml
//
// Environment variables are prefixed with SCAFFOLD_ (e.g., SCAFFOLD_PROFILE).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "scaffold"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "scaffold"))

	v.SetEnvPrefix("SCAFFOLD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("manifest_path", "")
	v.SetDefault("profile", DefaultProfile)
	v.SetDefault("target_path", DefaultTargetPath)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", DefaultJournalDir())
	v.SetDefault("journal.retention_days", DefaultRetentionDays)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.path", "") // Empty means use the default XDG state path
	v.SetDefault("logging.components", map[string]string{
		"scaffolder": "info",
		"journal":    "info",
		"status":     "info",
	})

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is acceptable; we use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in paths if present
	if strings.HasPrefix(cfg.Journal.Path, "~") {
		cfg.Journal.Path = filepath.Join(homeDir, cfg.Journal.Path[1:])
	}
	if strings.HasPrefix(cfg.ManifestPath, "~") {
		cfg.ManifestPath = filepath.Join(homeDir, cfg.ManifestPath[1:])
	}

	return &cfg, nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "scaffold"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "scaffold"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// StateDir returns $XDG_STATE_HOME/scaffold/ for log and journal files.
func StateDir() string {
	return filepath.Join(xdg.StateHome, "scaffold")
}

// DefaultJournalDir returns the default directory for journal entries.
func DefaultJournalDir() string {
	return filepath.Join(StateDir(), "journal")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(StateDir(), "scaffold.log")
}

// WriteDefault writes a default config file if none exists.
// Returns nil if a config file already exists.
func WriteDefault() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		// Config file exists, do nothing
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	defaultConfig := fmt.Sprintf(`# Scaffold Configuration

# Manifest file to apply (empty means use the built-in profile below)
manifest_path: ""

# Built-in manifest profile: project, test, or all
profile: %s

# Root directory manifest paths are resolved against
target_path: %s

# Output format: pretty, plain, json, yaml, paths
output: %s

# Journal settings for tracking run history
journal:
  enabled: true
  path: %s
  retention_days: %d

# Logging configuration
logging:
  # Log level: debug, info, warn, error
  level: info
  # Log file path (empty means use default: $XDG_STATE_HOME/scaffold/scaffold.log)
  path: ""
  # Per-component log levels
  components:
    scaffolder: info
    journal: info
    status: info
`, DefaultProfile, DefaultTargetPath, DefaultOutput, DefaultJournalDir(), DefaultRetentionDays)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	return nil
}

// ExpandPath expands ~ in a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}
