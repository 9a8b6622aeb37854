package main

import (
	"fmt"

	"github.com/jamesainslie/scaffold/pkg/scaffold/config"
	"github.com/jamesainslie/scaffold/pkg/scaffold/logging"
	"github.com/spf13/cobra"
)

// initLogging initializes the logging system from the loaded config.
// Verbose mode mirrors debug logs to stderr.
func initLogging(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		// Fall back to defaults so a broken config file still logs.
		printVerbose("Failed to load config for logging, using defaults: %v", err)
		cfg = &config.Config{}
		cfg.Logging.Level = "info"
	}

	logCfg := buildLoggingConfig(cfg.Logging, getVerbose())
	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

// buildLoggingConfig converts config.LoggingConfig to logging.Config.
func buildLoggingConfig(lc config.LoggingConfig, verbose bool) logging.Config {
	cfg := logging.Config{
		Level:      lc.Level,
		Path:       lc.Path,
		Components: lc.Components,
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if verbose {
		cfg.Level = "debug"
		cfg.ConsoleLevel = "debug"
	}
	return cfg
}
