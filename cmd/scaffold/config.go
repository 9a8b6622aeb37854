package main

import (
	"fmt"
	"path/filepath"

	"github.com/jamesainslie/scaffold/pkg/scaffold/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage scaffold configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/scaffold/config.yaml (if set)
  2. ~/.config/scaffold/config.yaml

Environment variables can override config file settings using the SCAFFOLD_ prefix:
  SCAFFOLD_PROFILE=test
  SCAFFOLD_TARGET_PATH=~/work/ecu
  SCAFFOLD_OUTPUT=json`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long:  `Create a default configuration file if one doesn't exist.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		printError("Failed to load configuration: %v", err)
		// Show defaults anyway
		cfg = &config.Config{
			Profile:    config.DefaultProfile,
			TargetPath: config.DefaultTargetPath,
			Output:     config.DefaultOutput,
		}
		cfg.Journal.Enabled = true
		cfg.Journal.RetentionDays = config.DefaultRetentionDays
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Printf("Config file: %s\n\n", configFile)
	} else {
		fmt.Println("Config file: (using defaults, no file found)")
		fmt.Println()
	}

	fmt.Println("Current Configuration:")
	fmt.Println("----------------------")
	fmt.Printf("manifest_path:         %s\n", cfg.ManifestPath)
	fmt.Printf("profile:               %s\n", cfg.Profile)
	fmt.Printf("target_path:           %s\n", cfg.TargetPath)
	fmt.Printf("output:                %s\n", cfg.Output)
	fmt.Printf("journal.enabled:       %t\n", cfg.Journal.Enabled)
	fmt.Printf("journal.path:          %s\n", cfg.Journal.Path)
	fmt.Printf("journal.retention:     %d days\n", cfg.Journal.RetentionDays)
	fmt.Printf("logging.level:         %s\n", cfg.Logging.Level)
	fmt.Printf("logging.path:          %s\n", cfg.Logging.Path)

	return nil
}

// runConfigInit creates a default configuration file.
func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir, err := config.ConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")

	if err := config.WriteDefault(); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	printInfo("Config file: %s", configPath)
	return nil
}

// runConfigPath displays the configuration file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Println(configFile)
		return nil
	}

	configDir, err := config.ConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	fmt.Println(filepath.Join(configDir, "config.yaml"))
	return nil
}
