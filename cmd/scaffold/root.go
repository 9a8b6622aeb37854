package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/scaffold/pkg/scaffold/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "scaffold [path]",
		Short: "Materialize an idempotent project skeleton",
		Long: `Scaffold creates the directory and file skeleton of a project from a
manifest of relative paths. Every parent directory is created as needed
and every listed file is created empty if absent. Existing files are
never touched, so re-running against a completed tree is a no-op.

Examples:
  scaffold                        # Apply the built-in manifest to the current directory
  scaffold ~/work/ecu             # Apply against a specific directory
  scaffold -p test .              # Apply only the test-tree profile
  scaffold -m layout.yaml .       # Apply a manifest file
  scaffold -d .                   # Preview without creating anything
  scaffold status                 # Compare the tree against the manifest
  scaffold history                # View past runs`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: initLogging,
		SilenceUsage:      true,
		RunE:              runApply,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/scaffold/config.yaml)")
	rootCmd.PersistentFlags().StringP("manifest", "m", "", "manifest file (YAML); overrides --profile")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "built-in manifest profile (project, test, all)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (pretty, plain, json, jsonl, yaml, paths, null)")
	rootCmd.PersistentFlags().BoolP("dry-run", "d", false, "don't create anything (preview only)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")
	rootCmd.PersistentFlags().Bool("no-journal", false, "don't record this run in the journal")

	// Bind flags to viper
	_ = viper.BindPFlag("manifest_path", rootCmd.PersistentFlags().Lookup("manifest"))
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no_journal", rootCmd.PersistentFlags().Lookup("no-journal"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		// Add config paths in order of precedence
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "scaffold"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "scaffold"))
		}
	}

	// Set environment variable prefix and enable auto env binding
	viper.SetEnvPrefix("SCAFFOLD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Set defaults from config package
	viper.SetDefault("profile", config.DefaultProfile)
	viper.SetDefault("target_path", config.DefaultTargetPath)
	viper.SetDefault("output", config.DefaultOutput)
	viper.SetDefault("journal.enabled", true)
	viper.SetDefault("journal.retention_days", config.DefaultRetentionDays)

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
