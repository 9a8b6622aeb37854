// Package config provides configuration management for the scaffold CLI.
package config

// Default configuration values for scaffold.
const (
	// DefaultProfile is the built-in manifest profile applied when no
	// manifest file is given.
	DefaultProfile = "all"

	// DefaultTargetPath is the directory manifest paths are resolved
	// against when none is specified.
	DefaultTargetPath = "."

	// DefaultOutput is the default output format.
	DefaultOutput = "pretty"

	// DefaultRetentionDays is the default number of days to retain
	// journal entries.
	DefaultRetentionDays = 30
)
