package main

import (
	"fmt"

	"github.com/jamesainslie/scaffold/pkg/scaffold/config"
	"github.com/jamesainslie/scaffold/pkg/scaffold/manifest"
	"github.com/spf13/cobra"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Inspect manifests",
	Long: `Inspect the effective manifest without applying it.

The effective manifest is the file given with --manifest, or the
built-in profile selected with --profile.`,
}

var manifestShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the entries of the effective manifest",
	RunE:  runManifestShow,
}

var manifestValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a manifest file",
	Long:  `Parse a YAML manifest file and report whether every path is valid.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runManifestValidate,
}

func init() {
	manifestCmd.AddCommand(manifestShowCmd)
	manifestCmd.AddCommand(manifestValidateCmd)
	rootCmd.AddCommand(manifestCmd)
}

// runManifestShow prints the effective manifest's entries and
// per-category totals.
func runManifestShow(_ *cobra.Command, _ []string) error {
	m, profile, err := loadManifest()
	if err != nil {
		return err
	}

	if profile != "" {
		printInfo("Profile: %s", profile)
	}
	printInfo("Entries: %d (%d files)\n", m.Len(), m.Files())

	for _, e := range m.Entries() {
		fmt.Println(e.String())
	}

	categories := m.Categories()
	printInfo("\nCategories:")
	for _, name := range m.CategoryNames() {
		printInfo("  %-16s %d", name+"/", categories[name])
	}

	return nil
}

// runManifestValidate parses the given manifest file.
func runManifestValidate(_ *cobra.Command, args []string) error {
	path, err := config.ExpandPath(args[0])
	if err != nil {
		return fmt.Errorf("failed to expand path: %w", err)
	}

	m, err := manifest.LoadFile(path)
	if err != nil {
		return err
	}

	printInfo("%s is valid: %d entries (%d files) in %d categories",
		path, m.Len(), m.Files(), len(m.Categories()))
	return nil
}
