package main

import (
	"fmt"

	"github.com/jamesainslie/scaffold/pkg/scaffold/status"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [path]",
	Short: "Compare a tree against the manifest",
	Long: `Walk the manifest's categories under the target directory and report
which manifest entries are present, missing, or of the wrong kind, plus
any untracked paths the manifest does not know about.

Status never modifies the filesystem.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// runStatus inspects the target tree against the effective manifest.
func runStatus(_ *cobra.Command, args []string) error {
	absPath, err := resolveRoot(args)
	if err != nil {
		return err
	}

	m, profile, err := loadManifest()
	if err != nil {
		return err
	}

	report, err := status.Inspect(absPath, m)
	if err != nil {
		return fmt.Errorf("status failed: %w", err)
	}

	printInfo("Root:    %s", absPath)
	if profile != "" {
		printInfo("Profile: %s", profile)
	}
	printInfo("Present: %d of %d entries", len(report.Present), m.Len())

	if len(report.Missing) > 0 {
		printInfo("\nMissing (%d):", len(report.Missing))
		for _, e := range report.Missing {
			printInfo("  %s", e.String())
		}
	}

	if len(report.Mismatched) > 0 {
		printInfo("\nWrong kind (%d):", len(report.Mismatched))
		for _, e := range report.Mismatched {
			printInfo("  %s (expected %s)", e.Path, e.Kind)
		}
	}

	if len(report.Untracked) > 0 {
		printInfo("\nUntracked (%d):", len(report.Untracked))
		for _, p := range report.Untracked {
			printInfo("  %s", p)
		}
	}

	if report.Complete() {
		printInfo("\nTree is complete. Run 'scaffold' to re-verify at any time.")
		return nil
	}

	printInfo("\nRun 'scaffold %s' to materialize the missing entries.", args0OrDot(args))
	return nil
}

// args0OrDot returns the first positional argument, or "." if none.
func args0OrDot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
