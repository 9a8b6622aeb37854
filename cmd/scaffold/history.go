package main

import (
	"fmt"
	"strings"

	"github.com/jamesainslie/scaffold/pkg/scaffold/config"
	"github.com/jamesainslie/scaffold/pkg/scaffold/journal"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View run history",
	Long: `View the history of scaffold runs.

The journal stores a record of every apply, including the per-path
decision made for each manifest entry.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show details of a specific run",
	Long:  `Display detailed information about a specific run by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean up old history entries",
	Long:  `Remove history entries older than the retention period.`,
	RunE:  runHistoryClean,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of entries to show")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyCleanCmd)
	rootCmd.AddCommand(historyCmd)
}

// getJournal returns a journal instance with the configured directory.
func getJournal() (*journal.Journal, error) {
	cfg, err := config.Load()
	if err != nil {
		// Use the default journal path if config fails to load
		return journal.New(config.DefaultJournalDir())
	}
	if cfg.Journal.Path == "" {
		return journal.New(config.DefaultJournalDir())
	}
	return journal.New(cfg.Journal.Path)
}

// runHistory lists recent runs.
func runHistory(cmd *cobra.Command, args []string) error {
	j, err := getJournal()
	if err != nil {
		return fmt.Errorf("failed to initialize journal: %w", err)
	}

	entries, err := j.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		printInfo("No history entries found.")
		printInfo("Run 'scaffold [path]' to materialize a project skeleton.")
		return nil
	}

	fmt.Printf("\n%-34s  %-19s  %-8s  %-8s  %-8s\n", "ID", "TIMESTAMP", "CREATED", "SKIPPED", "FAILED")
	fmt.Println(strings.Repeat("-", 86))

	for _, entry := range entries {
		fmt.Printf("%-34s  %-19s  %-8d  %-8d  %-8d\n",
			truncateString(entry.ID, 34),
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Summary.Created,
			entry.Summary.Skipped,
			entry.Summary.Failed,
		)
	}

	fmt.Println(strings.Repeat("-", 86))
	fmt.Printf("\nShowing %d entries. Use --limit to see more.\n", len(entries))
	fmt.Println("Use 'scaffold history show <id>' for details on a specific run.")

	return nil
}

// runHistoryShow displays details of a specific run.
func runHistoryShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	j, err := getJournal()
	if err != nil {
		return fmt.Errorf("failed to initialize journal: %w", err)
	}

	entry, err := j.Get(id)
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	fmt.Println("\nRun Details")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("ID:         %s\n", entry.ID)
	fmt.Printf("Timestamp:  %s\n", entry.Timestamp.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Root:       %s\n", entry.Root)
	if entry.Profile != "" {
		fmt.Printf("Profile:    %s\n", entry.Profile)
	}
	if entry.DryRun {
		fmt.Printf("Dry run:    yes\n")
	}
	fmt.Printf("Entries:    %d\n", entry.Summary.TotalEntries)
	fmt.Printf("Created:    %d\n", entry.Summary.Created)
	fmt.Printf("Skipped:    %d\n", entry.Summary.Skipped)
	fmt.Printf("Failed:     %d\n", entry.Summary.Failed)

	if len(entry.Paths) > 0 {
		fmt.Println("\nPaths:")
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("%-8s  %-5s  %s\n", "OUTCOME", "KIND", "PATH")
		fmt.Println(strings.Repeat("-", 60))

		// Limit display to 50 paths
		limit := 50
		if len(entry.Paths) < limit {
			limit = len(entry.Paths)
		}

		for i := 0; i < limit; i++ {
			p := entry.Paths[i]
			fmt.Printf("%-8s  %-5s  %s\n", p.Outcome, p.Kind, p.Path)
			if p.Error != "" {
				fmt.Printf("%-8s  %-5s    %s\n", "", "", p.Error)
			}
		}

		if len(entry.Paths) > limit {
			fmt.Printf("\n... and %d more paths\n", len(entry.Paths)-limit)
		}
	}

	return nil
}

// runHistoryClean removes old history entries.
func runHistoryClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	j, err := getJournal()
	if err != nil {
		return fmt.Errorf("failed to initialize journal: %w", err)
	}

	retentionDays := cfg.Journal.RetentionDays
	if retentionDays <= 0 {
		retentionDays = config.DefaultRetentionDays
	}

	printInfo("Cleaning history entries older than %d days...", retentionDays)

	if err := j.Cleanup(retentionDays); err != nil {
		return fmt.Errorf("failed to clean history: %w", err)
	}

	printInfo("History cleanup complete.")
	return nil
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
