package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jamesainslie/scaffold/pkg/scaffold/config"
	"github.com/jamesainslie/scaffold/pkg/scaffold/journal"
	"github.com/jamesainslie/scaffold/pkg/scaffold/manifest"
	"github.com/jamesainslie/scaffold/pkg/scaffold/output"
	"github.com/jamesainslie/scaffold/pkg/scaffold/scaffolder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runApply is the main apply handler: materialize the manifest against
// the target root, report per-entry decisions, and record the run.
func runApply(_ *cobra.Command, args []string) error {
	absPath, err := resolveRoot(args)
	if err != nil {
		return err
	}

	m, profile, err := loadManifest()
	if err != nil {
		return err
	}

	outFormat := viper.GetString("output")
	if outFormat == "" {
		outFormat = config.DefaultOutput
	}
	formatter, err := output.Get(outFormat)
	if err != nil {
		return fmt.Errorf("unknown output format %q: available formats are %v", outFormat, output.Available())
	}

	dryRun := viper.GetBool("dry_run")
	printVerbose("Applying %d entries against %s (dry-run=%t)", m.Len(), absPath, dryRun)

	s := scaffolder.New(scaffolder.Options{
		Root:     absPath,
		DryRun:   dryRun,
		Progress: progressPrinter(outFormat),
	})

	result, err := s.Materialize(m)
	if err != nil {
		return fmt.Errorf("materialize failed: %w", err)
	}

	// Output summary
	var buf bytes.Buffer
	if err := formatter.Format(&buf, buildOutputResult(result, profile)); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(buf.String())

	if !dryRun {
		recordRun(result, profile)
	}

	if !result.Ok() {
		return fmt.Errorf("%d of %d entries failed", result.Failed, result.TotalEntries())
	}
	return nil
}

// resolveRoot determines and validates the target root directory.
func resolveRoot(args []string) (string, error) {
	targetPath := viper.GetString("target_path")
	if targetPath == "" {
		targetPath = config.DefaultTargetPath
	}
	if len(args) > 0 {
		targetPath = args[0]
	}

	expandedPath, err := config.ExpandPath(targetPath)
	if err != nil {
		return "", fmt.Errorf("failed to expand path: %w", err)
	}

	absPath, err := filepath.Abs(expandedPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("path does not exist: %s", absPath)
		}
		return "", fmt.Errorf("cannot access path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", absPath)
	}

	return absPath, nil
}

// loadManifest loads the effective manifest: an explicit manifest file
// when given, otherwise the configured built-in profile. The returned
// profile name is empty for file manifests.
func loadManifest() (*manifest.Manifest, string, error) {
	if manifestPath := viper.GetString("manifest_path"); manifestPath != "" {
		expanded, err := config.ExpandPath(manifestPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to expand manifest path: %w", err)
		}
		m, err := manifest.LoadFile(expanded)
		if err != nil {
			return nil, "", err
		}
		return m, "", nil
	}

	profile := viper.GetString("profile")
	if profile == "" {
		profile = config.DefaultProfile
	}
	m, err := manifest.Default(profile)
	if err != nil {
		return nil, "", err
	}
	return m, profile, nil
}

// progressPrinter returns the per-entry progress callback for the given
// output format. Structured formats carry the entries in the final
// document instead of printing them live.
func progressPrinter(outFormat string) func(scaffolder.EntryResult) {
	if getQuiet() {
		return nil
	}

	switch outFormat {
	case "pretty":
		return func(er scaffolder.EntryResult) {
			fmt.Println(output.EntryLine(toEntryInfo(er)))
		}
	case "plain":
		return func(er scaffolder.EntryResult) {
			fmt.Println(output.PlainEntryLine(toEntryInfo(er)))
		}
	default:
		return nil
	}
}

// toEntryInfo converts a scaffolder entry result for output formatting.
func toEntryInfo(er scaffolder.EntryResult) output.EntryInfo {
	info := output.EntryInfo{
		Path:    er.Entry.Path,
		Kind:    er.Entry.Kind.String(),
		Outcome: er.Outcome.String(),
	}
	if er.Err != nil {
		info.Error = er.Err.Error()
	}
	return info
}

// buildOutputResult converts a RunResult to the output package's Result.
func buildOutputResult(r *scaffolder.RunResult, profile string) *output.Result {
	entries := make([]output.EntryInfo, len(r.Entries))
	for i, er := range r.Entries {
		entries[i] = toEntryInfo(er)
	}

	return &output.Result{
		Entries: entries,
		Stats: output.RunStats{
			TotalEntries: r.TotalEntries(),
			Created:      r.Created,
			Skipped:      r.Skipped,
			Failed:       r.Failed,
			Duration:     r.Duration,
		},
		Root:       r.Root,
		Profile:    profile,
		DryRun:     r.DryRun,
		Categories: r.Categories,
	}
}

// recordRun writes the run to the journal. Journal failures never fail
// the apply; they are reported as warnings.
func recordRun(r *scaffolder.RunResult, profile string) {
	if viper.GetBool("no_journal") || !viper.GetBool("journal.enabled") {
		return
	}

	j, err := getJournal()
	if err != nil {
		printVerbose("Journal disabled: %v", err)
		return
	}
	if err := j.EnsureDir(); err != nil {
		printError("failed to create journal directory: %v", err)
		return
	}

	paths := make([]journal.PathRecord, len(r.Entries))
	for i, er := range r.Entries {
		rec := journal.PathRecord{
			Path:    er.Entry.Path,
			Kind:    er.Entry.Kind.String(),
			Outcome: er.Outcome.String(),
		}
		if er.Err != nil {
			rec.Error = er.Err.Error()
		}
		paths[i] = rec
	}

	if _, err := j.LogRun(r.Root, profile, r.DryRun, paths); err != nil {
		printError("failed to record run: %v", err)
	}
}
