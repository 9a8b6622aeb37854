package scaffolder

import (
	"time"

	"github.com/jamesainslie/scaffold/pkg/scaffold/manifest"
)

// Outcome is the per-entry decision made during materialization.
type Outcome int

const (
	// OutcomeCreated means the path did not exist and was created.
	OutcomeCreated Outcome = iota
	// OutcomeSkipped means the path already existed and was left untouched.
	OutcomeSkipped
	// OutcomeFailed means a filesystem error prevented materialization.
	OutcomeFailed
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// EntryResult records the decision made for a single manifest entry.
type EntryResult struct {
	// Entry is the manifest entry that was processed.
	Entry manifest.Entry

	// Outcome is the decision: created, skipped, or failed.
	Outcome Outcome

	// Err holds the filesystem error when Outcome is OutcomeFailed.
	Err error
}

// RunResult aggregates the outcome of one materialization run. It is
// constructed fresh per invocation; the only persistent state is the
// filesystem itself.
type RunResult struct {
	// Root is the directory all manifest paths were resolved against.
	Root string

	// Created counts file entries that were created. Directory entries
	// are never counted in Created or Skipped.
	Created int

	// Skipped counts file entries that already existed.
	Skipped int

	// Failed counts entries of either kind that hit a filesystem error.
	Failed int

	// Entries holds the per-entry decisions in manifest order.
	Entries []EntryResult

	// Categories maps each top-level category to its total entry count,
	// computed from the static manifest independent of outcome.
	Categories map[string]int

	// Duration is the wall-clock time of the run.
	Duration time.Duration

	// DryRun is true when the run previewed decisions without touching
	// the filesystem.
	DryRun bool
}

// Ok reports whether every entry materialized without error.
func (r *RunResult) Ok() bool {
	return r.Failed == 0
}

// TotalEntries returns the number of manifest entries processed.
func (r *RunResult) TotalEntries() int {
	return len(r.Entries)
}
