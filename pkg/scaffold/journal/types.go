// Package journal provides run-history logging for scaffold operations.
package journal

import "time"

// Entry represents a single recorded run.
type Entry struct {
	ID        string       `json:"id"`
	Timestamp time.Time    `json:"timestamp"`
	Root      string       `json:"root"`
	Profile   string       `json:"profile,omitempty"`
	DryRun    bool         `json:"dry_run,omitempty"`
	Paths     []PathRecord `json:"paths"`
	Summary   Summary      `json:"summary"`
}

// PathRecord represents one manifest entry's outcome in a run.
type PathRecord struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

// Summary contains run totals.
type Summary struct {
	TotalEntries int `json:"total_entries"`
	Created      int `json:"created"`
	Skipped      int `json:"skipped"`
	Failed       int `json:"failed"`
}
