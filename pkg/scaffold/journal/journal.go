package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jamesainslie/scaffold/pkg/scaffold/logging"
)

// logger is the package-level logger for journal operations.
var logger = logging.Get("journal")

// Journal manages run-history logging to the filesystem. Each run is
// one JSON file in the journal directory.
type Journal struct {
	dir string
	mu  sync.Mutex
}

// New creates a new Journal with the given directory.
// The directory is not created until EnsureDir is called.
func New(dir string) (*Journal, error) {
	if dir == "" {
		return nil, errors.New("journal directory cannot be empty")
	}
	return &Journal{dir: dir}, nil
}

// EnsureDir creates the journal directory if it does not exist.
func (j *Journal) EnsureDir() error {
	return os.MkdirAll(j.dir, 0o755)
}

// LogRun records one run and returns the created entry.
func (j *Journal) LogRun(root, profile string, dryRun bool, paths []PathRecord) (*Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now().UTC()

	var summary Summary
	summary.TotalEntries = len(paths)
	for _, p := range paths {
		switch p.Outcome {
		case "created":
			if p.Kind != "dir" {
				summary.Created++
			}
		case "skipped":
			if p.Kind != "dir" {
				summary.Skipped++
			}
		case "failed":
			summary.Failed++
		}
	}

	entry := &Entry{
		ID:        generateID(now),
		Timestamp: now,
		Root:      root,
		Profile:   profile,
		DryRun:    dryRun,
		Paths:     paths,
		Summary:   summary,
	}

	if err := j.writeEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to write journal entry: %w", err)
	}

	logger.Debug("run recorded", "id", entry.ID, "root", root)
	return entry, nil
}

// writeEntry writes an entry to a JSON file in the journal directory.
func (j *Journal) writeEntry(entry *Entry) error {
	filePath := filepath.Join(j.dir, entry.ID+".json")

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	// Write atomically using a temp file and rename
	tmpPath := filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// List returns all journal entries sorted by timestamp descending
// (newest first). If limit is 0 or negative, all entries are returned.
func (j *Journal) List(limit int) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	files, err := os.ReadDir(j.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read journal directory: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		entry, err := j.readEntryFile(f.Name())
		if err != nil {
			// Skip files that can't be parsed
			continue
		}
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, k int) bool {
		return entries[i].Timestamp.After(entries[k].Timestamp)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	if entries == nil {
		entries = []Entry{}
	}

	return entries, nil
}

// Get retrieves a specific entry by ID.
func (j *Journal) Get(id string) (*Entry, error) {
	if id == "" {
		return nil, errors.New("entry ID cannot be empty")
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	files, err := os.ReadDir(j.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal directory: %w", err)
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		entry, err := j.readEntryFile(f.Name())
		if err != nil {
			continue
		}

		if entry.ID == id {
			return entry, nil
		}
	}

	return nil, fmt.Errorf("entry not found: %s", id)
}

// readEntryFile reads and parses a journal entry from a JSON file.
func (j *Journal) readEntryFile(filename string) (*Entry, error) {
	data, err := os.ReadFile(filepath.Join(j.dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
	}

	return &entry, nil
}

// Cleanup removes entries older than retentionDays.
func (j *Journal) Cleanup(retentionDays int) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	files, err := os.ReadDir(j.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read journal directory: %w", err)
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}

		info, err := f.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(j.dir, f.Name())); err != nil {
				// Log error but continue cleanup
				logger.Warn("failed to remove old entry", "file", f.Name(), "error", err)
				continue
			}
		}
	}

	return nil
}

// generateID creates a unique ID like "run-2024-06-15T10-30-00-1a2b3c4d".
func generateID(now time.Time) string {
	ts := now.Format("2006-01-02T15-04-05")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("run-%s-%s", ts, suffix)
}
