// Package scaffolder implements the idempotent materialization
// algorithm: given a manifest of relative paths, it ensures every
// parent directory exists and every file entry exists as a zero-length
// file, without ever truncating or modifying existing content.
package scaffolder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jamesainslie/scaffold/pkg/scaffold/logging"
	"github.com/jamesainslie/scaffold/pkg/scaffold/manifest"
)

// logger is the package-level logger for materialization operations.
var logger = logging.Get("scaffolder")

// Permission bits for created directories and files.
const (
	dirMode  = 0o755
	fileMode = 0o644
)

// Options configures a Scaffolder.
type Options struct {
	// Root is the directory all manifest paths are resolved against.
	// It must exist before Materialize is called.
	Root string

	// DryRun previews per-entry decisions without touching the filesystem.
	DryRun bool

	// Progress, if set, is called once per entry in manifest order as
	// each decision is made.
	Progress func(EntryResult)
}

// Scaffolder materializes manifests onto the filesystem. A single run
// is a linear, synchronous pass over the manifest; the scaffolder
// assumes it is the sole writer for the duration of the run.
type Scaffolder struct {
	opts Options

	// preCreate, when set, runs between the existence check and the
	// create in ensureFile. Tests use it to interleave a concurrent
	// creator.
	preCreate func(target string)
}

// New creates a Scaffolder with the given options.
func New(opts Options) *Scaffolder {
	return &Scaffolder{opts: opts}
}

// Materialize processes every manifest entry in order and returns the
// aggregate result. Per-entry filesystem errors are recorded and logged
// but do not stop the run; the caller decides how to surface them.
// Re-running against a completed tree yields created = 0 and
// skipped = number of file entries.
func (s *Scaffolder) Materialize(m *manifest.Manifest) (*RunResult, error) {
	if s.opts.Root == "" {
		return nil, errors.New("scaffolder root cannot be empty")
	}

	start := time.Now()
	result := &RunResult{
		Root:       s.opts.Root,
		Categories: m.Categories(),
		DryRun:     s.opts.DryRun,
	}

	for _, entry := range m.Entries() {
		er := s.processEntry(entry)

		switch {
		case er.Outcome == OutcomeFailed:
			result.Failed++
			logger.Error("entry failed", "path", entry.Path, "error", er.Err)
		case entry.IsDir():
			// Directory entries are reported but never counted.
		case er.Outcome == OutcomeCreated:
			result.Created++
		case er.Outcome == OutcomeSkipped:
			result.Skipped++
		}

		result.Entries = append(result.Entries, er)
		if s.opts.Progress != nil {
			s.opts.Progress(er)
		}
	}

	result.Duration = time.Since(start)
	logger.Info("materialize complete",
		"root", s.opts.Root,
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"dry_run", s.opts.DryRun)

	return result, nil
}

// processEntry makes the create-or-skip decision for one entry.
func (s *Scaffolder) processEntry(entry manifest.Entry) EntryResult {
	target := filepath.Join(s.opts.Root, filepath.FromSlash(entry.Path))

	if entry.IsDir() {
		return s.ensureDir(entry, target)
	}
	return s.ensureFile(entry, target)
}

// ensureDir materializes a directory-only entry. Creating an existing
// directory is a no-op, never an error.
func (s *Scaffolder) ensureDir(entry manifest.Entry, target string) EntryResult {
	info, err := os.Stat(target)
	switch {
	case err == nil && info.IsDir():
		return EntryResult{Entry: entry, Outcome: OutcomeSkipped}
	case err == nil:
		return EntryResult{
			Entry:   entry,
			Outcome: OutcomeFailed,
			Err:     fmt.Errorf("%s: exists but is not a directory", entry.Path),
		}
	case !errors.Is(err, fs.ErrNotExist):
		return EntryResult{Entry: entry, Outcome: OutcomeFailed, Err: err}
	}

	if s.opts.DryRun {
		return EntryResult{Entry: entry, Outcome: OutcomeCreated}
	}

	if err := os.MkdirAll(target, dirMode); err != nil {
		return EntryResult{Entry: entry, Outcome: OutcomeFailed, Err: err}
	}
	return EntryResult{Entry: entry, Outcome: OutcomeCreated}
}

// ensureFile materializes a file entry: parent chain first, then the
// zero-length file itself if absent. Existing files are never opened in
// truncating mode.
func (s *Scaffolder) ensureFile(entry manifest.Entry, target string) EntryResult {
	parent := filepath.Dir(target)

	if !s.opts.DryRun {
		if err := os.MkdirAll(parent, dirMode); err != nil {
			return EntryResult{Entry: entry, Outcome: OutcomeFailed, Err: err}
		}
	}

	info, err := os.Stat(target)
	switch {
	case err == nil && info.IsDir():
		return EntryResult{
			Entry:   entry,
			Outcome: OutcomeFailed,
			Err:     fmt.Errorf("%s: exists but is a directory", entry.Path),
		}
	case err == nil:
		return EntryResult{Entry: entry, Outcome: OutcomeSkipped}
	case !errors.Is(err, fs.ErrNotExist):
		return EntryResult{Entry: entry, Outcome: OutcomeFailed, Err: err}
	}

	if s.opts.DryRun {
		return EntryResult{Entry: entry, Outcome: OutcomeCreated}
	}

	if s.preCreate != nil {
		s.preCreate(target)
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		// A concurrent actor may win the race between the existence
		// check and the create. Create-if-absent semantics: either
		// winner leaves a valid file in place, so this is success.
		if errors.Is(err, fs.ErrExist) {
			return EntryResult{Entry: entry, Outcome: OutcomeCreated}
		}
		return EntryResult{Entry: entry, Outcome: OutcomeFailed, Err: err}
	}
	if err := f.Close(); err != nil {
		return EntryResult{Entry: entry, Outcome: OutcomeFailed, Err: err}
	}
	return EntryResult{Entry: entry, Outcome: OutcomeCreated}
}
