// Package status inspects a scaffolded tree against a manifest,
// classifying each manifest entry as present or missing and flagging
// paths under managed categories that the manifest does not know about.
package status

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/jamesainslie/scaffold/pkg/scaffold/logging"
	"github.com/jamesainslie/scaffold/pkg/scaffold/manifest"
)

// logger is the package-level logger for status operations.
var logger = logging.Get("status")

// Report is the result of comparing a tree against a manifest.
type Report struct {
	// Present holds manifest entries that exist on disk with the
	// expected kind.
	Present []manifest.Entry

	// Missing holds manifest entries absent from the tree.
	Missing []manifest.Entry

	// Mismatched holds manifest entries that exist with the wrong kind
	// (a directory where a file is expected, or vice versa).
	Mismatched []manifest.Entry

	// Untracked holds relative paths found under the manifest's
	// categories that no manifest entry accounts for, sorted.
	Untracked []string
}

// Complete reports whether every manifest entry is present with the
// expected kind.
func (r *Report) Complete() bool {
	return len(r.Missing) == 0 && len(r.Mismatched) == 0
}

// Inspect stats every manifest entry under root and walks the
// manifest's category directories to find untracked paths.
func Inspect(root string, m *manifest.Manifest) (*Report, error) {
	if root == "" {
		return nil, errors.New("status root cannot be empty")
	}

	report := &Report{}
	managed := managedSet(m)

	for _, entry := range m.Entries() {
		target := filepath.Join(root, filepath.FromSlash(entry.Path))
		info, err := os.Stat(target)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			report.Missing = append(report.Missing, entry)
		case err != nil:
			return nil, err
		case info.IsDir() != entry.IsDir():
			report.Mismatched = append(report.Mismatched, entry)
		default:
			report.Present = append(report.Present, entry)
		}
	}

	untracked, err := findUntracked(root, m.CategoryNames(), managed)
	if err != nil {
		return nil, err
	}
	report.Untracked = untracked

	logger.Debug("inspect complete",
		"present", len(report.Present),
		"missing", len(report.Missing),
		"mismatched", len(report.Mismatched),
		"untracked", len(report.Untracked))

	return report, nil
}

// managedSet returns every manifest path plus all implied parent
// directories, keyed by forward-slash relative path.
func managedSet(m *manifest.Manifest) map[string]struct{} {
	managed := make(map[string]struct{})
	for _, entry := range m.Entries() {
		p := entry.Path
		for p != "." && p != "" {
			managed[p] = struct{}{}
			p = filepath.ToSlash(filepath.Dir(filepath.FromSlash(p)))
		}
	}
	return managed
}

// findUntracked walks each existing category directory and collects
// relative paths the manifest does not account for.
func findUntracked(root string, categories []string, managed map[string]struct{}) ([]string, error) {
	conf := fastwalk.Config{
		Follow: false, // Don't follow symlinks.
	}

	var mu sync.Mutex
	var untracked []string

	for _, category := range categories {
		categoryRoot := filepath.Join(root, category)
		if _, err := os.Stat(categoryRoot); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		err := fastwalk.Walk(&conf, categoryRoot, func(path string, _ fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("walk error", "path", path, "error", err)
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return nil
			}
			relSlash := filepath.ToSlash(rel)
			if relSlash == "." || strings.HasPrefix(relSlash, "..") {
				return nil
			}

			if _, ok := managed[relSlash]; !ok {
				mu.Lock()
				untracked = append(untracked, relSlash)
				mu.Unlock()
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(untracked)
	return untracked, nil
}
