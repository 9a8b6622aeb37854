// Package manifest defines the scaffold manifest model: an ordered,
// immutable list of relative paths to materialize as empty files or
// directories. Paths are forward-slash separated and rooted at the
// target directory chosen at apply time.
package manifest

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Kind identifies what an entry materializes as.
type Kind int

const (
	// KindFile is an entry whose parent chain and zero-length file must exist.
	KindFile Kind = iota
	// KindDir is an entry that only requires the directory itself to exist.
	KindDir
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "unknown"
	}
}

// Entry is a single manifest entry: a relative path plus its kind.
type Entry struct {
	// Path is the relative, forward-slash separated path.
	Path string `json:"path" yaml:"path"`

	// Kind says whether the entry is a file or a directory.
	Kind Kind `json:"kind" yaml:"kind"`
}

// Category returns the first path segment of the entry, used for
// report aggregation only.
func (e Entry) Category() string {
	if i := strings.IndexByte(e.Path, '/'); i >= 0 {
		return e.Path[:i]
	}
	return e.Path
}

// IsDir reports whether the entry is a directory-only entry.
func (e Entry) IsDir() bool {
	return e.Kind == KindDir
}

// String renders the entry in manifest string form: directory entries
// carry a trailing slash.
func (e Entry) String() string {
	if e.Kind == KindDir {
		return e.Path + "/"
	}
	return e.Path
}

// ErrInvalidPath is returned when an entry path is empty, absolute, or
// escapes the target root.
var ErrInvalidPath = errors.New("invalid manifest path")

// validatePath checks that p is a clean relative forward-slash path.
func validatePath(p string) error {
	if p == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("%w: absolute path %q", ErrInvalidPath, p)
	}
	if strings.Contains(p, "\\") {
		return fmt.Errorf("%w: backslash in path %q (use forward slashes)", ErrInvalidPath, p)
	}
	cleaned := path.Clean(p)
	if cleaned != p {
		return fmt.Errorf("%w: %q is not a clean path (did you mean %q?)", ErrInvalidPath, p, cleaned)
	}
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%w: %q escapes the target root", ErrInvalidPath, p)
	}
	return nil
}

// ParseEntry parses the string form of an entry. A trailing slash marks
// a directory-only entry; anything else is a file entry.
func ParseEntry(s string) (Entry, error) {
	kind := KindFile
	p := strings.TrimSpace(s)
	if strings.HasSuffix(p, "/") {
		kind = KindDir
		p = strings.TrimSuffix(p, "/")
	}
	if err := validatePath(p); err != nil {
		return Entry{}, err
	}
	return Entry{Path: p, Kind: kind}, nil
}
