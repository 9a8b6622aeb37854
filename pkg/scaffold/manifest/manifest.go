package manifest

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Manifest is an ordered list of entries. It is immutable for the
// duration of a run; processing order follows entry order.
type Manifest struct {
	entries []Entry
}

// document is the on-disk YAML shape of a manifest file.
type document struct {
	// Dirs lists directory-only entries.
	Dirs []string `yaml:"dirs"`
	// Files lists file entries; parent directories are implied.
	Files []string `yaml:"files"`
}

// New builds a manifest from pre-validated entries.
func New(entries []Entry) *Manifest {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Manifest{entries: copied}
}

// FromStrings builds a manifest from entry strings, applying the
// trailing-slash rule for directory entries.
func FromStrings(paths []string) (*Manifest, error) {
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		e, err := ParseEntry(p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return &Manifest{entries: entries}, nil
}

// Parse parses a YAML manifest document. Directory entries come first,
// then file entries, each preserving document order.
func Parse(data []byte) (*Manifest, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Dirs)+len(doc.Files))
	for _, p := range doc.Dirs {
		if err := validatePath(p); err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Path: p, Kind: KindDir})
	}
	for _, p := range doc.Files {
		if err := validatePath(p); err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Path: p, Kind: KindFile})
	}
	return &Manifest{entries: entries}, nil
}

// LoadFile reads and parses a YAML manifest file.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Entries returns the entries in manifest order. The returned slice is
// a copy; mutating it does not affect the manifest.
func (m *Manifest) Entries() []Entry {
	copied := make([]Entry, len(m.entries))
	copy(copied, m.entries)
	return copied
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// Files returns the number of file entries.
func (m *Manifest) Files() int {
	n := 0
	for _, e := range m.entries {
		if e.Kind == KindFile {
			n++
		}
	}
	return n
}

// Categories returns per-category entry counts, grouping by the first
// path segment. Counts come from the static manifest, not from any
// apply outcome.
func (m *Manifest) Categories() map[string]int {
	counts := make(map[string]int)
	for _, e := range m.entries {
		counts[e.Category()]++
	}
	return counts
}

// CategoryNames returns the category names sorted alphabetically.
func (m *Manifest) CategoryNames() []string {
	counts := m.Categories()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new manifest containing this manifest's entries
// followed by other's entries.
func (m *Manifest) Merge(other *Manifest) *Manifest {
	entries := make([]Entry, 0, len(m.entries)+len(other.entries))
	entries = append(entries, m.entries...)
	entries = append(entries, other.entries...)
	return &Manifest{entries: entries}
}
