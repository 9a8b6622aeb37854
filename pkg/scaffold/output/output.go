// Package output provides formatters for displaying scaffold run
// results in various output formats (pretty, plain, json, yaml, etc.).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, result); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"time"
)

// EntryInfo contains the per-entry decision for output formatting.
type EntryInfo struct {
	// Path is the relative manifest path.
	Path string `json:"path" yaml:"path"`

	// Kind is "file" or "dir".
	Kind string `json:"kind" yaml:"kind"`

	// Outcome is "created", "skipped", or "failed".
	Outcome string `json:"outcome" yaml:"outcome"`

	// Error is the failure message when Outcome is "failed".
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunStats contains aggregate statistics for a run.
type RunStats struct {
	// TotalEntries is the number of manifest entries processed.
	TotalEntries int `json:"total_entries" yaml:"total_entries"`

	// Created is the number of file entries created.
	Created int `json:"created" yaml:"created"`

	// Skipped is the number of file entries that already existed.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Failed is the number of entries that hit a filesystem error.
	Failed int `json:"failed" yaml:"failed"`

	// Duration is the total time taken to complete the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Result contains the complete output data for formatting.
type Result struct {
	// Entries holds the per-entry decisions in manifest order.
	Entries []EntryInfo `json:"entries" yaml:"entries"`

	// Stats contains run statistics.
	Stats RunStats `json:"stats" yaml:"stats"`

	// Root is the directory the manifest was applied against.
	Root string `json:"root" yaml:"root"`

	// Profile is the built-in manifest profile, if one was used.
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty"`

	// DryRun indicates the run previewed decisions without side effects.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// Categories maps each top-level category to its manifest entry count.
	Categories map[string]int `json:"categories" yaml:"categories"`
}

// CategoryNames returns the category names sorted alphabetically.
func (r *Result) CategoryNames() []string {
	names := make([]string, 0, len(r.Categories))
	for name := range r.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreatedPaths returns the paths of entries that were created, in order.
func (r *Result) CreatedPaths() []string {
	var paths []string
	for _, e := range r.Entries {
		if e.Outcome == "created" {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

// Failures returns the entries that failed, in order.
func (r *Result) Failures() []EntryInfo {
	var failed []EntryInfo
	for _, e := range r.Entries {
		if e.Outcome == "failed" {
			failed = append(failed, e)
		}
	}
	return failed
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted output to the buffer.
	// It returns an error if formatting fails.
	Format(w *bytes.Buffer, r *Result) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FormatterFactory),
	}
}

// Register adds a formatter factory to the registry.
// It will replace any existing formatter with the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
// It returns an error if the formatter is not found.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown formatter: %s", name)
	}
	return factory(), nil
}

// Available returns a sorted list of all registered formatter names.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}
