package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// setupTestJournal creates a journal backed by a temp directory.
func setupTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := j.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	return j
}

func TestNew(t *testing.T) {
	t.Run("creates journal with valid directory", func(t *testing.T) {
		j, err := New(t.TempDir())
		if err != nil {
			t.Fatalf("New() error = %v, want nil", err)
		}
		if j == nil {
			t.Fatal("New() returned nil")
		}
	})

	t.Run("returns error for empty directory", func(t *testing.T) {
		_, err := New("")
		if err == nil {
			t.Fatal("New() error = nil, want error for empty directory")
		}
	})
}

func TestJournal_EnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	journalDir := filepath.Join(tmpDir, "journal")

	j, err := New(journalDir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := j.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	info, err := os.Stat(journalDir)
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("path is not a directory")
	}
}

func TestJournal_LogRun(t *testing.T) {
	j := setupTestJournal(t)

	paths := []PathRecord{
		{Path: "scripts/build.sh", Kind: "file", Outcome: "created"},
		{Path: "scripts/test.sh", Kind: "file", Outcome: "skipped"},
		{Path: "test/unit", Kind: "dir", Outcome: "created"},
		{Path: "docs/x.md", Kind: "file", Outcome: "failed", Error: "permission denied"},
	}

	entry, err := j.LogRun("/tmp/project", "all", false, paths)
	if err != nil {
		t.Fatalf("LogRun() error = %v", err)
	}

	if entry.Summary.TotalEntries != 4 {
		t.Errorf("TotalEntries = %d, want 4", entry.Summary.TotalEntries)
	}
	// Directory entries are not counted in created/skipped
	if entry.Summary.Created != 1 {
		t.Errorf("Created = %d, want 1", entry.Summary.Created)
	}
	if entry.Summary.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", entry.Summary.Skipped)
	}
	if entry.Summary.Failed != 1 {
		t.Errorf("Failed = %d, want 1", entry.Summary.Failed)
	}

	if !strings.HasPrefix(entry.ID, "run-") {
		t.Errorf("ID = %q, want run- prefix", entry.ID)
	}
	if entry.Root != "/tmp/project" {
		t.Errorf("Root = %q", entry.Root)
	}
}

func TestJournal_List(t *testing.T) {
	j := setupTestJournal(t)

	for i := 0; i < 3; i++ {
		if _, err := j.LogRun("/tmp/project", "all", false, nil); err != nil {
			t.Fatalf("LogRun() error = %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	entries, err := j.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	// Newest first
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Error("entries are not sorted newest first")
		}
	}

	limited, err := j.List(2)
	if err != nil {
		t.Fatalf("List(2) error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(limited) = %d, want 2", len(limited))
	}
}

func TestJournal_List_MissingDir(t *testing.T) {
	j, err := New(filepath.Join(t.TempDir(), "never-created"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	entries, err := j.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestJournal_Get(t *testing.T) {
	j := setupTestJournal(t)

	logged, err := j.LogRun("/tmp/project", "test", true, []PathRecord{
		{Path: "test/unit", Kind: "dir", Outcome: "created"},
	})
	if err != nil {
		t.Fatalf("LogRun() error = %v", err)
	}

	entry, err := j.Get(logged.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if entry.Profile != "test" {
		t.Errorf("Profile = %q, want test", entry.Profile)
	}
	if !entry.DryRun {
		t.Error("DryRun = false, want true")
	}
	if len(entry.Paths) != 1 {
		t.Errorf("len(Paths) = %d, want 1", len(entry.Paths))
	}
}

func TestJournal_Get_NotFound(t *testing.T) {
	j := setupTestJournal(t)

	if _, err := j.Get("run-does-not-exist"); err == nil {
		t.Fatal("Get() error = nil, want error for missing entry")
	}
	if _, err := j.Get(""); err == nil {
		t.Fatal("Get() error = nil, want error for empty ID")
	}
}

func TestJournal_Cleanup(t *testing.T) {
	j := setupTestJournal(t)

	entry, err := j.LogRun("/tmp/project", "all", false, nil)
	if err != nil {
		t.Fatalf("LogRun() error = %v", err)
	}

	// Backdate the entry file so cleanup removes it
	old := time.Now().AddDate(0, 0, -60)
	path := filepath.Join(j.dir, entry.ID+".json")
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	if err := j.Cleanup(30); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}

	entries, err := j.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d after cleanup, want 0", len(entries))
	}
}

func TestGenerateID_Unique(t *testing.T) {
	now := time.Now()
	a := generateID(now)
	b := generateID(now)
	if a == b {
		t.Errorf("generateID produced duplicate IDs: %q", a)
	}
}
