package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromStrings(t *testing.T) {
	m, err := FromStrings([]string{"a/b.txt", "a/c.txt", "d/"})
	if err != nil {
		t.Fatalf("FromStrings() error = %v", err)
	}

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	if m.Files() != 2 {
		t.Errorf("Files() = %d, want 2", m.Files())
	}

	entries := m.Entries()
	if entries[2].Kind != KindDir {
		t.Errorf("entries[2].Kind = %v, want KindDir", entries[2].Kind)
	}
}

func TestFromStrings_InvalidPath(t *testing.T) {
	_, err := FromStrings([]string{"a/b.txt", "/etc/passwd"})
	if err == nil {
		t.Fatal("FromStrings() error = nil, want error for absolute path")
	}
}

func TestParse(t *testing.T) {
	doc := `
dirs:
  - test/unit
  - test/integration
files:
  - scripts/build.sh
  - docs/readme.md
`
	m, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if m.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", m.Len())
	}

	entries := m.Entries()
	// Dirs come first, then files, each in document order
	if entries[0].Path != "test/unit" || entries[0].Kind != KindDir {
		t.Errorf("entries[0] = %+v, want test/unit dir", entries[0])
	}
	if entries[2].Path != "scripts/build.sh" || entries[2].Kind != KindFile {
		t.Errorf("entries[2] = %+v, want scripts/build.sh file", entries[2])
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("files: [unclosed"))
	if err == nil {
		t.Fatal("Parse() error = nil, want error for invalid YAML")
	}
}

func TestParse_InvalidPath(t *testing.T) {
	_, err := Parse([]byte("files:\n  - ../escape.txt\n"))
	if err == nil {
		t.Fatal("Parse() error = nil, want error for escaping path")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	content := "files:\n  - a/b.txt\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest file: %v", err)
	}

	m, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadFile() error = nil, want error for missing file")
	}
}

func TestCategories(t *testing.T) {
	m, err := FromStrings([]string{
		"scripts/build.sh",
		"scripts/test.sh",
		"docs/readme.md",
		"test/",
	})
	if err != nil {
		t.Fatalf("FromStrings() error = %v", err)
	}

	counts := m.Categories()
	want := map[string]int{"scripts": 2, "docs": 1, "test": 1}
	if len(counts) != len(want) {
		t.Fatalf("Categories() = %v, want %v", counts, want)
	}
	for name, n := range want {
		if counts[name] != n {
			t.Errorf("Categories()[%q] = %d, want %d", name, counts[name], n)
		}
	}

	// The sum of per-category counts equals the manifest size
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != m.Len() {
		t.Errorf("sum of category counts = %d, want %d", total, m.Len())
	}

	names := m.CategoryNames()
	wantNames := []string{"docs", "scripts", "test"}
	for i, name := range wantNames {
		if names[i] != name {
			t.Errorf("CategoryNames()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestMerge(t *testing.T) {
	a, _ := FromStrings([]string{"a/x.txt"})
	b, _ := FromStrings([]string{"b/y.txt", "b/"})

	merged := a.Merge(b)
	if merged.Len() != 3 {
		t.Fatalf("merged Len() = %d, want 3", merged.Len())
	}
	if merged.Entries()[0].Path != "a/x.txt" {
		t.Errorf("merged entries do not preserve order")
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	m, _ := FromStrings([]string{"a/x.txt"})
	entries := m.Entries()
	entries[0].Path = "mutated"

	if m.Entries()[0].Path != "a/x.txt" {
		t.Error("mutating the returned slice affected the manifest")
	}
}

func TestDefault_Profiles(t *testing.T) {
	project, err := Default(ProfileProject)
	if err != nil {
		t.Fatalf("Default(project) error = %v", err)
	}
	if project.Len() == 0 {
		t.Fatal("project profile is empty")
	}
	if project.Len() != project.Files() {
		t.Errorf("project profile should contain only file entries")
	}

	test, err := Default(ProfileTest)
	if err != nil {
		t.Fatalf("Default(test) error = %v", err)
	}
	if test.Len() == test.Files() {
		t.Error("test profile should contain directory-only entries")
	}

	all, err := Default(ProfileAll)
	if err != nil {
		t.Fatalf("Default(all) error = %v", err)
	}
	if all.Len() != project.Len()+test.Len() {
		t.Errorf("all profile Len() = %d, want %d", all.Len(), project.Len()+test.Len())
	}
}

func TestDefault_UnknownProfile(t *testing.T) {
	_, err := Default("nope")
	if err == nil {
		t.Fatal("Default() error = nil, want error for unknown profile")
	}
}

func TestDefault_ProjectCategories(t *testing.T) {
	m, err := Default(ProfileProject)
	if err != nil {
		t.Fatalf("Default(project) error = %v", err)
	}

	counts := m.Categories()
	for _, category := range []string{"scripts", "ci", "tools", "simulation", "docs"} {
		if counts[category] == 0 {
			t.Errorf("project profile has no %q entries", category)
		}
	}
}
