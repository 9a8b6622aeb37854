package manifest

import (
	"embed"
	"fmt"
)

// Built-in manifest profiles. The path lists themselves are inert data;
// they describe the folder layout of the automotive project this tool
// was written to bootstrap.
const (
	// ProfileProject is the scripts/ci/tools/simulation/docs layout.
	ProfileProject = "project"
	// ProfileTest is the test tree layout, including directory-only entries.
	ProfileTest = "test"
	// ProfileAll combines project and test.
	ProfileAll = "all"
)

//go:embed defaults/project.yaml defaults/test.yaml
var defaultsFS embed.FS

// Profiles returns the names of the built-in manifest profiles.
func Profiles() []string {
	return []string{ProfileProject, ProfileTest, ProfileAll}
}

// Default returns the built-in manifest for the given profile.
func Default(profile string) (*Manifest, error) {
	switch profile {
	case ProfileProject:
		return loadEmbedded("defaults/project.yaml")
	case ProfileTest:
		return loadEmbedded("defaults/test.yaml")
	case ProfileAll:
		project, err := loadEmbedded("defaults/project.yaml")
		if err != nil {
			return nil, err
		}
		test, err := loadEmbedded("defaults/test.yaml")
		if err != nil {
			return nil, err
		}
		return project.Merge(test), nil
	default:
		return nil, fmt.Errorf("unknown manifest profile %q: available profiles are %v", profile, Profiles())
	}
}

// loadEmbedded parses one of the embedded manifest documents.
func loadEmbedded(name string) (*Manifest, error) {
	data, err := defaultsFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded manifest %s: %w", name, err)
	}
	return Parse(data)
}
