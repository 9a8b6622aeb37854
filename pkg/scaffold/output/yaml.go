package output

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// yamlOutput represents the full YAML output structure.
type yamlOutput struct {
	Entries []EntryInfo `yaml:"entries"`
	Stats   yamlStats   `yaml:"stats"`
	Meta    yamlMeta    `yaml:"meta"`
}

// yamlStats represents run statistics in YAML output.
type yamlStats struct {
	TotalEntries int    `yaml:"total_entries"`
	Created      int    `yaml:"created"`
	Skipped      int    `yaml:"skipped"`
	Failed       int    `yaml:"failed"`
	Duration     string `yaml:"duration"`
}

// yamlMeta represents metadata in YAML output.
type yamlMeta struct {
	Root       string         `yaml:"root"`
	Profile    string         `yaml:"profile,omitempty"`
	DryRun     bool           `yaml:"dry_run"`
	Categories map[string]int `yaml:"categories"`
}

// YAMLFormatter formats output as YAML.
// It produces the same structure as JSONFormatter but in YAML format.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Result) error {
	out := yamlOutput{
		Entries: r.Entries,
		Stats: yamlStats{
			TotalEntries: r.Stats.TotalEntries,
			Created:      r.Stats.Created,
			Skipped:      r.Stats.Skipped,
			Failed:       r.Stats.Failed,
			Duration:     r.Stats.Duration.String(),
		},
		Meta: yamlMeta{
			Root:       r.Root,
			Profile:    r.Profile,
			DryRun:     r.DryRun,
			Categories: r.Categories,
		},
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(out); err != nil {
		return err
	}
	return encoder.Close()
}

func init() {
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

// Ensure YAMLFormatter implements Formatter.
var _ Formatter = (*YAMLFormatter)(nil)
