package output

import (
	"bytes"
	"encoding/json"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Entries []EntryInfo `json:"entries"`
	Stats   jsonStats   `json:"stats"`
	Meta    jsonMeta    `json:"meta"`
}

// jsonStats represents run statistics in JSON output.
type jsonStats struct {
	TotalEntries int    `json:"total_entries"`
	Created      int    `json:"created"`
	Skipped      int    `json:"skipped"`
	Failed       int    `json:"failed"`
	Duration     string `json:"duration"`
}

// jsonMeta represents metadata in JSON output.
type jsonMeta struct {
	Root       string         `json:"root"`
	Profile    string         `json:"profile,omitempty"`
	DryRun     bool           `json:"dry_run"`
	Categories map[string]int `json:"categories"`
}

// JSONFormatter formats output as a single indented JSON object.
// It produces a complete JSON document with entries, stats, and meta
// sections.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	out := jsonOutput{
		Entries: r.Entries,
		Stats: jsonStats{
			TotalEntries: r.Stats.TotalEntries,
			Created:      r.Stats.Created,
			Skipped:      r.Stats.Skipped,
			Failed:       r.Stats.Failed,
			Duration:     r.Stats.Duration.String(),
		},
		Meta: jsonMeta{
			Root:       r.Root,
			Profile:    r.Profile,
			DryRun:     r.DryRun,
			Categories: r.Categories,
		},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)

// JSONLFormatter formats output as newline-delimited JSON (one entry
// per line). This format is suitable for streaming processing with
// tools like jq.
type JSONLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONLFormatter) Format(w *bytes.Buffer, r *Result) error {
	for _, e := range r.Entries {
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	return nil
}

func init() {
	Register("jsonl", func() Formatter {
		return &JSONLFormatter{}
	})
}

// Ensure JSONLFormatter implements Formatter.
var _ Formatter = (*JSONLFormatter)(nil)
