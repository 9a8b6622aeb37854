package output

import (
	"bytes"
)

// PathsFormatter formats output as one created path per line.
// It produces a simple list suitable for piping to other tools.
// Skipped and failed entries are not included.
type PathsFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PathsFormatter) Format(w *bytes.Buffer, r *Result) error {
	for _, p := range r.CreatedPaths() {
		w.WriteString(p)
		w.WriteByte('\n')
	}
	return nil
}

func init() {
	Register("paths", func() Formatter {
		return &PathsFormatter{}
	})
}

// Ensure PathsFormatter implements Formatter.
var _ Formatter = (*PathsFormatter)(nil)

// NullFormatter formats output as null-delimited created paths,
// suitable for use with xargs -0 or other tools that support
// null-delimited input. This safely handles paths containing spaces or
// other special characters.
type NullFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *NullFormatter) Format(w *bytes.Buffer, r *Result) error {
	for _, p := range r.CreatedPaths() {
		w.WriteString(p)
		w.WriteByte(0) // Null byte delimiter
	}
	return nil
}

func init() {
	Register("null", func() Formatter {
		return &NullFormatter{}
	})
}

// Ensure NullFormatter implements Formatter.
var _ Formatter = (*NullFormatter)(nil)
