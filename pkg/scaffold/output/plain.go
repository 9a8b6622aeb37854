package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// PlainFormatter formats the run summary as simple tab-separated text.
// It produces plain output suitable for scripting and piping.
// No colors or styling are applied.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	if _, err := tw.Write([]byte("CATEGORY\tENTRIES\n")); err != nil {
		return err
	}
	for _, name := range r.CategoryNames() {
		if _, err := fmt.Fprintf(tw, "%s/\t%d\n", name, r.Categories[name]); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\ncreated %d\nskipped %d\n", r.Stats.Created, r.Stats.Skipped)
	if r.Stats.Failed > 0 {
		fmt.Fprintf(w, "failed %d\n", r.Stats.Failed)
	}
	if r.DryRun {
		w.WriteString("dry-run\n")
	}

	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
