package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// PrettyFormatter formats run summaries with colors and styling using
// lipgloss. Per-entry progress lines are printed live by the caller via
// EntryLine; this formatter renders the header, summary, and category
// breakdown only.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")
	w.WriteString(f.formatCategories(r))

	if failures := r.Failures(); len(failures) > 0 {
		w.WriteString("\n")
		w.WriteString(f.formatFailures(failures))
	}

	w.WriteString(f.formatFooter(r))
	return nil
}

// EntryLine renders a single per-entry progress line in the pretty style.
func EntryLine(e EntryInfo) string {
	label := e.Path
	if e.Kind == "dir" {
		label += "/"
	}

	switch e.Outcome {
	case "created":
		return fmt.Sprintf("%s %s", SuccessStyle.Render("✓ created"), PathStyle.Render(label))
	case "skipped":
		return fmt.Sprintf("%s %s", MutedStyle.Render("- skipped"), MutedStyle.Render(label))
	case "failed":
		return fmt.Sprintf("%s %s: %s", ErrorStyle.Render("✗ failed "), PathStyle.Render(label), ErrorStyle.Render(e.Error))
	default:
		return label
	}
}

// PlainEntryLine renders a single per-entry progress line without styling.
func PlainEntryLine(e EntryInfo) string {
	label := e.Path
	if e.Kind == "dir" {
		label += "/"
	}

	switch e.Outcome {
	case "failed":
		return fmt.Sprintf("failed  %s: %s", label, e.Error)
	default:
		return fmt.Sprintf("%s %s", e.Outcome, label)
	}
}

// formatHeader builds the header box with run metadata.
func (f *PrettyFormatter) formatHeader(r *Result) string {
	var lines []string

	rootLabel := LabelStyle.Render("Root:")
	rootValue := ValueStyle.Render(r.Root)
	lines = append(lines, fmt.Sprintf("%s %s", rootLabel, rootValue))

	var infoParts []string
	if r.Profile != "" {
		infoParts = append(infoParts, fmt.Sprintf("%s %s",
			LabelStyle.Render("Profile:"), ValueStyle.Render(r.Profile)))
	}
	infoParts = append(infoParts, fmt.Sprintf("%s %s",
		LabelStyle.Render("Entries:"),
		ValueStyle.Render(fmt.Sprintf("%s in %s",
			humanize.Comma(int64(r.Stats.TotalEntries)), formatDuration(r.Stats.Duration)))))
	lines = append(lines, strings.Join(infoParts, "  "))

	if r.DryRun {
		lines = append(lines, WarningStyle.Bold(true).Render("Dry run: no files were created"))
	}

	return HeaderBox.Render(strings.Join(lines, "\n"))
}

// formatCategories builds the per-category breakdown table.
func (f *PrettyFormatter) formatCategories(r *Result) string {
	if len(r.Categories) == 0 {
		return MutedStyle.Render("  Empty manifest\n")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s  %s\n",
		TableHeaderStyle.Render(padRight("CATEGORY", 16)),
		TableHeaderStyle.Render("ENTRIES")))

	for _, name := range r.CategoryNames() {
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			PathStyle.Render(padRight(name+"/", 16)),
			CountStyle.Render(humanize.Comma(int64(r.Categories[name])))))
	}

	return sb.String()
}

// formatFailures builds the failure block.
func (f *PrettyFormatter) formatFailures(failures []EntryInfo) string {
	var sb strings.Builder

	sb.WriteString(ErrorStyle.Bold(true).Render("Failures:"))
	sb.WriteString("\n")
	for _, e := range failures {
		sb.WriteString(ErrorStyle.Render(fmt.Sprintf("  %s: %s", e.Path, e.Error)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatFooter builds the footer box with summary counters and hints.
func (f *PrettyFormatter) formatFooter(r *Result) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%s %s",
		LabelStyle.Render("Created:"), CountStyle.Render(humanize.Comma(int64(r.Stats.Created)))))
	parts = append(parts, fmt.Sprintf("%s %s",
		LabelStyle.Render("Skipped:"), ValueStyle.Render(humanize.Comma(int64(r.Stats.Skipped)))))
	if r.Stats.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%s %s",
			LabelStyle.Render("Failed:"), ErrorStyle.Render(humanize.Comma(int64(r.Stats.Failed)))))
	}

	lines := []string{strings.Join(parts, "  ")}

	// Follow-up hints, advisory only.
	if !r.DryRun && r.Stats.Created > 0 && r.Stats.Failed == 0 {
		lines = append(lines,
			MutedStyle.Render("Next: make scripts executable and stage the new paths, e.g."),
			MutedStyle.Render("  find scripts -name '*.sh' -exec chmod +x {} \\;"),
			MutedStyle.Render("  git add ."))
	}

	return FooterBox.Render(strings.Join(lines, "\n"))
}

// padRight pads a string with spaces on the right to the desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// formatDuration formats a duration in a human-friendly way.
func formatDuration(d time.Duration) string {
	sec := d.Seconds()
	if sec < 1 {
		return fmt.Sprintf("%.0fms", sec*1000)
	}
	if sec < 60 {
		return fmt.Sprintf("%.1fs", sec)
	}
	minutes := int(sec) / 60
	seconds := int(sec) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
