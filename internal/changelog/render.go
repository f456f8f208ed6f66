package changelog

import (
	"fmt"
	"io"
	"strings"

	"github.com/floranpagliai/changelogkyper/internal/fragment"
)

// Render writes the document in canonical Markdown form. Parsed sections are
// emitted verbatim; structured sections list their entries under one
// "### <Category>" heading per non-empty category, in display order.
// Trailing blank lines are trimmed so the output ends with a single newline.
//
// The function is idempotent - given the same input, it produces identical output.
func Render(d *Document, w io.Writer) error {
	_, err := io.WriteString(w, RenderString(d))
	return err
}

// RenderString is a convenience function that renders to a string.
func RenderString(d *Document) string {
	var b strings.Builder

	if d.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", d.Title)
	}
	if d.Description != "" {
		b.WriteString(d.Description)
		b.WriteString("\n\n")
	}
	for i := range d.Sections {
		writeSection(&b, &d.Sections[i])
	}

	return finish(b.String())
}

// RenderSection renders a single section, heading included.
func RenderSection(s *Section) string {
	var b strings.Builder
	writeSection(&b, s)
	return finish(b.String())
}

// writeSection writes the heading and body of one section.
func writeSection(b *strings.Builder, s *Section) {
	fmt.Fprintf(b, "## %s\n", s.Title)

	if !s.IsStructured() {
		if s.Body != "" {
			b.WriteString(s.Body)
			b.WriteString("\n\n")
		} else {
			b.WriteString("\n")
		}
		return
	}

	writeEntries(b, s.Entries)
}

// writeEntries writes all non-empty categories in display order.
// Uncategorized entries have no heading; they come first so they are not
// read as part of the preceding category.
func writeEntries(b *strings.Builder, entries fragment.Groups) {
	if loose := entries[fragment.Uncategorized]; len(loose) > 0 {
		writeList(b, loose)
		b.WriteString("\n")
	}

	for _, cat := range fragment.Categories() {
		if cat == fragment.Uncategorized || len(entries[cat]) == 0 {
			continue
		}
		fmt.Fprintf(b, "### %s\n", cat)
		writeList(b, entries[cat])
		b.WriteString("\n")
	}
}

func writeList(b *strings.Builder, entries []string) {
	for _, entry := range entries {
		fmt.Fprintf(b, "- %s\n", entry)
	}
}

func finish(out string) string {
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}
