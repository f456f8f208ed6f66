package changelog

import (
	"fmt"
	"time"

	"github.com/floranpagliai/changelogkyper/internal/fragment"
)

// DateLayout is the release date format used in section headings.
const DateLayout = "2006-01-02"

// UnreleasedVersion is the version id shown for pending, unreleased changes.
const UnreleasedVersion = "Unreleased"

// Document is a parsed changelog. Sections are ordered newest first and
// no two sections share a version id.
type Document struct {
	// Title is the text of the leading "# " line, if any.
	Title string
	// Description is the free text between the title and the first section,
	// carried through unmodified.
	Description string
	Sections    []Section
}

// Section is one "## " block of the changelog.
type Section struct {
	Version string
	// Title is the heading text without the "## " marker,
	// e.g. "[1.2.0] - 2024-03-05".
	Title string
	Date  string
	// Body is the verbatim text under the heading for parsed sections.
	Body string
	// Entries is set only on sections built from fragments.
	Entries fragment.Groups
}

// NewSection builds a structured section for a release made at t (UTC).
func NewSection(version string, t time.Time, entries fragment.Groups) Section {
	date := t.UTC().Format(DateLayout)
	return Section{
		Version: version,
		Title:   fmt.Sprintf("[%s] - %s", version, date),
		Date:    date,
		Entries: entries,
	}
}

// NewUnreleasedSection builds the preview section for pending fragments.
func NewUnreleasedSection(entries fragment.Groups) Section {
	return Section{
		Version: UnreleasedVersion,
		Title:   "[" + UnreleasedVersion + "]",
		Entries: entries,
	}
}

// IsStructured returns true if the section was built from fragments rather
// than parsed from existing text.
func (s Section) IsStructured() bool {
	return s.Entries != nil
}
