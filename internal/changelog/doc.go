// Package changelog provides the CHANGELOG.md document model for changelogkyper.
//
// This package implements:
//   - Parsing CHANGELOG.md into an optional title/description and an ordered
//     list of version sections, newest first
//   - Rendering the document back to canonical Keep a Changelog Markdown
//   - Version lookup and duplicate detection
//   - Terminal and HTML formatting of a single section for display
//
// Historical sections are kept as opaque body text and re-emitted verbatim.
// Only sections built from freshly collected fragments carry structured
// entries, so hand-edited history is never rewritten.
package changelog
