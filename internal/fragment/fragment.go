package fragment

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxSlugLength is the maximum length, in bytes, of a fragment slug. It keeps
// the stored file name under the common 255-byte limit with room for the
// extension and a reserved-name suffix.
const MaxSlugLength = 200

// Fragment is one pending change. Fragments are immutable once written;
// a release consumes and deletes them.
type Fragment struct {
	Category Category
	// Title is the rendered entry text. When an issue id was supplied it
	// is prefixed with a Markdown link: "[#42](<base_url>42) text".
	Title string
	// Slug is the storage key derived from the raw title.
	Slug string
	// File is the exact name the fragment was read from. It is empty for
	// fragments that have not been stored yet.
	File string
}

// New builds a fragment from prompt answers. An issueID of zero means the
// change is not tied to an issue.
func New(category Category, rawTitle string, issueID int, issuesURL string) Fragment {
	title := strings.TrimSpace(rawTitle)
	return Fragment{
		Category: category,
		Title:    FormatTitle(title, issueID, issuesURL),
		Slug:     Slugify(title),
	}
}

// CheckTitle reports whether title can be written as a single changelog
// entry. A line break would let the entry start a new heading.
func CheckTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if strings.ContainsAny(title, "\r\n") {
		return ErrMultilineTitle
	}
	return nil
}

// FormatTitle prefixes text with an issue link when issueID is non-zero.
func FormatTitle(text string, issueID int, issuesURL string) string {
	if issueID == 0 {
		return text
	}
	return fmt.Sprintf("[#%d](%s%d) %s", issueID, issuesURL, issueID, text)
}

// illegalNameChars matches characters that are not allowed in file names on
// at least one supported platform.
var illegalNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f\x7f]`)

// whitespaceRun matches consecutive whitespace.
var whitespaceRun = regexp.MustCompile(`\s+`)

// reservedNames are device names Windows refuses as file base names.
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// Slugify converts a raw change title into a filesystem-safe storage key.
// It drops characters illegal in file names, collapses whitespace to single
// hyphens, trims leading dots and hyphens (no hidden files), and truncates
// to MaxSlugLength bytes on a character boundary. Case is preserved.
//
// Examples:
//   - "Fix / crash: now!" -> "Fix-crash-now!"
//   - "  Add   export " -> "Add-export"
//   - "???" -> "change-<hash>"
func Slugify(title string) string {
	slug := illegalNameChars.ReplaceAllString(title, " ")
	slug = strings.TrimSpace(slug)
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = strings.TrimLeft(slug, ".-")
	slug = truncateBytes(slug, MaxSlugLength)
	slug = strings.TrimRight(slug, ".- ")

	if slug == "" {
		sum := sha1.Sum([]byte(title))
		return "change-" + hex.EncodeToString(sum[:4])
	}
	if reservedNames[strings.ToUpper(slug)] {
		slug += "-change"
	}
	return slug
}

func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
