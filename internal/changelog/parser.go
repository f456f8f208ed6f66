package changelog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ParseError reports changelog text that cannot be mapped to a document.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing changelog: line %d: %s", e.Line, e.Message)
	}
	return "parsing changelog: " + e.Message
}

// IsParseError returns true if err is or wraps a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// datePattern matches a YYYY-MM-DD date anywhere in a heading.
var datePattern = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)

// Parse reads changelog text into a Document.
//
// It recognizes an optional leading "# <title>" line, free description text
// up to the first "## " heading, then one section per "## " heading. Section
// bodies are kept verbatim apart from trailing blank lines. Headings inside
// fenced code blocks are treated as body text. An empty text yields an empty
// document.
func Parse(text string) (*Document, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	doc := &Document{}
	seen := make(map[string]int)

	var preamble []string
	var current *Section
	var body []string
	inFence := false

	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.Join(trimTrailingBlank(body), "\n")
		doc.Sections = append(doc.Sections, *current)
		current = nil
		body = nil
	}

	for i, line := range lines {
		lineNo := i + 1

		if isFence(line) {
			inFence = !inFence
		}

		if !inFence && isSectionHeading(line) {
			flush()

			title := strings.TrimSpace(strings.TrimPrefix(line, "##"))
			if title == "" {
				return nil, &ParseError{Line: lineNo, Message: "empty section heading"}
			}
			version, date := parseHeading(title)
			if version == "" {
				return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("no version in heading %q", title)}
			}
			if prev, ok := seen[version]; ok {
				return nil, &ParseError{
					Line:    lineNo,
					Message: fmt.Sprintf("duplicate version %q (first defined on line %d)", version, prev),
				}
			}
			seen[version] = lineNo

			current = &Section{Version: version, Title: title, Date: date}
			continue
		}

		if current == nil {
			preamble = append(preamble, line)
		} else {
			body = append(body, line)
		}
	}
	flush()

	doc.Title, doc.Description = parsePreamble(preamble)
	return doc, nil
}

// parsePreamble splits the text before the first section into the title
// and description.
func parsePreamble(lines []string) (title, description string) {
	lines = trimLeadingBlank(trimTrailingBlank(lines))
	if len(lines) > 0 && strings.HasPrefix(lines[0], "# ") {
		title = strings.TrimSpace(strings.TrimPrefix(lines[0], "# "))
		lines = trimLeadingBlank(lines[1:])
	}
	return title, strings.Join(lines, "\n")
}

// parseHeading extracts the version id and date from a section title.
//
// Examples:
//   - "[1.2.0] - 2024-03-05" -> "1.2.0", "2024-03-05"
//   - "[Unreleased]" -> "Unreleased", ""
//   - "1.0.0 (2023-01-01)" -> "1.0.0", "2023-01-01"
func parseHeading(title string) (version, date string) {
	rest := title
	if strings.HasPrefix(title, "[") {
		if end := strings.Index(title, "]"); end > 0 {
			version = strings.TrimSpace(title[1:end])
			rest = title[end+1:]
		}
	}
	if version == "" {
		fields := strings.Fields(title)
		if len(fields) > 0 {
			version = strings.Trim(fields[0], "[]")
			rest = strings.TrimSpace(strings.TrimPrefix(title, fields[0]))
		}
	}
	return version, datePattern.FindString(rest)
}

func isSectionHeading(line string) bool {
	return line == "##" || strings.HasPrefix(line, "## ")
}

func isFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && isBlank(lines[end-1]) {
		end--
	}
	return lines[:end]
}

func trimLeadingBlank(lines []string) []string {
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	return lines[start:]
}
