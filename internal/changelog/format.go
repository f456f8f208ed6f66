package changelog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/yuin/goldmark"
	"golang.org/x/term"

	"github.com/floranpagliai/changelogkyper/internal/fragment"
)

// CategoryStyle defines the color and icon for a changelog category.
type CategoryStyle struct {
	Color *color.Color
	Icon  string
}

// categoryStyles maps category headings to their terminal styling.
var categoryStyles = map[string]CategoryStyle{
	fragment.Added.String():      {Color: color.New(color.FgGreen), Icon: "✓"},
	fragment.Changed.String():    {Color: color.New(color.FgBlue), Icon: "~"},
	fragment.Deprecated.String(): {Color: color.New(color.FgRed), Icon: "⚠"},
	fragment.Removed.String():    {Color: color.New(color.FgRed), Icon: "✗"},
	fragment.Fixed.String():      {Color: color.New(color.FgYellow), Icon: "⚡"},
	fragment.Security.String():   {Color: color.New(color.FgMagenta), Icon: "🔒"},
}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors and icons
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// DetectOptions returns plain formatting unless w is a color-capable terminal.
// NO_COLOR disables colors as usual.
func DetectOptions(w io.Writer) FormatOptions {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) || os.Getenv("NO_COLOR") != "" {
		return FormatOptions{Plain: true}
	}
	return FormatOptions{}
}

// FormatSection writes a section for display. Plain output is exactly the
// Markdown produced by RenderSection; otherwise headings are styled per
// category and long entries are wrapped to the terminal width.
func FormatSection(s *Section, w io.Writer, opts FormatOptions) error {
	text := RenderSection(s)
	if opts.Plain {
		_, err := io.WriteString(w, text)
		return err
	}

	width := resolveWidth(w, opts.MaxWidth)
	bold := color.New(color.Bold).SprintFunc()
	style, styled := CategoryStyle{}, false

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		var out string
		switch {
		case strings.HasPrefix(line, "## "):
			out = bold(line)
		case strings.HasPrefix(line, "### "):
			name := strings.TrimSpace(strings.TrimPrefix(line, "### "))
			style, styled = categoryStyles[name]
			if styled {
				out = style.Color.Sprintf("%s %s", style.Icon, name)
			} else {
				out = bold(line)
			}
		case strings.HasPrefix(line, "- ") && styled:
			out = "- " + style.Color.Sprint(wrapText(line[2:], width-2, "  "))
		default:
			out = line
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}

// FormatHTML writes a section converted to HTML, for release pages.
func FormatHTML(s *Section, w io.Writer) error {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(RenderSection(s)), &buf); err != nil {
		return fmt.Errorf("converting section %s to HTML: %w", s.Version, err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// resolveWidth determines the line width to use for w. Writers that are not
// terminals get 80 columns.
func resolveWidth(w io.Writer, maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return 80
}

// wrapText wraps text to at most maxWidth characters per line, using indent
// for continuation lines. Lines break at the last space that fits; a word
// longer than a line is split between characters.
func wrapText(text string, maxWidth int, indent string) string {
	remaining := []rune(text)
	if maxWidth <= 0 || len(remaining) <= maxWidth {
		return text
	}

	var lines []string
	for len(remaining) > maxWidth {
		breakPoint := maxWidth
		for i := maxWidth; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, string(remaining[:breakPoint]))
		remaining = remaining[breakPoint:]
		for len(remaining) > 0 && remaining[0] == ' ' {
			remaining = remaining[1:]
		}
	}

	if len(remaining) > 0 {
		lines = append(lines, string(remaining))
	}

	return strings.Join(lines, "\n"+indent)
}
