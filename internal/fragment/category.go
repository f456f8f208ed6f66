package fragment

import (
	"fmt"
	"strings"
)

// Category is a Keep a Changelog change type.
// The declaration order is the fixed display order used when rendering.
type Category int

const (
	Added Category = iota
	Changed
	Deprecated
	Removed
	Fixed
	Security
	// Uncategorized collects entries whose type is not one of the above.
	// It is never rendered with a heading.
	Uncategorized
)

var categoryNames = [...]string{
	Added:         "Added",
	Changed:       "Changed",
	Deprecated:    "Deprecated",
	Removed:       "Removed",
	Fixed:         "Fixed",
	Security:      "Security",
	Uncategorized: "Uncategorized",
}

// String returns the display name used in headings and fragment records.
func (c Category) String() string {
	if !c.Valid() {
		return categoryNames[Uncategorized]
	}
	return categoryNames[c]
}

// Valid reports whether c is a declared category.
func (c Category) Valid() bool {
	return c >= Added && c <= Uncategorized
}

// Categories returns every declared category in display order,
// Uncategorized last.
func Categories() []Category {
	return []Category{Added, Changed, Deprecated, Removed, Fixed, Security, Uncategorized}
}

// Selectable returns the categories a user can pick when adding a change.
func Selectable() []Category {
	return []Category{Added, Changed, Deprecated, Removed, Fixed, Security}
}

// ParseCategory converts a record's type field into a Category.
// Matching is case-insensitive. Only Selectable categories are accepted:
// unknown names and Uncategorized are an error so that invalid records are
// rejected when they are read rather than silently bucketed.
func ParseCategory(s string) (Category, error) {
	name := strings.TrimSpace(s)
	for _, c := range Selectable() {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}
	return Uncategorized, fmt.Errorf("unknown change type %q (expected one of: %s)",
		s, strings.Join(SelectableNames(), ", "))
}

// SelectableNames returns the display names of Selectable categories.
func SelectableNames() []string {
	cats := Selectable()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return names
}
