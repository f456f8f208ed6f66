package fragment

// Groups maps every declared category to its entry titles, in the order the
// fragments were collected. Every category key is present, even when empty.
type Groups map[Category][]string

// Collect groups fragments by category, preserving input order within each
// group. Fragments carrying an undeclared category land in Uncategorized.
// An empty input returns ErrNoFragments: a release must never produce an
// empty version section.
func Collect(fragments []Fragment) (Groups, error) {
	if len(fragments) == 0 {
		return nil, ErrNoFragments
	}

	groups := NewGroups()
	for _, f := range fragments {
		cat := f.Category
		if !cat.Valid() {
			cat = Uncategorized
		}
		groups[cat] = append(groups[cat], f.Title)
	}
	return groups, nil
}

// NewGroups returns a Groups value with an empty entry list per category.
func NewGroups() Groups {
	groups := make(Groups, len(Categories()))
	for _, c := range Categories() {
		groups[c] = []string{}
	}
	return groups
}

// Count returns the total number of entries across all categories.
func (g Groups) Count() int {
	n := 0
	for _, entries := range g {
		n += len(entries)
	}
	return n
}
