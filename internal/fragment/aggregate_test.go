package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_GroupsPreservingOrder(t *testing.T) {
	fragments := []Fragment{
		{Category: Fixed, Title: "Fix crash"},
		{Category: Added, Title: "Add export"},
		{Category: Fixed, Title: "Fix leak"},
		{Category: Added, Title: "Add import"},
		{Category: Security, Title: "Patch lib"},
	}

	groups, err := Collect(fragments)
	require.NoError(t, err)

	assert.Equal(t, []string{"Add export", "Add import"}, groups[Added])
	assert.Equal(t, []string{"Fix crash", "Fix leak"}, groups[Fixed])
	assert.Equal(t, []string{"Patch lib"}, groups[Security])
	assert.Equal(t, len(fragments), groups.Count(), "every fragment lands in exactly one group")
}

func TestCollect_AllCategoriesPresent(t *testing.T) {
	groups, err := Collect([]Fragment{{Category: Removed, Title: "Drop v1 API"}})
	require.NoError(t, err)

	for _, c := range Categories() {
		entries, ok := groups[c]
		assert.True(t, ok, "category %s should be present", c)
		assert.NotNil(t, entries)
	}
	assert.Empty(t, groups[Added])
}

func TestCollect_UndeclaredCategory(t *testing.T) {
	groups, err := Collect([]Fragment{{Category: Category(42), Title: "Mystery"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"Mystery"}, groups[Uncategorized])
}

func TestCollect_Empty(t *testing.T) {
	tests := map[string]struct {
		fragments []Fragment
	}{
		"nil":   {fragments: nil},
		"empty": {fragments: []Fragment{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			groups, err := Collect(tt.fragments)
			assert.ErrorIs(t, err, ErrNoFragments)
			assert.Nil(t, groups)
		})
	}
}

func TestGroups_Count(t *testing.T) {
	assert.Zero(t, NewGroups().Count())

	g := NewGroups()
	g[Changed] = append(g[Changed], "Tweak")
	assert.Equal(t, 1, g.Count())
}
