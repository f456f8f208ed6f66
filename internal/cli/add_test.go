package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floranpagliai/changelogkyper/internal/config"
	clierrors "github.com/floranpagliai/changelogkyper/internal/errors"
	"github.com/floranpagliai/changelogkyper/internal/fragment"
)

func listFragments(t *testing.T, dir string) []fragment.Fragment {
	t.Helper()
	fragments, err := fragment.NewDirStore(config.ProjectConfigDir(dir)).List()
	require.NoError(t, err)
	return fragments
}

func TestAdd(t *testing.T) {
	tests := map[string]struct {
		args      []string
		input     string
		wantFile  string
		wantCat   fragment.Category
		wantTitle string
	}{
		"interactive": {
			input:     "5\n42\nFix crash\n",
			wantFile:  "Fix-crash.yml",
			wantCat:   fragment.Fixed,
			wantTitle: "[#42](" + issuesURL + "42) Fix crash",
		},
		"interactive without issue": {
			input:     "added\n\nAdd export\n",
			wantFile:  "Add-export.yml",
			wantCat:   fragment.Added,
			wantTitle: "Add export",
		},
		"all flags": {
			args:      []string{"--type", "security", "--issue", "7", "--title", "Patch lib"},
			wantFile:  "Patch-lib.yml",
			wantCat:   fragment.Security,
			wantTitle: "[#7](" + issuesURL + "7) Patch lib",
		},
		"some flags": {
			args:      []string{"--type", "Removed"},
			input:     "0\nDrop legacy flag\n",
			wantFile:  "Drop-legacy-flag.yml",
			wantCat:   fragment.Removed,
			wantTitle: "Drop legacy flag",
		},
		"reserved characters": {
			args:      []string{"--type", "Fixed", "--issue", "0", "--title", "Fix / crash: now!"},
			wantFile:  "Fix-crash-now!.yml",
			wantCat:   fragment.Fixed,
			wantTitle: "Fix / crash: now!",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := newProject(t)

			stdout, _, err := runCLI(t, dir, tt.input, append([]string{"add"}, tt.args...)...)
			require.NoError(t, err)

			path := filepath.Join(config.ProjectConfigDir(dir), tt.wantFile)
			assert.Contains(t, stdout, "✓ Added "+tt.wantCat.String()+" change: "+path)
			assert.FileExists(t, path)

			fragments := listFragments(t, dir)
			require.Len(t, fragments, 1)
			assert.Equal(t, tt.wantCat, fragments[0].Category)
			assert.Equal(t, tt.wantTitle, fragments[0].Title)
		})
	}
}

func TestAdd_Errors(t *testing.T) {
	tests := map[string]struct {
		args         []string
		wantCategory clierrors.ErrorCategory
		wantMessage  string
	}{
		"unknown type": {
			args:         []string{"--type", "Bugfix", "--issue", "0", "--title", "x"},
			wantCategory: clierrors.Argument,
			wantMessage:  `unknown change type "Bugfix"`,
		},
		"uncategorized is not offered": {
			args:         []string{"--type", "Uncategorized", "--issue", "0", "--title", "x"},
			wantCategory: clierrors.Argument,
			wantMessage:  `unknown change type "Uncategorized"`,
		},
		"negative issue": {
			args:         []string{"--type", "Fixed", "--issue", "-4", "--title", "x"},
			wantCategory: clierrors.Argument,
			wantMessage:  "issue id must not be negative, got -4",
		},
		"blank title": {
			args:         []string{"--type", "Fixed", "--issue", "0", "--title", "  "},
			wantCategory: clierrors.Argument,
			wantMessage:  "change title is required",
		},
		"title with heading": {
			args:         []string{"--type", "Fixed", "--issue", "0", "--title", "Fix crash\n## [0.1.0] - 2020-01-01"},
			wantCategory: clierrors.Argument,
			wantMessage:  "change title must be a single line",
		},
		"title with carriage return": {
			args:         []string{"--type", "Fixed", "--issue", "0", "--title", "Fix crash\r"},
			wantCategory: clierrors.Argument,
			wantMessage:  "change title must be a single line",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := newProject(t)

			_, _, err := runCLI(t, dir, "", append([]string{"add"}, tt.args...)...)

			cliErr := requireCLIError(t, err, tt.wantCategory)
			assert.Equal(t, tt.wantMessage, cliErr.Message)
			assert.Empty(t, listFragments(t, dir))
		})
	}
}

func TestAdd_NotInitialized(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	_, _, err := runCLI(t, dir, "", "add", "--type", "Fixed", "--issue", "0", "--title", "x")

	requireCLIError(t, err, clierrors.Prerequisite)
	assert.ErrorIs(t, err, config.ErrNotInitialized)
	assert.NoDirExists(t, config.ProjectConfigDir(dir))
}

func TestAdd_SameTitleReplaces(t *testing.T) {
	dir := newProject(t)

	addChange(t, dir, "Added", "Add export")
	addChange(t, dir, "Changed", "Add export")

	fragments := listFragments(t, dir)
	require.Len(t, fragments, 1)
	assert.Equal(t, fragment.Changed, fragments[0].Category)
}
