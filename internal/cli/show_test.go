package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floranpagliai/changelogkyper/internal/config"
	clierrors "github.com/floranpagliai/changelogkyper/internal/errors"
)

func releasedProject(t *testing.T) string {
	t.Helper()
	dir := newProject(t)
	addChange(t, dir, "Added", "Add export")
	addChange(t, dir, "Fixed", "Fix crash")
	_, _, err := runCLI(t, dir, "", "release", "1.0.0")
	require.NoError(t, err)
	return dir
}

func TestShow_Version(t *testing.T) {
	dir := releasedProject(t)

	stdout, _, err := runCLI(t, dir, "", "show", "1.0.0", "--plain")
	require.NoError(t, err)

	assert.Equal(t, "## [1.0.0] - 2024-03-05\n"+
		"### Added\n"+
		"- Add export\n"+
		"\n"+
		"### Fixed\n"+
		"- Fix crash\n", stdout)
}

func TestShow_HandWrittenSectionVerbatim(t *testing.T) {
	dir := newProject(t)
	text := "# Changelog\n\n## 0.2.0 (2023-06-01)\nSome *prose*.\n\n```\n## not a heading\n```\n\n## [0.1.0]\n- first\n"
	require.NoError(t, os.WriteFile(changelogPath(dir), []byte(text), 0o644))

	stdout, _, err := runCLI(t, dir, "", "show", "0.2.0", "--plain")
	require.NoError(t, err)

	assert.Equal(t, "## 0.2.0 (2023-06-01)\nSome *prose*.\n\n```\n## not a heading\n```\n", stdout)
}

func TestShow_Unreleased(t *testing.T) {
	dir := newProject(t)
	addChange(t, dir, "Security", "Patch lib")

	for _, arg := range []string{"unreleased", "Unreleased", "UNRELEASED"} {
		t.Run(arg, func(t *testing.T) {
			stdout, _, err := runCLI(t, dir, "", "show", arg, "--plain")
			require.NoError(t, err)

			assert.Equal(t, "## [Unreleased]\n### Security\n- Patch lib\n", stdout)
			assert.NotContains(t, stdout, "### Added")
		})
	}
}

func TestShow_UnreleasedRejectsUncategorized(t *testing.T) {
	dir := newProject(t)
	addChange(t, dir, "Security", "Patch lib")
	require.NoError(t, os.WriteFile(filepath.Join(config.ProjectConfigDir(dir), "loose.yml"), []byte("title: Loose entry\ntype: Uncategorized\n"), 0o644))

	stdout, _, err := runCLI(t, dir, "", "show", "unreleased", "--plain")

	cliErr := requireCLIError(t, err, clierrors.Data)
	assert.Contains(t, cliErr.Error(), "loose.yml")
	assert.NotContains(t, stdout, "- Loose entry")
}

func TestShow_UnreleasedEmpty(t *testing.T) {
	dir := newProject(t)

	stdout, _, err := runCLI(t, dir, "", "show", "unreleased")
	require.NoError(t, err)

	assert.Equal(t, "No unreleased changes.\n", stdout)
}

func TestShow_NotFound(t *testing.T) {
	dir := releasedProject(t)

	_, _, err := runCLI(t, dir, "", "show", "9.9.9")

	cliErr := requireCLIError(t, err, clierrors.Argument)
	assert.Equal(t, "version 9.9.9 not found in the changelog", cliErr.Message)
	assert.Contains(t, cliErr.Remediation, "Available versions: 1.0.0")
}

func TestShow_NotFoundWithoutChangelog(t *testing.T) {
	dir := newProject(t)

	_, _, err := runCLI(t, dir, "", "show", "1.0.0")

	requireCLIError(t, err, clierrors.Argument)
}

func TestShow_HTML(t *testing.T) {
	dir := releasedProject(t)

	stdout, _, err := runCLI(t, dir, "", "show", "1.0.0", "--html")
	require.NoError(t, err)

	assert.Contains(t, stdout, "<h3>Added</h3>")
	assert.Contains(t, stdout, "<li>Add export</li>")
	assert.Contains(t, stdout, "<h3>Fixed</h3>")
}

func TestShow_NotInitialized(t *testing.T) {
	isolateEnv(t)

	_, _, err := runCLI(t, t.TempDir(), "", "show", "unreleased")

	requireCLIError(t, err, clierrors.Prerequisite)
}
