package cli

import (
	"testing"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floranpagliai/changelogkyper/internal/config"
	clierrors "github.com/floranpagliai/changelogkyper/internal/errors"
)

func TestInit(t *testing.T) {
	tests := map[string]struct {
		args    []string
		input   string
		wantURL string
	}{
		"url flag": {
			args:    []string{"--url", "https://github.com/acme/app/issues/"},
			wantURL: "https://github.com/acme/app/issues/",
		},
		"url flag without trailing slash": {
			args:    []string{"--url", "https://github.com/acme/app/issues"},
			wantURL: "https://github.com/acme/app/issues/",
		},
		"prompted": {
			input:   "https://gitlab.com/acme/app/-/issues\n",
			wantURL: "https://gitlab.com/acme/app/-/issues/",
		},
		"prompt asks again after an invalid url": {
			input:   "not a url\nhttps://tracker.example/browse?id=\n",
			wantURL: "https://tracker.example/browse?id=",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolateEnv(t)
			dir := t.TempDir()

			stdout, _, err := runCLI(t, dir, tt.input, append([]string{"init"}, tt.args...)...)
			require.NoError(t, err)

			assert.Contains(t, stdout, "✓ Initialized changelogkyper")
			assert.DirExists(t, config.ProjectConfigDir(dir))

			cfg, err := config.Load(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, cfg.RepoIssuesURL)
		})
	}
}

func TestInit_SuggestsOriginRemote(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:acme/widgets.git"},
	})
	require.NoError(t, err)

	// An empty answer accepts the suggestion.
	_, _, err = runCLI(t, dir, "\n", "init")
	require.NoError(t, err)

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/widgets/issues/", cfg.RepoIssuesURL)
}

func TestInit_RerunReplacesURL(t *testing.T) {
	dir := newProject(t)
	addChange(t, dir, "Added", "Keep me")

	stdout, _, err := runCLI(t, dir, "", "init", "--url", "https://gitlab.com/acme/app/-/issues/")
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Updated changelogkyper config in")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://gitlab.com/acme/app/-/issues/", cfg.RepoIssuesURL)
	assert.Contains(t, fragmentFiles(t, dir), "Keep-me.yml", "pending fragments survive re-init")
}

func TestInit_InvalidURLFlag(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	_, _, err := runCLI(t, dir, "", "init", "--url", "issues")

	requireCLIError(t, err, clierrors.Configuration)
	assert.False(t, config.IsInitialized(dir))
}

func TestInit_PromptAborted(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	_, _, err := runCLI(t, dir, "", "init")

	require.Error(t, err)
	assert.Equal(t, ExitAborted, ExitCodeOf(err))
	assert.False(t, config.IsInitialized(dir))
}
