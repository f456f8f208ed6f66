package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config layer at an empty temp dir and clears
// env overrides so tests do not see the developer's own settings.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvPrefix+"REPO_ISSUES_URL", "")
	os.Unsetenv(EnvPrefix + "REPO_ISSUES_URL")
}

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(ProjectConfigDir(dir), 0o755))
	require.NoError(t, os.WriteFile(ProjectConfigPath(dir), []byte(content), 0o644))
}

func TestLoad_NotInitialized(t *testing.T) {
	isolate(t)

	_, err := Load(t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.False(t, IsInitialized(t.TempDir()))
}

func TestLoad_ProjectConfig(t *testing.T) {
	tests := map[string]struct {
		content string
		want    string
		wantErr string
	}{
		"plain json": {
			content: `{"repo_issues_url":"https://github.com/acme/app/issues/"}`,
			want:    "https://github.com/acme/app/issues/",
		},
		"json with comments and trailing comma": {
			content: "{\n  // where issues live\n  \"repo_issues_url\": \"https://gitlab.com/acme/app/-/issues/\",\n}\n",
			want:    "https://gitlab.com/acme/app/-/issues/",
		},
		"missing url": {
			content: `{}`,
			wantErr: "repo_issues_url",
		},
		"not a url": {
			content: `{"repo_issues_url":"issues"}`,
			wantErr: "must be an absolute URL",
		},
		"broken json": {
			content: `{"repo_issues_url":`,
			wantErr: "invalid JSONC",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			dir := t.TempDir()
			writeProjectConfig(t, dir, tt.content)

			cfg, err := Load(dir)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.RepoIssuesURL)
		})
	}
}

func TestLoad_Layering(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeProjectConfig(t, dir, `{}`)

	userPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(userPath, []byte("repo_issues_url: https://user.example/issues/\n"), 0o644))

	cfg, err := LoadWithOptions(LoadOptions{ProjectDir: dir, UserConfigPath: userPath})
	require.NoError(t, err)
	assert.Equal(t, "https://user.example/issues/", cfg.RepoIssuesURL, "user layer fills in missing values")

	writeProjectConfig(t, dir, `{"repo_issues_url":"https://project.example/issues/"}`)
	cfg, err = LoadWithOptions(LoadOptions{ProjectDir: dir, UserConfigPath: userPath})
	require.NoError(t, err)
	assert.Equal(t, "https://project.example/issues/", cfg.RepoIssuesURL, "project overrides user")

	t.Setenv("CHANGELOGKYPER_REPO_ISSUES_URL", "https://env.example/issues/")
	cfg, err = LoadWithOptions(LoadOptions{ProjectDir: dir, UserConfigPath: userPath})
	require.NoError(t, err)
	assert.Equal(t, "https://env.example/issues/", cfg.RepoIssuesURL, "env overrides project")
}

func TestLoad_InvalidUserYAML(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeProjectConfig(t, dir, `{"repo_issues_url":"https://x.example/issues/"}`)

	userPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(userPath, []byte("repo_issues_url: [\n"), 0o644))

	_, err := LoadWithOptions(LoadOptions{ProjectDir: dir, UserConfigPath: userPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user config")

	cfg, err := LoadWithOptions(LoadOptions{ProjectDir: dir, UserConfigPath: "-"})
	require.NoError(t, err)
	assert.Equal(t, "https://x.example/issues/", cfg.RepoIssuesURL)
}

func TestSave(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	require.NoError(t, Save(dir, &Config{RepoIssuesURL: "https://github.com/acme/app/issues/"}))
	assert.True(t, IsInitialized(dir))

	data, err := os.ReadFile(ProjectConfigPath(dir))
	require.NoError(t, err)
	assert.JSONEq(t, `{"repo_issues_url":"https://github.com/acme/app/issues/"}`, string(data))

	require.NoError(t, Save(dir, &Config{RepoIssuesURL: "https://github.com/acme/other/issues/"}), "init may be re-run")
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/other/issues/", cfg.RepoIssuesURL)
}

func TestSave_Invalid(t *testing.T) {
	dir := t.TempDir()

	err := Save(dir, &Config{})
	require.Error(t, err)
	assert.False(t, IsInitialized(dir))
}

func TestNormalizeIssuesURL(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"adds slash":      {input: "https://github.com/acme/app/issues", want: "https://github.com/acme/app/issues/"},
		"keeps slash":     {input: "https://github.com/acme/app/issues/", want: "https://github.com/acme/app/issues/"},
		"query parameter": {input: "https://tracker.example/show?id=", want: "https://tracker.example/show?id="},
		"trims":           {input: "  https://x.example/i  ", want: "https://x.example/i/"},
		"empty":           {input: "", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIssuesURL(tt.input))
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "repo_issues_url", toSnakeCase("RepoIssuesURL"))
	assert.Equal(t, "max_retries", toSnakeCase("MaxRetries"))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join(".changelogkyper", "config.json"), ProjectConfigPath(""))
	assert.Equal(t, filepath.Join("proj", ".changelogkyper"), ProjectConfigDir("proj"))

	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := UserConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "changelogkyper", "config.yml"), p)
}

func TestValidateIssuesURL(t *testing.T) {
	tests := map[string]struct {
		input   string
		wantErr string
	}{
		"https":    {input: "https://github.com/acme/app/issues/"},
		"query":    {input: "https://tracker.example/show?id="},
		"empty":    {input: "  ", wantErr: "field 'repo_issues_url': is required"},
		"relative": {input: "acme/issues", wantErr: "must be an absolute URL"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := ValidateIssuesURL(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
