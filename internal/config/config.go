// changelogkyper - Unreleased changelog fragments
// Source: https://github.com/floranpagliai/changelogkyper

// Package config provides layered configuration for changelogkyper using koanf.
// Configuration is loaded with priority: environment variables > project config
// (.changelogkyper/config.json) > user config (~/.config/changelogkyper/config.yml).
// The project config file doubles as the "initialized" marker: without it every
// command except init fails with ErrNotInitialized.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/natefinch/atomic"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "CHANGELOGKYPER_"

// ErrNotInitialized is returned when the project has no config file yet.
var ErrNotInitialized = errors.New("changelogkyper needs to be initialized")

// Config represents the changelogkyper project configuration
type Config struct {
	// RepoIssuesURL is the issue tracker base URL. Issue links are formed by
	// appending the issue id, e.g. https://github.com/acme/app/issues/ + 42.
	// Can be set via CHANGELOGKYPER_REPO_ISSUES_URL env var.
	RepoIssuesURL string `koanf:"repo_issues_url" validate:"required,url"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectDir is the directory holding .changelogkyper/ (default: current directory)
	ProjectDir string
	// UserConfigPath overrides the user config path; "-" disables the user layer
	UserConfigPath string
}

// Load loads configuration for the project rooted at projectDir.
func Load(projectDir string) (*Config, error) {
	return LoadWithOptions(LoadOptions{ProjectDir: projectDir})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	projectPath := ProjectConfigPath(opts.ProjectDir)
	if !fileExists(projectPath) {
		return nil, fmt.Errorf("%w: %s not found", ErrNotInitialized, projectPath)
	}

	k := koanf.New(".")

	if err := loadUserConfig(k, opts.UserConfigPath); err != nil {
		return nil, err
	}

	if err := k.Load(file.Provider(projectPath), JSONC()); err != nil {
		return nil, fmt.Errorf("loading project config %s: %w", projectPath, err)
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.RepoIssuesURL = strings.TrimSpace(cfg.RepoIssuesURL)

	if err := ValidateConfigValues(&cfg, projectPath); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadUserConfig loads the optional user-level YAML config.
func loadUserConfig(k *koanf.Koanf, override string) error {
	path := override
	if path == "-" {
		return nil
	}
	if path == "" {
		var err error
		if path, err = UserConfigPath(); err != nil {
			return nil
		}
	}
	if !fileExists(path) {
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for user config: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load user config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys
// Example: CHANGELOGKYPER_REPO_ISSUES_URL -> repo_issues_url
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// Save writes cfg as the project config, creating .changelogkyper/ if needed.
// Saving over an existing config replaces it.
func Save(projectDir string, cfg *Config) error {
	if err := ValidateConfigValues(cfg, ProjectConfigPath(projectDir)); err != nil {
		return err
	}

	dir := ProjectConfigDir(projectDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	k := koanf.New(".")
	if err := k.Set("repo_issues_url", cfg.RepoIssuesURL); err != nil {
		return fmt.Errorf("building config: %w", err)
	}
	data, err := k.Marshal(json.Parser())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	path := ProjectConfigPath(projectDir)
	if err := atomic.WriteFile(path, strings.NewReader(string(data))); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Chmod(path, 0o644); err != nil {
		return fmt.Errorf("setting config permissions: %w", err)
	}
	return nil
}

// IsInitialized reports whether the project config exists.
func IsInitialized(projectDir string) bool {
	return fileExists(ProjectConfigPath(projectDir))
}

// NormalizeIssuesURL trims the URL and ensures a trailing slash so that
// appending an issue id yields a valid link.
func NormalizeIssuesURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" || strings.HasSuffix(u, "/") || strings.HasSuffix(u, "=") {
		return u
	}
	return u + "/"
}

// fileExists returns true if path exists and is a regular file
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DefaultProjectDir returns "." when dir is empty.
func DefaultProjectDir(dir string) string {
	if dir == "" {
		return "."
	}
	return filepath.Clean(dir)
}
