package config

import (
	"os"
	"path/filepath"
)

// DirName is the project directory holding the config and pending fragments.
const DirName = ".changelogkyper"

// FileName is the project config file name inside DirName.
const FileName = "config.json"

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/changelogkyper/config.yml
// - macOS: ~/Library/Application Support/changelogkyper/config.yml
// - Windows: %APPDATA%\changelogkyper\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "changelogkyper", "config.yml"), nil
}

// ProjectConfigDir returns the .changelogkyper directory of a project.
func ProjectConfigDir(projectDir string) string {
	return filepath.Join(DefaultProjectDir(projectDir), DirName)
}

// ProjectConfigPath returns the path to the project-level config file.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(ProjectConfigDir(projectDir), FileName)
}
