package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the changelogkyper CLI.
// These templates ensure consistent, actionable error messages.

// NotInitialized creates an error for a project without .changelogkyper/config.json.
func NotInitialized(projectDir string, err error) *CLIError {
	cliErr := NewPrerequisiteError(
		fmt.Sprintf("changelogkyper is not initialized in %s", projectDir),
		"Run 'changelogkyper init' to store the issue tracker URL",
		"Or pass --dir to point at an initialized project",
	)
	cliErr.Err = err
	return cliErr
}

// InvalidConfig creates an error for a config file that does not load or validate.
func InvalidConfig(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid configuration",
		"Fix the value in .changelogkyper/config.json",
		"Or re-run 'changelogkyper init --url <issues-url>'",
	)
}

// NoFragments creates an error when a release finds nothing to release.
func NoFragments(err error) *CLIError {
	cliErr := NewPrerequisiteError(
		"no unreleased changes to release",
		"Record a change first with: changelogkyper add",
	)
	cliErr.Err = err
	return cliErr
}

// DuplicateVersion creates an error when the changelog already has the version.
func DuplicateVersion(version string, err error) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  fmt.Sprintf("version %s is already in the changelog", version),
		Remediation: []string{
			"Pick a new version number",
			"Inspect the existing section with: changelogkyper show " + version,
		},
		Err: err,
	}
}

// VersionNotFound creates an error when show is asked for an unknown version.
func VersionNotFound(version string, available []string, err error) *CLIError {
	remediation := []string{"Preview pending changes with: changelogkyper show unreleased"}
	if len(available) > 0 {
		remediation = append([]string{"Available versions: " + strings.Join(available, ", ")}, remediation...)
	}
	return &CLIError{
		Category:    Argument,
		Message:     fmt.Sprintf("version %s not found in the changelog", version),
		Remediation: remediation,
		Err:         err,
	}
}

// InvalidVersion creates an error for a version label that cannot be used.
func InvalidVersion(version string, err error) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  fmt.Sprintf("invalid version %q", version),
		Usage:    "changelogkyper release <version>",
		Remediation: []string{
			"Use a plain label such as 1.4.0",
			"Brackets, newlines and \"Unreleased\" are reserved",
		},
		Err: err,
	}
}

// InvalidCategory creates an error for an unknown change type.
func InvalidCategory(name string, valid []string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("unknown change type %q", name),
		"Valid types: "+strings.Join(valid, ", "),
	)
}

// InvalidIssueID creates an error for a negative issue id.
func InvalidIssueID(id int) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("issue id must not be negative, got %d", id),
		"Use 0 or omit --issue when the change has no issue",
	)
}

// EmptyTitle creates an error for a blank change description.
func EmptyTitle() *CLIError {
	return NewArgumentErrorWithUsage(
		"change title is required",
		"changelogkyper add --title \"<description>\"",
	)
}

// MultilineTitle creates an error for a change description with a line break.
func MultilineTitle() *CLIError {
	return NewArgumentErrorWithUsage(
		"change title must be a single line",
		"changelogkyper add --title \"<description>\"",
		"Describe the change in one line; a line break would start a new heading",
	)
}

// MalformedFragment creates an error for a fragment file that cannot be read.
func MalformedFragment(err error) *CLIError {
	return WrapWithMessage(err, Data,
		"malformed fragment",
		"Fix or delete the file in .changelogkyper/",
		"Each fragment needs a 'title' and a 'type' field",
	)
}

// MalformedChangelog creates an error for a changelog that cannot be parsed.
func MalformedChangelog(path string, err error) *CLIError {
	return WrapWithMessage(err, Data,
		fmt.Sprintf("cannot parse %s", path),
		"Every '## ' heading must name a version, e.g. '## [1.0.0] - 2024-01-31'",
		"Each version may appear only once",
	)
}

// PartialRelease creates an error when the changelog was written but some
// fragments could not be removed afterwards.
func PartialRelease(version string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("version %s was written to the changelog but cleanup failed", version),
		"Delete the remaining files in .changelogkyper/ by hand",
		"Do not re-run the release; the version already exists",
	)
}
