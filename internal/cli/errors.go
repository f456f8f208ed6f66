package cli

import (
	"errors"

	"github.com/floranpagliai/changelogkyper/internal/changelog"
	"github.com/floranpagliai/changelogkyper/internal/config"
	clierrors "github.com/floranpagliai/changelogkyper/internal/errors"
	"github.com/floranpagliai/changelogkyper/internal/fragment"
	"github.com/floranpagliai/changelogkyper/internal/prompt"
	"github.com/floranpagliai/changelogkyper/internal/release"
)

// userError converts a domain error into a CLIError with remediation.
// Errors that are already CLIErrors pass through unchanged.
func userError(err error, dir string) error {
	if err == nil || clierrors.IsCLIError(err) {
		return err
	}

	var (
		clearErr   *release.ClearError
		duplicate  *changelog.DuplicateVersionError
		notFound   *changelog.VersionNotFoundError
		validation *config.ValidationError
	)

	switch {
	case errors.Is(err, prompt.ErrAborted):
		return NewExitError(ExitAborted, err)
	case errors.Is(err, config.ErrNotInitialized):
		return clierrors.NotInitialized(dir, err)
	case errors.As(err, &validation):
		return clierrors.InvalidConfig(err)
	case errors.As(err, &clearErr):
		return clierrors.PartialRelease(clearErr.Version, clearErr.Err)
	case errors.Is(err, fragment.ErrNoFragments):
		return clierrors.NoFragments(err)
	case errors.As(err, &duplicate):
		return clierrors.DuplicateVersion(duplicate.Version, err)
	case errors.As(err, &notFound):
		return clierrors.VersionNotFound(notFound.Version, notFound.AvailableVersions, err)
	case fragment.IsParseError(err):
		return clierrors.MalformedFragment(err)
	case changelog.IsParseError(err):
		return clierrors.MalformedChangelog(changelogPath(dir), err)
	case errors.Is(err, release.ErrInvalidVersion):
		return clierrors.Wrap(err, clierrors.Argument)
	default:
		return clierrors.Wrap(err, clierrors.Runtime)
	}
}
