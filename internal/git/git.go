// Package git reads repository metadata for changelogkyper. It uses the go-git
// library to open the enclosing repository and derive the issue tracker URL
// from the origin remote, so init can suggest a sensible default.
package git

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// DefaultRemote is the remote consulted for the issue tracker URL.
const DefaultRemote = "origin"

// ErrNoRemote is returned when the repository has no usable origin remote.
var ErrNoRemote = errors.New("no origin remote configured")

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging. The logger function should format
// and output the message (similar to log.Printf signature).
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens a git repository at the specified path or current working directory.
// It uses go-git's PlainOpenWithOptions with DetectDotGit enabled to traverse
// up the directory tree to find the repository root.
// If path is empty, the current working directory is used.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	logDebug("[git] repository opened successfully")
	return repo, nil
}

// RemoteURL returns the first configured URL of the named remote.
func RemoteURL(dir, name string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote(name)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", ErrNoRemote
		}
		return "", fmt.Errorf("reading remote %s: %w", name, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ErrNoRemote
	}
	logDebug("[git] RemoteURL %s: %s", name, urls[0])
	return urls[0], nil
}

// IssuesURL derives the issue tracker base URL of the repository enclosing
// dir from its origin remote, e.g. git@github.com:acme/app.git gives
// https://github.com/acme/app/issues/.
func IssuesURL(dir string) (string, error) {
	remote, err := RemoteURL(dir, DefaultRemote)
	if err != nil {
		return "", err
	}
	return IssuesURLFromRemote(remote)
}

// IssuesURLFromRemote converts a clone URL (SCP-style, ssh://, git://,
// http(s)://) into the https issue tracker URL of the hosted project.
func IssuesURLFromRemote(remote string) (string, error) {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return "", ErrNoRemote
	}

	ep, err := transport.NewEndpoint(remote)
	if err != nil {
		return "", fmt.Errorf("parsing remote URL %q: %w", remote, err)
	}
	if ep.Protocol == "file" || ep.Host == "" {
		return "", fmt.Errorf("remote %q is not a hosted repository", remote)
	}

	path := strings.Trim(ep.Path, "/")
	path = strings.TrimSuffix(path, ".git")
	if path == "" {
		return "", fmt.Errorf("remote %q has no project path", remote)
	}

	issues := fmt.Sprintf("https://%s/%s/issues/", ep.Host, path)
	logDebug("[git] IssuesURLFromRemote: %s -> %s", remote, issues)
	return issues, nil
}
