package changelog

import (
	"fmt"
	"strings"
)

// VersionNotFoundError is returned when a requested version doesn't exist.
type VersionNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *VersionNotFoundError) Error() string {
	if len(e.AvailableVersions) == 0 {
		return fmt.Sprintf("version %q not found (changelog has no versions)", e.Version)
	}
	return fmt.Sprintf("version %q not found (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// DuplicateVersionError is returned when a release would reuse a version id.
type DuplicateVersionError struct {
	Version string
}

func (e *DuplicateVersionError) Error() string {
	return fmt.Sprintf("version %q already exists in the changelog", e.Version)
}

// FindVersion returns the section whose version id equals id exactly.
func (d *Document) FindVersion(id string) (*Section, bool) {
	for i := range d.Sections {
		if d.Sections[i].Version == id {
			return &d.Sections[i], true
		}
	}
	return nil, false
}

// GetVersion is FindVersion with a VersionNotFoundError listing the
// available versions when id is unknown.
func (d *Document) GetVersion(id string) (*Section, error) {
	if s, ok := d.FindVersion(id); ok {
		return s, nil
	}
	return nil, &VersionNotFoundError{Version: id, AvailableVersions: d.ListVersions()}
}

// Prepend inserts s ahead of all existing sections. It refuses a version id
// that is already present.
func (d *Document) Prepend(s Section) error {
	if _, ok := d.FindVersion(s.Version); ok {
		return &DuplicateVersionError{Version: s.Version}
	}
	d.Sections = append([]Section{s}, d.Sections...)
	return nil
}

// ListVersions returns all version ids in document order (newest first).
func (d *Document) ListVersions() []string {
	versions := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		versions[i] = s.Version
	}
	return versions
}
