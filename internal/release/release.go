// Package release merges pending changelog fragments into a new version
// section of the changelog.
//
// A release moves through LOADED -> AGGREGATED -> CHECKED -> WRITTEN ->
// CLEARED. Any failure before WRITTEN leaves disk untouched. A failure while
// clearing leaves the changelog written and some fragments undeleted; the
// error says which.
package release

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/floranpagliai/changelogkyper/internal/changelog"
	"github.com/floranpagliai/changelogkyper/internal/fragment"
)

// Stage is a step of the release workflow.
type Stage int

const (
	StageNone Stage = iota
	StageLoaded
	StageAggregated
	StageChecked
	StageWritten
	StageCleared
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageLoaded:
		return "LOADED"
	case StageAggregated:
		return "AGGREGATED"
	case StageChecked:
		return "CHECKED"
	case StageWritten:
		return "WRITTEN"
	case StageCleared:
		return "CLEARED"
	default:
		return "NONE"
	}
}

// ErrInvalidVersion is returned for version ids that cannot head a section.
var ErrInvalidVersion = errors.New("invalid version")

// ClearError reports a release whose changelog was written but whose
// fragments were not all deleted. Re-running the release will not restore
// them; remove the leftovers by hand.
type ClearError struct {
	Version string
	Err     error
}

func (e *ClearError) Error() string {
	return fmt.Sprintf("version %s was written to the changelog but clearing fragments failed: %v", e.Version, e.Err)
}

func (e *ClearError) Unwrap() error { return e.Err }

// Workflow runs releases against a fragment store and a changelog.
type Workflow struct {
	Fragments fragment.Store
	Changelog changelog.Source
	// Now returns the release time; the date is taken in UTC.
	Now func() time.Time
	// Logf receives debug messages when set.
	Logf func(format string, args ...any)
}

// Result describes how far a release got.
type Result struct {
	// Stage is the last stage completed.
	Stage     Stage
	Section   changelog.Section
	Fragments []fragment.Fragment
	// Document is the changelog including the new section.
	Document *changelog.Document
}

// Run performs a full release of version. The returned Result is never nil;
// on error its Stage tells how far the release got.
func (w *Workflow) Run(version string) (*Result, error) {
	res, err := w.Plan(version)
	if err != nil {
		return res, err
	}

	text := changelog.RenderString(res.Document)
	if err := w.Changelog.Write(text); err != nil {
		return res, err
	}
	res.Stage = StageWritten
	w.logf("wrote version %s to changelog (%d bytes)", version, len(text))

	if err := w.Fragments.Delete(res.Fragments); err != nil {
		return res, &ClearError{Version: version, Err: err}
	}
	res.Stage = StageCleared
	w.logf("cleared %d fragments", len(res.Fragments))

	return res, nil
}

// Plan runs the release up to CHECKED without writing anything. The result
// holds the section and document that Run would write.
func (w *Workflow) Plan(version string) (*Result, error) {
	res := &Result{Stage: StageNone}

	if err := ValidateVersion(version); err != nil {
		return res, err
	}

	fragments, err := w.Fragments.List()
	if err != nil {
		return res, err
	}
	res.Fragments = fragments
	res.Stage = StageLoaded
	w.logf("loaded %d pending fragments", len(fragments))

	groups, err := fragment.Collect(fragments)
	if err != nil {
		return res, err
	}
	res.Stage = StageAggregated

	doc, err := changelog.Load(w.Changelog)
	if err != nil {
		return res, err
	}
	if _, ok := doc.FindVersion(version); ok {
		return res, &changelog.DuplicateVersionError{Version: version}
	}
	res.Stage = StageChecked
	w.logf("changelog has %d versions, %s is new", len(doc.Sections), version)

	res.Section = changelog.NewSection(version, w.now(), groups)
	if err := doc.Prepend(res.Section); err != nil {
		return res, err
	}
	res.Document = doc

	return res, nil
}

// ValidateVersion rejects version ids that would not survive a round trip
// through a section heading.
func ValidateVersion(version string) error {
	switch {
	case strings.TrimSpace(version) == "":
		return fmt.Errorf("%w: version is empty", ErrInvalidVersion)
	case version != strings.TrimSpace(version):
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidVersion, version)
	case strings.ContainsAny(version, "[]\r\n"):
		return fmt.Errorf("%w: %q contains brackets or line breaks", ErrInvalidVersion, version)
	case strings.EqualFold(version, changelog.UnreleasedVersion):
		return fmt.Errorf("%w: %q is reserved for pending changes", ErrInvalidVersion, version)
	}
	return nil
}

// Unreleased builds the preview section for the pending fragments.
func Unreleased(store fragment.Store) (*changelog.Section, error) {
	fragments, err := store.List()
	if err != nil {
		return nil, err
	}
	groups, err := fragment.Collect(fragments)
	if err != nil {
		return nil, err
	}
	s := changelog.NewUnreleasedSection(groups)
	return &s, nil
}

func (w *Workflow) now() time.Time {
	if w.Now == nil {
		return time.Now().UTC()
	}
	return w.Now().UTC()
}

func (w *Workflow) logf(format string, args ...any) {
	if w.Logf != nil {
		w.Logf("[release] "+format, args...)
	}
}
