package changelog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// DefaultFileName is the changelog file name in the project directory.
const DefaultFileName = "CHANGELOG.md"

// Source reads and replaces the whole changelog text.
type Source interface {
	// Read returns the current text. A changelog that does not exist yet
	// reads as empty.
	Read() (string, error)
	// Write replaces the whole text.
	Write(text string) error
}

// Load reads and parses the changelog held by src.
func Load(src Source) (*Document, error) {
	text, err := src.Read()
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

// File is a changelog stored on disk. Writes go through a temporary file and
// rename so readers never observe a half-written changelog.
type File struct {
	Path string
}

// NewFile returns a File for path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Read implements Source.
func (f *File) Read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading changelog: %w", err)
	}
	return string(data), nil
}

// Write implements Source.
func (f *File) Write(text string) error {
	if err := atomic.WriteFile(f.Path, strings.NewReader(text)); err != nil {
		return fmt.Errorf("writing changelog: %w", err)
	}
	// atomic.WriteFile doesn't set permissions for new files
	if err := os.Chmod(f.Path, 0o644); err != nil {
		return fmt.Errorf("setting changelog permissions: %w", err)
	}
	return nil
}

// MemFile is an in-memory Source for tests and dry runs.
type MemFile struct {
	Text string
	// Writes counts successful Write calls.
	Writes int
	// WriteErr, when set, is returned by Write.
	WriteErr error
}

// Read implements Source.
func (m *MemFile) Read() (string, error) {
	return m.Text, nil
}

// Write implements Source.
func (m *MemFile) Write(text string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Text = text
	m.Writes++
	return nil
}
