package fragment

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store persists pending fragments keyed by slug.
type Store interface {
	// Write stores f under its slug, replacing any fragment with the same slug.
	// It returns the location the fragment was written to.
	Write(f Fragment) (string, error)
	// List returns every pending fragment in a deterministic order.
	List() ([]Fragment, error)
	// Delete removes the given fragments. Deletion stops at the first failure;
	// fragments already removed stay removed.
	Delete(fragments []Fragment) error
}

// record is the on-disk shape of a fragment.
type record struct {
	Title string `yaml:"title"`
	Type  string `yaml:"type"`
}

// Marshal encodes a fragment as a YAML record.
func Marshal(f Fragment) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(record{Title: f.Title, Type: f.Category.String()}); err != nil {
		return nil, fmt.Errorf("encoding fragment %s: %w", f.Slug, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding fragment %s: %w", f.Slug, err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a YAML record. Both the title and type fields are
// required. name is the file name the record was read from; it is kept on
// the fragment and, without its extension, used as the slug.
func Unmarshal(name string, data []byte) (Fragment, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Fragment{}, &ParseError{Path: name, Message: "invalid YAML", Err: err}
	}
	if raw == nil {
		return Fragment{}, &ParseError{Path: name, Message: "empty record"}
	}

	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Fragment{}, &ParseError{Path: name, Message: "invalid record", Err: err}
	}

	if _, ok := raw["title"]; !ok || strings.TrimSpace(rec.Title) == "" {
		return Fragment{}, &ParseError{Path: name, Message: "missing required field \"title\""}
	}
	if err := CheckTitle(rec.Title); err != nil {
		return Fragment{}, &ParseError{Path: name, Message: "invalid title", Err: err}
	}
	if _, ok := raw["type"]; !ok || strings.TrimSpace(rec.Type) == "" {
		return Fragment{}, &ParseError{Path: name, Message: "missing required field \"type\""}
	}

	cat, err := ParseCategory(rec.Type)
	if err != nil {
		return Fragment{}, &ParseError{Path: name, Message: "invalid type", Err: err}
	}

	return Fragment{
		Category: cat,
		Title:    rec.Title,
		Slug:     strings.TrimSuffix(name, filepath.Ext(name)),
		File:     name,
	}, nil
}

// DirStore keeps one YAML file per fragment in a directory.
// Files without a .yml or .yaml extension (config.json, dotfiles) and
// sub-directories are not fragments and are ignored.
type DirStore struct {
	Dir string
}

// NewDirStore creates a store rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{Dir: dir}
}

// Init creates the fragment directory. It is safe to call repeatedly.
func (s *DirStore) Init() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating fragment directory: %w", err)
	}
	return nil
}

// Path returns the file path a fragment with the given slug is stored at.
func (s *DirStore) Path(slug string) string {
	return filepath.Join(s.Dir, slug+".yml")
}

// Write implements Store.
func (s *DirStore) Write(f Fragment) (string, error) {
	if f.Slug == "" {
		f.Slug = Slugify(f.Title)
	}
	data, err := Marshal(f)
	if err != nil {
		return "", err
	}

	path := s.Path(f.Slug)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing fragment: %w", err)
	}
	return path, nil
}

// List implements Store. Fragments are returned sorted by file name.
func (s *DirStore) List() ([]Fragment, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading fragment directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if isFragmentFile(e) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	fragments := make([]Fragment, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.Dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading fragment %s: %w", name, err)
		}
		f, err := Unmarshal(name, data)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, f)
	}
	return fragments, nil
}

// Delete implements Store. A fragment that is already gone is not an error.
// Fragments returned by List are removed by the exact file name they were
// read from.
func (s *DirStore) Delete(fragments []Fragment) error {
	for i, f := range fragments {
		if err := s.remove(f); err != nil {
			return fmt.Errorf("deleting fragment %s (%d of %d not deleted): %w",
				f.Slug, len(fragments)-i, len(fragments), err)
		}
	}
	return nil
}

func (s *DirStore) remove(f Fragment) error {
	names := []string{f.Slug + ".yml", f.Slug + ".yaml"}
	if f.File != "" {
		names = []string{f.File}
	}
	for _, name := range names {
		err := os.Remove(filepath.Join(s.Dir, name))
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

func isFragmentFile(e fs.DirEntry) bool {
	if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(e.Name()))
	return ext == ".yml" || ext == ".yaml"
}
