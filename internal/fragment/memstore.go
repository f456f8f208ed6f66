package fragment

import (
	"sort"
)

// MemStore is an in-memory Store for tests and dry runs.
type MemStore struct {
	records map[string][]byte
	// FailDelete, when set, makes Delete fail on the fragment with this slug.
	FailDelete string
}

// NewMemStore creates a store pre-populated with fragments.
func NewMemStore(fragments ...Fragment) *MemStore {
	s := &MemStore{records: make(map[string][]byte)}
	for _, f := range fragments {
		_, _ = s.Write(f)
	}
	return s
}

// Write implements Store. Fragments go through the same YAML encoding as
// DirStore so that round-trip behavior matches.
func (s *MemStore) Write(f Fragment) (string, error) {
	if f.Slug == "" {
		f.Slug = Slugify(f.Title)
	}
	data, err := Marshal(f)
	if err != nil {
		return "", err
	}
	s.Put(f.Slug, data)
	return f.Slug, nil
}

// Put stores raw record bytes under slug, bypassing validation.
func (s *MemStore) Put(slug string, data []byte) {
	if s.records == nil {
		s.records = make(map[string][]byte)
	}
	s.records[slug] = data
}

// List implements Store.
func (s *MemStore) List() ([]Fragment, error) {
	slugs := make([]string, 0, len(s.records))
	for slug := range s.records {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	fragments := make([]Fragment, 0, len(slugs))
	for _, slug := range slugs {
		f, err := Unmarshal(slug+".yml", s.records[slug])
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, f)
	}
	return fragments, nil
}

// Delete implements Store.
func (s *MemStore) Delete(fragments []Fragment) error {
	for _, f := range fragments {
		if s.FailDelete != "" && f.Slug == s.FailDelete {
			return &deleteError{slug: f.Slug}
		}
		delete(s.records, f.Slug)
	}
	return nil
}

// Len returns the number of stored fragments.
func (s *MemStore) Len() int {
	return len(s.records)
}

type deleteError struct{ slug string }

func (e *deleteError) Error() string { return "deleting fragment " + e.slug + ": injected failure" }
