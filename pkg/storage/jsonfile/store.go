package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/careerpilot/backend/pkg/user"
)

// Document is the single persisted structure holding all user records,
// keyed by lowercase email.
type Document struct {
	Users map[string]user.Record `json:"users"`
}

// Store persists one pretty-printed JSON document on disk. A single
// process-wide mutex serializes every read and write, so reads never observe
// a partially written document and writes never interleave. There is no
// retry and no partial-write recovery: a crash mid-write can corrupt the
// file, which is an accepted limitation of this store.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open creates a store for the given path and performs an initial read to
// ensure the file is reachable, bootstrapping an empty document if needed.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if _, err := s.Read(); err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	return s, nil
}

// Read loads the whole document. If no file exists yet, an empty
// {users:{}} document is persisted and returned.
func (s *Store) Read() (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Write replaces the whole document on disk.
func (s *Store) Write(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Update runs fn on the current document and persists the result, all under
// the store lock. Mutating handlers go through Update so their
// check-then-act sequences cannot interleave with concurrent requests.
func (s *Store) Update(fn func(*Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) read() (Document, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		doc := Document{Users: map[string]user.Record{}}
		if err := s.write(doc); err != nil {
			return Document{}, err
		}
		return doc, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("read store: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("decode store: %w", err)
	}
	if doc.Users == nil {
		doc.Users = map[string]user.Record{}
	}
	return doc, nil
}

func (s *Store) write(doc Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}
