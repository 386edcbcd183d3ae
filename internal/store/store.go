package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dreamware/bookshelf/internal/catalog"
)

const (
	booksFile = "books.json"
	usersFile = "users.json"
)

// Store reads and writes the two JSON documents backing the service.
// Every load is a full-file read and every save a full-file
// overwrite; a mutex per document serializes read-modify-write
// cycles so concurrent mutations cannot silently drop each other.
type Store struct {
	dir     string
	booksMu sync.Mutex // Guards books.json
	usersMu sync.Mutex // Guards users.json
}

// Open prepares the data directory, seeding books.json with the
// sample catalog and users.json with an empty document when either
// is absent
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	s := &Store{dir: dir}
	if err := seedIfAbsent(s.path(booksFile), seedBooks()); err != nil {
		return nil, err
	}
	if err := seedIfAbsent(s.path(usersFile), catalog.Users{}); err != nil {
		return nil, err
	}
	return s, nil
}

// seedBooks is the catalog written on first run
func seedBooks() catalog.Books {
	return catalog.Books{
		"1": {ISBN: "978-0143127741", Title: "Book One", Author: "Alice", Reviews: map[string]catalog.Review{}},
		"2": {ISBN: "978-0262033848", Title: "Learning Node", Author: "Bob", Reviews: map[string]catalog.Review{}},
		"3": {ISBN: "978-0131103627", Title: "The C Programming Language", Author: "Kernighan", Reviews: map[string]catalog.Review{}},
	}
}

func seedIfAbsent(path string, doc any) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return writeJSON(path, doc)
}

func (s *Store) path(file string) string {
	return filepath.Join(s.dir, file)
}

// LoadBooks reads the whole books document
func (s *Store) LoadBooks() (catalog.Books, error) {
	s.booksMu.Lock()
	defer s.booksMu.Unlock()
	var doc catalog.Books
	if err := readJSON(s.path(booksFile), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SaveBooks overwrites the books document
func (s *Store) SaveBooks(doc catalog.Books) error {
	s.booksMu.Lock()
	defer s.booksMu.Unlock()
	return writeJSON(s.path(booksFile), doc)
}

// LoadUsers reads the whole users document
func (s *Store) LoadUsers() (catalog.Users, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	var doc catalog.Users
	if err := readJSON(s.path(usersFile), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SaveUsers overwrites the users document
func (s *Store) SaveUsers(doc catalog.Users) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	return writeJSON(s.path(usersFile), doc)
}

// MutateBooks runs a load-edit-save cycle on the books document under
// the document lock. When fn returns an error the document is not
// saved and the error is returned as-is, so business-rule sentinels
// pass through unchanged.
func (s *Store) MutateBooks(fn func(catalog.Books) error) error {
	s.booksMu.Lock()
	defer s.booksMu.Unlock()
	var doc catalog.Books
	if err := readJSON(s.path(booksFile), &doc); err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return writeJSON(s.path(booksFile), doc)
}

// MutateUsers runs a load-edit-save cycle on the users document under
// the document lock
func (s *Store) MutateUsers(fn func(catalog.Users) error) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	var doc catalog.Users
	if err := readJSON(s.path(usersFile), &doc); err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return writeJSON(s.path(usersFile), doc)
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// writeJSON overwrites path with the two-space-indented encoding of
// doc. Not atomic: a crash mid-write can corrupt the file, an
// accepted limitation of this store.
func writeJSON(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
