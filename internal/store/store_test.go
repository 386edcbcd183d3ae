package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dreamware/bookshelf/internal/catalog"
)

// TestOpen covers first-run seeding and reopening existing state
func TestOpen(t *testing.T) {
	t.Run("seeds books and users on first run", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}

		books, err := s.LoadBooks()
		if err != nil {
			t.Fatalf("LoadBooks failed: %v", err)
		}
		if len(books) != 3 {
			t.Errorf("expected 3 seed books, got %d", len(books))
		}
		if books["3"].Title != "The C Programming Language" {
			t.Errorf("seed book 3 = %+v", books["3"])
		}

		users, err := s.LoadUsers()
		if err != nil {
			t.Fatalf("LoadUsers failed: %v", err)
		}
		if len(users) != 0 {
			t.Errorf("expected empty users document, got %d entries", len(users))
		}
	})

	t.Run("creates the data directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		if _, err := Open(dir); err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "books.json")); err != nil {
			t.Errorf("books.json not created: %v", err)
		}
	})

	t.Run("does not reseed existing files", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if err := s.SaveUsers(catalog.Users{"alice": {Username: "alice", Password: "pw"}}); err != nil {
			t.Fatalf("SaveUsers failed: %v", err)
		}

		// Reopen against the same directory
		s2, err := Open(dir)
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		users, err := s2.LoadUsers()
		if err != nil {
			t.Fatalf("LoadUsers failed: %v", err)
		}
		if _, ok := users["alice"]; !ok {
			t.Error("reopen wiped registered user")
		}
	})
}

// TestRoundTrip verifies save-then-load fidelity for a mutated
// document
func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	books, err := s.LoadBooks()
	if err != nil {
		t.Fatalf("LoadBooks failed: %v", err)
	}
	book := books["1"]
	rating := 5.0
	if _, err := catalog.UpsertReview(&book, "alice", &rating, nil); err != nil {
		t.Fatalf("UpsertReview failed: %v", err)
	}
	books["1"] = book
	if err := s.SaveBooks(books); err != nil {
		t.Fatalf("SaveBooks failed: %v", err)
	}

	reloaded, err := s.LoadBooks()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, ok := reloaded["1"].Reviews["alice"]
	if !ok {
		t.Fatal("review lost in round trip")
	}
	if got.Rating == nil || *got.Rating != 5 {
		t.Errorf("Rating = %v, want 5", got.Rating)
	}
	if got.User != "alice" {
		t.Errorf("User = %q, want alice", got.User)
	}
}

// TestLoadErrors verifies that unreadable or invalid documents
// surface errors instead of empty state
func TestLoadErrors(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "books.json"), []byte("{not json"), 0o644); err != nil {
			t.Fatalf("corrupt write failed: %v", err)
		}
		if _, err := s.LoadBooks(); err == nil {
			t.Error("expected error loading corrupt document")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(dir)
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if err := os.Remove(filepath.Join(dir, "users.json")); err != nil {
			t.Fatalf("remove failed: %v", err)
		}
		if _, err := s.LoadUsers(); err == nil {
			t.Error("expected error loading removed document")
		}
	})
}

// TestMutate covers the load-edit-save cycle and error passthrough
func TestMutate(t *testing.T) {
	t.Run("edit is persisted", func(t *testing.T) {
		s, err := Open(t.TempDir())
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		err = s.MutateUsers(func(users catalog.Users) error {
			users["bob"] = catalog.User{Username: "bob", Password: "pw"}
			return nil
		})
		if err != nil {
			t.Fatalf("MutateUsers failed: %v", err)
		}
		users, err := s.LoadUsers()
		if err != nil {
			t.Fatalf("LoadUsers failed: %v", err)
		}
		if _, ok := users["bob"]; !ok {
			t.Error("mutation not persisted")
		}
	})

	t.Run("fn error aborts the save", func(t *testing.T) {
		s, err := Open(t.TempDir())
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		sentinel := errors.New("nope")
		err = s.MutateBooks(func(books catalog.Books) error {
			delete(books, "1")
			return sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Fatalf("error = %v, want sentinel passthrough", err)
		}
		books, err := s.LoadBooks()
		if err != nil {
			t.Fatalf("LoadBooks failed: %v", err)
		}
		if _, ok := books["1"]; !ok {
			t.Error("aborted mutation was persisted")
		}
	})

	t.Run("concurrent mutations do not lose updates", func(t *testing.T) {
		s, err := Open(t.TempDir())
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}

		numWriters := 20
		var wg sync.WaitGroup
		wg.Add(numWriters)
		for i := 0; i < numWriters; i++ {
			go func(n int) {
				defer wg.Done()
				err := s.MutateBooks(func(books catalog.Books) error {
					book := books["1"]
					rating := float64(n % 5)
					user := string(rune('a' + n%26))
					if _, err := catalog.UpsertReview(&book, user, &rating, nil); err != nil {
						return err
					}
					books["1"] = book
					return nil
				})
				if err != nil {
					t.Errorf("writer %d: %v", n, err)
				}
			}(i)
		}
		wg.Wait()

		books, err := s.LoadBooks()
		if err != nil {
			t.Fatalf("LoadBooks failed: %v", err)
		}
		// 20 writers over 20 distinct single-letter usernames
		if got := len(books["1"].Reviews); got != 20 {
			t.Errorf("expected 20 surviving reviews, got %d", got)
		}
	})
}
