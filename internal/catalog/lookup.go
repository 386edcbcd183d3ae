package catalog

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrBookNotFound is returned when no book matches the requested ISBN
var ErrBookNotFound = errors.New("book not found")

// NormalizeISBN strips dashes so that "978-0143127741" and
// "9780143127741" compare equal
func NormalizeISBN(isbn string) string {
	return strings.ReplaceAll(isbn, "-", "")
}

// orderedKeys returns the document keys in stable document order:
// numeric ids compare numerically, anything else lexically. The seed
// document uses ids "1".."3", so this matches insertion order there.
func orderedKeys(doc Books) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		ai, aerr := strconv.Atoi(a)
		bi, berr := strconv.Atoi(b)
		if aerr == nil && berr == nil {
			return ai - bi
		}
		return strings.Compare(a, b)
	})
	return keys
}

// All returns every book in document order, ids dropped
func All(doc Books) []Book {
	books := make([]Book, 0, len(doc))
	for _, k := range orderedKeys(doc) {
		books = append(books, doc[k])
	}
	return books
}

// KeyByISBN resolves the document key of the first book whose
// dash-normalized ISBN equals the dash-normalized query.
// Returns ErrBookNotFound when nothing matches.
func KeyByISBN(doc Books, isbn string) (string, error) {
	want := NormalizeISBN(isbn)
	for _, k := range orderedKeys(doc) {
		if NormalizeISBN(doc[k].ISBN) == want {
			return k, nil
		}
	}
	return "", ErrBookNotFound
}

// FindByISBN resolves a book by dash-insensitive ISBN equality
func FindByISBN(doc Books, isbn string) (Book, error) {
	k, err := KeyByISBN(doc, isbn)
	if err != nil {
		return Book{}, err
	}
	return doc[k], nil
}

// ByAuthor returns all books whose author contains the query,
// case-insensitively, in document order. No match yields an empty
// slice, not an error.
func ByAuthor(doc Books, author string) []Book {
	return filter(doc, author, func(b Book) string { return b.Author })
}

// ByTitle returns all books whose title contains the query,
// case-insensitively, in document order
func ByTitle(doc Books, title string) []Book {
	return filter(doc, title, func(b Book) string { return b.Title })
}

func filter(doc Books, query string, field func(Book) string) []Book {
	query = strings.ToLower(query)
	matches := make([]Book, 0)
	for _, k := range orderedKeys(doc) {
		if strings.Contains(strings.ToLower(field(doc[k])), query) {
			matches = append(matches, doc[k])
		}
	}
	return matches
}
