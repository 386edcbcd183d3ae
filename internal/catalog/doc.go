// Package catalog defines the book catalog's data model and the pure
// operations over it: ISBN / author / title lookup and the per-book
// review ledger.
//
// # Overview
//
// The catalog package owns the shapes that cross the wire and the
// disk (Book, Review, User and the two document types, Books and
// Users) together with the functions that interrogate and mutate
// them. Nothing here touches storage or HTTP: callers load a document
// (see internal/store), apply catalog functions, and persist the
// result.
//
// # Documents and ordering
//
// A Books document is a map from an arbitrary numeric-string id to a
// Book. The ids are a storage artifact: every lookup is by ISBN and
// ids are dropped from all responses. Because Go map iteration order
// is randomized, every traversal goes through orderedKeys, which
// sorts ids numerically (lexically for non-numeric ids). This gives
// deterministic document order for list and search results and for
// first-match ISBN resolution.
//
// # Lookup semantics
//
//   - FindByISBN / KeyByISBN: dash-insensitive equality. Both sides
//     are normalized by stripping "-" before comparing, so
//     "978-0143127741" and "9780143127741" resolve the same book.
//     The first match in document order wins.
//   - ByAuthor / ByTitle: case-insensitive substring match, document
//     order preserved. An empty result is a valid answer, never an
//     error.
//
// # Review ledger
//
// Reviews live inside their parent Book as a username-keyed map, so
// "one review per user per book" is structural: UpsertReview writes
// book.Reviews[username] and a resubmission lands in the same slot
// with a fresh updatedAt. DeleteReview removes the slot and reports
// ErrReviewNotFound when it was never written. Rating and comment are
// both optional but at least one must be present (ErrEmptyReview).
//
// # Errors
//
//   - ErrBookNotFound: no book with that ISBN
//   - ErrReviewNotFound: no review by that user on that book
//   - ErrEmptyReview: upsert with neither rating nor comment
//
// All three are sentinels meant for errors.Is at the HTTP boundary,
// where they map to 404 / 404 / 400.
//
// # See Also
//
// Related packages:
//   - internal/store: loads and saves the documents operated on here
//   - internal/auth: resolves the username used as the review key
package catalog
