package catalog

import (
	"errors"
	"time"
)

// ErrEmptyReview is returned when an upsert carries neither a rating
// nor a comment
var ErrEmptyReview = errors.New("rating or comment required")

// ErrReviewNotFound is returned when deleting a review the user never
// wrote
var ErrReviewNotFound = errors.New("review not found")

// now is a variable to allow fixing the clock in tests
var now = time.Now

// isoMillis is RFC 3339 with millisecond precision, the format the
// stored documents use for updatedAt
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// UpsertReview writes or replaces the caller's review on a book. A
// user holds at most one review per book, keyed by username, so a
// second submission overwrites the first and refreshes updatedAt.
func UpsertReview(book *Book, username string, rating *float64, comment *string) (Review, error) {
	if rating == nil && comment == nil {
		return Review{}, ErrEmptyReview
	}
	if book.Reviews == nil {
		book.Reviews = make(map[string]Review)
	}
	review := Review{
		Rating:    rating,
		Comment:   comment,
		User:      username,
		UpdatedAt: now().UTC().Format(isoMillis),
	}
	book.Reviews[username] = review
	return review, nil
}

// DeleteReview removes the caller's review from a book.
// Returns ErrReviewNotFound when no review exists under that username.
func DeleteReview(book *Book, username string) error {
	if _, ok := book.Reviews[username]; !ok {
		return ErrReviewNotFound
	}
	delete(book.Reviews, username)
	return nil
}

// Reviews returns a book's review map, never nil
func Reviews(book Book) map[string]Review {
	if book.Reviews == nil {
		return map[string]Review{}
	}
	return book.Reviews
}
