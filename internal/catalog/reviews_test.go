package catalog

import (
	"errors"
	"testing"
	"time"
)

func ptrFloat(f float64) *float64 { return &f }
func ptrString(s string) *string  { return &s }

// TestUpsertReview covers the one-review-per-user invariant and the
// empty-submission rejection
func TestUpsertReview(t *testing.T) {
	t.Run("creates review with millisecond timestamp", func(t *testing.T) {
		fixed := time.Date(2024, 3, 1, 12, 0, 0, 789_000_000, time.UTC)
		now = func() time.Time { return fixed }
		defer func() { now = time.Now }()

		book := Book{ISBN: "978-0143127741"}
		review, err := UpsertReview(&book, "alice", ptrFloat(5), ptrString("great"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if review.User != "alice" {
			t.Errorf("User = %q, want alice", review.User)
		}
		if review.UpdatedAt != "2024-03-01T12:00:00.789Z" {
			t.Errorf("UpdatedAt = %q, want 2024-03-01T12:00:00.789Z", review.UpdatedAt)
		}
		if got := book.Reviews["alice"]; got.Comment == nil || *got.Comment != "great" {
			t.Errorf("stored review = %+v, want comment great", got)
		}
	})

	t.Run("second submission overwrites the first", func(t *testing.T) {
		book := Book{ISBN: "978-0143127741"}
		if _, err := UpsertReview(&book, "alice", ptrFloat(2), nil); err != nil {
			t.Fatalf("first upsert: %v", err)
		}
		if _, err := UpsertReview(&book, "alice", ptrFloat(5), ptrString("changed my mind")); err != nil {
			t.Fatalf("second upsert: %v", err)
		}
		if len(book.Reviews) != 1 {
			t.Fatalf("expected exactly one review, got %d", len(book.Reviews))
		}
		got := book.Reviews["alice"]
		if got.Rating == nil || *got.Rating != 5 {
			t.Errorf("Rating = %v, want 5", got.Rating)
		}
	})

	t.Run("distinct users occupy distinct slots", func(t *testing.T) {
		book := Book{}
		UpsertReview(&book, "alice", ptrFloat(5), nil)
		UpsertReview(&book, "bob", ptrFloat(1), nil)
		if len(book.Reviews) != 2 {
			t.Errorf("expected 2 reviews, got %d", len(book.Reviews))
		}
	})

	t.Run("rating-only is valid", func(t *testing.T) {
		book := Book{}
		if _, err := UpsertReview(&book, "alice", ptrFloat(4), nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("comment-only is valid", func(t *testing.T) {
		book := Book{}
		if _, err := UpsertReview(&book, "alice", nil, ptrString("fine")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("neither rating nor comment is rejected", func(t *testing.T) {
		book := Book{}
		_, err := UpsertReview(&book, "alice", nil, nil)
		if !errors.Is(err, ErrEmptyReview) {
			t.Errorf("error = %v, want ErrEmptyReview", err)
		}
		if len(book.Reviews) != 0 {
			t.Error("rejected upsert must not touch the book")
		}
	})
}

// TestDeleteReview covers removal and the missing-review case
func TestDeleteReview(t *testing.T) {
	t.Run("removes existing review", func(t *testing.T) {
		book := Book{}
		UpsertReview(&book, "alice", ptrFloat(5), nil)

		if err := DeleteReview(&book, "alice"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := Reviews(book)["alice"]; ok {
			t.Error("review still present after delete")
		}
	})

	t.Run("missing review yields ErrReviewNotFound", func(t *testing.T) {
		book := Book{}
		if err := DeleteReview(&book, "alice"); !errors.Is(err, ErrReviewNotFound) {
			t.Errorf("error = %v, want ErrReviewNotFound", err)
		}
	})

	t.Run("only the caller's review is removed", func(t *testing.T) {
		book := Book{}
		UpsertReview(&book, "alice", ptrFloat(5), nil)
		UpsertReview(&book, "bob", ptrFloat(3), nil)

		if err := DeleteReview(&book, "alice"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := book.Reviews["bob"]; !ok {
			t.Error("bob's review should survive alice's delete")
		}
	})
}

// TestReviews verifies the never-nil accessor
func TestReviews(t *testing.T) {
	if got := Reviews(Book{}); got == nil || len(got) != 0 {
		t.Errorf("Reviews of bare book = %v, want empty map", got)
	}
}
