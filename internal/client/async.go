package client

import (
	"context"
	"sync"

	"github.com/dreamware/bookshelf/internal/catalog"
)

// outcome pairs a value with the error that produced it
type outcome[T any] struct {
	val T
	err error
}

// Future is a promise-style handle on an in-flight call. The call
// runs in its own goroutine; Wait blocks until it settles and can be
// called any number of times.
type Future[T any] struct {
	ch   chan outcome[T]
	once sync.Once
	val  T
	err  error
}

func newFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{ch: make(chan outcome[T], 1)}
	go func() {
		val, err := fn()
		f.ch <- outcome[T]{val: val, err: err}
	}()
	return f
}

// Wait blocks until the call settles and returns its result
func (f *Future[T]) Wait() (T, error) {
	f.once.Do(func() {
		o := <-f.ch
		f.val, f.err = o.val, o.err
	})
	return f.val, f.err
}

// AllBooksAsync fetches the catalog in the background and hands the
// result to cb, callback-style. cb runs on the fetching goroutine.
func (c *Client) AllBooksAsync(ctx context.Context, cb func([]catalog.Book, error)) {
	go func() {
		books, err := c.AllBooks(ctx)
		cb(books, err)
	}()
}

// BookByISBNFuture starts an ISBN lookup and returns a Future for it
func (c *Client) BookByISBNFuture(ctx context.Context, isbn string) *Future[catalog.Book] {
	return newFuture(func() (catalog.Book, error) {
		return c.BookByISBN(ctx, isbn)
	})
}

// BooksByTitleFuture starts a title search and returns a Future for
// it
func (c *Client) BooksByTitleFuture(ctx context.Context, title string) *Future[[]catalog.Book] {
	return newFuture(func() ([]catalog.Book, error) {
		return c.BooksByTitle(ctx, title)
	})
}
