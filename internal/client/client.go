package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dreamware/bookshelf/internal/catalog"
)

// tokenHeader matches the header the server's auth gate reads
const tokenHeader = "x-auth-token"

// APIError is a non-2xx response from the service, carrying the
// decoded {message} body
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bookserver: %d %s", e.Status, e.Message)
}

// Client is a typed HTTP client for the bookserver API
type Client struct {
	base string
	http *http.Client
}

// New creates a client for the service at baseURL
func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

// LoginResult is the payload of a successful login
type LoginResult struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// AllBooks fetches the whole catalog
func (c *Client) AllBooks(ctx context.Context) ([]catalog.Book, error) {
	var books []catalog.Book
	err := c.do(ctx, http.MethodGet, "/books", "", nil, &books)
	return books, err
}

// BookByISBN resolves one book by (dash-insensitive) ISBN
func (c *Client) BookByISBN(ctx context.Context, isbn string) (catalog.Book, error) {
	var book catalog.Book
	err := c.do(ctx, http.MethodGet, "/books/isbn/"+url.PathEscape(isbn), "", nil, &book)
	return book, err
}

// BooksByAuthor searches the catalog by author substring
func (c *Client) BooksByAuthor(ctx context.Context, author string) ([]catalog.Book, error) {
	var books []catalog.Book
	err := c.do(ctx, http.MethodGet, "/books/author/"+url.PathEscape(author), "", nil, &books)
	return books, err
}

// BooksByTitle searches the catalog by title substring
func (c *Client) BooksByTitle(ctx context.Context, title string) ([]catalog.Book, error) {
	var books []catalog.Book
	err := c.do(ctx, http.MethodGet, "/books/title/"+url.PathEscape(title), "", nil, &books)
	return books, err
}

// Reviews fetches the review map for one book
func (c *Client) Reviews(ctx context.Context, isbn string) (map[string]catalog.Review, error) {
	var reviews map[string]catalog.Review
	err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(isbn)+"/review", "", nil, &reviews)
	return reviews, err
}

// Register creates an account
func (c *Client) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/register", "", body, nil)
}

// Login exchanges credentials for a token
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/login", "", body, &out)
	return out, err
}

// PostReview adds or replaces the caller's review on a book
func (c *Client) PostReview(ctx context.Context, token, isbn string, rating *float64, comment *string) (catalog.Review, error) {
	body := struct {
		Rating  *float64 `json:"rating,omitempty"`
		Comment *string  `json:"comment,omitempty"`
	}{Rating: rating, Comment: comment}
	var out struct {
		Review catalog.Review `json:"review"`
	}
	err := c.do(ctx, http.MethodPost, "/books/"+url.PathEscape(isbn)+"/review", token, body, &out)
	return out.Review, err
}

// DeleteReview removes the caller's review from a book
func (c *Client) DeleteReview(ctx context.Context, token, isbn string) error {
	return c.do(ctx, http.MethodDelete, "/books/"+url.PathEscape(isbn)+"/review", token, nil, nil)
}

// do performs one JSON round trip. Non-2xx responses decode into an
// APIError; 2xx bodies decode into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
