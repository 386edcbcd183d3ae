package catalog

// Book is a single catalog entry. Books are identified by ISBN on every
// API surface; the numeric-string document key is a storage artifact
// and never leaves the store.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]Review `json:"reviews"`
}

// Review is one user's review of one book. The map key in
// Book.Reviews is the username, so User is redundant but kept for
// self-contained responses.
type Review struct {
	Rating    *float64 `json:"rating,omitempty"`
	Comment   *string  `json:"comment,omitempty"`
	User      string   `json:"user"`
	UpdatedAt string   `json:"updatedAt"`
}

// User is a registered account. The password is stored as submitted;
// see the auth package comment for why.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Books is the on-disk books document: arbitrary numeric-string id to
// Book. Within the document, id to book is a bijection at write time.
type Books map[string]Book

// Users is the on-disk users document, keyed by username.
type Users map[string]User
