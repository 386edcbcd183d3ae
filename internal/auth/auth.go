package auth

import (
	"errors"

	"github.com/dreamware/bookshelf/internal/catalog"
)

var (
	// ErrMissingFields is returned by Register when either credential
	// field is empty
	ErrMissingFields = errors.New("username & password required")

	// ErrUserExists is returned by Register for a duplicate username
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials is returned by Login for an unknown
	// username or a password mismatch
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingToken is returned by Authenticate when no token was
	// presented
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken is returned by Authenticate when the token does
	// not decode or names an unknown user
	ErrInvalidToken = errors.New("invalid token")
)

// Register adds a credential pair to the users document. The only
// uniqueness enforcement for usernames is the existence pre-check
// here.
func Register(users catalog.Users, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingFields
	}
	if _, ok := users[username]; ok {
		return ErrUserExists
	}
	users[username] = catalog.User{Username: username, Password: password}
	return nil
}

// Login checks a credential pair against the users document and
// mints a token on success
func Login(users catalog.Users, username, password string) (string, error) {
	user, ok := users[username]
	if !ok || user.Password != password {
		return "", ErrInvalidCredentials
	}
	return Mint(username), nil
}

// Authenticate resolves a token back to a username. The token is
// valid when it decodes and the embedded username exists in the users
// document; the embedded timestamp is never inspected.
func Authenticate(users catalog.Users, token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}
	username, err := Subject(token)
	if err != nil {
		return "", err
	}
	if _, ok := users[username]; !ok {
		return "", ErrInvalidToken
	}
	return username, nil
}
