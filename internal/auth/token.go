package auth

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// now is a variable to allow fixing the clock in tests
var now = time.Now

// Mint issues a token for a username: the base64 encoding of
// "username:epoch-millis". The timestamp is informational only —
// nothing ever checks it, so tokens never expire.
func Mint(username string) string {
	raw := fmt.Sprintf("%s:%d", username, now().UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Subject extracts the username embedded in a token.
// Returns ErrInvalidToken when the token is not valid base64.
func Subject(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	username, _, _ := strings.Cut(string(raw), ":")
	return username, nil
}
