// Package auth implements the service's registration, login and
// token check against the users document.
//
// # Overview
//
// Three operations, all pure over an in-memory catalog.Users
// document:
//
//   - Register: presence check on both fields, duplicate pre-check,
//     then store the pair
//   - Login: username lookup plus password comparison, mint a token
//   - Authenticate: decode the token and confirm the embedded
//     username still exists
//
// Callers load the document (internal/store), run the operation, and
// persist when it mutated — Register is the only mutator.
//
// # The token, and why it is not a security mechanism
//
// A token is base64("username:epoch-millis"). It carries no
// signature, no expiry, and the timestamp is never read back; anyone
// who can base64-encode a known username can forge one, and
// passwords are stored as submitted, in the clear. This is a
// preserved property of the system being reimplemented, kept
// deliberately: do not add expiry or signing here without also
// changing the documented x-auth-token contract. Treat the whole
// scheme as user identification, not authentication in any
// adversarial sense.
//
// # Errors
//
//   - ErrMissingFields: register with an empty username or password
//   - ErrUserExists: register with a taken username
//   - ErrInvalidCredentials: login failure (unknown user and wrong
//     password are indistinguishable on purpose)
//   - ErrMissingToken: no x-auth-token presented
//   - ErrInvalidToken: token fails to decode, or decodes to an
//     unknown username
//
// The HTTP layer maps these to 400 / 409 / 401 / 401 / 401.
package auth
