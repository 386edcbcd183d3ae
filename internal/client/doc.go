// Package client is a typed HTTP client for the bookserver API,
// plus the asynchronous invocation styles the bookctl demo exercises.
//
// # Overview
//
// Client wraps every API operation in a context-aware method
// returning (value, error). One JSON round-trip helper underlies all
// of them; non-2xx responses surface as *APIError with the decoded
// {message} body and the status code, so callers can distinguish a
// 404 from a transport failure.
//
// # Invocation styles
//
// Beyond plain synchronous calls, the package offers the two styles
// the demo client contrasts:
//
//   - Callback: AllBooksAsync(ctx, cb) runs the fetch in a goroutine
//     and invokes cb(books, err) when it settles.
//   - Future (promise): BookByISBNFuture / BooksByTitleFuture return
//     a Future whose Wait() blocks for the settled result. Wait is
//     safe to call repeatedly; the outcome is memoized.
//
// The await-everything-in-parallel style needs no support here — it
// is an errgroup over the synchronous methods, as bookctl's demo
// command shows.
//
// # Authentication
//
// Mutating review calls take the token returned by Login and send it
// in the x-auth-token header. The token is opaque to this package.
package client
