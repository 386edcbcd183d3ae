// Package store persists the catalog's two documents, books.json and
// users.json, as whole files in a single data directory.
//
// # Overview
//
// The store is deliberately unsophisticated: a load is a full-file
// read plus JSON decode, a save is a full-file overwrite with the
// two-space-indented encoding. There is no cross-request cache, so
// every caller sees the latest on-disk state and pays a full
// deserialize/reserialize per operation.
//
// # First run
//
// Open creates the data directory when missing and seeds the two
// documents:
//
//   - books.json: three sample books keyed by ids "1".."3"
//   - users.json: an empty object
//
// Existing files are left untouched, so state survives restarts.
//
// # Concurrency
//
// One mutex per document. Plain loads and saves take it for the
// duration of the file operation; MutateBooks / MutateUsers hold it
// across the whole load-edit-save cycle, which closes the
// lost-update window between two concurrent mutations of the same
// document. Callers pass an edit function; returning an error from
// it aborts the save and surfaces the error unchanged, so business
// sentinels (duplicate user, missing review, ...) travel through the
// mutate call untouched.
//
// # Failure model
//
// Unreadable files, invalid JSON and write failures come back as
// wrapped errors; the HTTP layer maps them to 500. Writes are not
// atomic — a crash mid-overwrite can corrupt a document. That is an
// accepted limitation of this store's scope, not something callers
// should try to compensate for.
//
// # See Also
//
// Related packages:
//   - internal/catalog: the document types and the operations
//     applied between load and save
package store
