// Package binder decodes HTTP requests into typed structs for the handler
// package. Each binder reads its own struct tag (`form`, `path`) or, for
// DataStar signals, the `json` tags, and returns ErrBinderNotApplicable when
// the request does not carry data in its format.
package binder
