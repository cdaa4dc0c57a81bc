// Package errs defines the error kinds returned by the service layer.
//
// Every kind is an *HTTPError carrying the status the HTTP boundary
// should answer with, a stable machine code and an optional list of
// field-level problems. Services build them with the New* constructors
// and callers classify them with IsStatus or errors.As.
package errs
