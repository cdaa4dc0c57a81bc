// Package handler is the HTTP layer between the router and the services.
//
// It binds requests, validates them with the validation package and calls
// the matching service. Errors are returned untouched so the global error
// handler can render them.
package handler
