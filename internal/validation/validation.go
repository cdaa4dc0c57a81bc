// Package validation holds the input checks shared by every layer.
//
// Request payloads are bound and validated with BindAndValidate (struct
// tags via go-playground/validator). The service layer uses the plain
// predicates in predicates.go, which never touch the store.
package validation
