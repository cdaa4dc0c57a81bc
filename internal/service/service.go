// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers pass in
// bound request values, services validate them, talk to the stores
// through the ports declared in ports.go and return either a result or a
// classified *errs.HTTPError. Services hold no state of their own.
package service
