// Package model holds the entities shared by the service, repository
// and handler layers.
package model

// Query is a single-entry unique-key lookup such as
// {"accountName": "jvalencia"}. Keys are the json field names of the
// entity being searched.
type Query map[string]string
