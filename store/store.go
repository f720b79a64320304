// Package store persists generated posts. Every backend reports success the
// same way: a nil error from Insert means the row was created.
package store

import (
	"context"
	"strconv"
)

// Record is one generated post on its way to the store.
type Record struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ProbeResult is what a connectivity check saw, whatever the status.
type ProbeResult struct {
	Status int
	Body   string
}

type Store interface {
	Insert(ctx context.Context, r Record) error
	Probe(ctx context.Context) (*ProbeResult, error)
	// Location identifies the target in diagnostics; secrets are redacted.
	Location() string
}

// StatusError means the store answered, but not with 201 Created.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return strconv.Itoa(e.StatusCode) + " - " + e.Body
}
