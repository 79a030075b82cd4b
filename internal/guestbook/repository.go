package guestbook

import (
	"context"
)

// DefaultPageSize is the number of entries shown per listing page.
const DefaultPageSize = 5

// Repository is the persistence abstraction over the entry table.
type Repository interface {
	// AddEntry stores one entry and returns it with the server-assigned id
	// and posted timestamp.
	AddEntry(ctx context.Context, name, email, message string) (*Entry, error)

	// CountEntries returns the total number of stored entries.
	CountEntries(ctx context.Context) (int, error)

	// GetEntries returns one 1-based page of entries, newest first with id
	// as tie-break. A page past the end is empty, not an error. The caller
	// is responsible for ensuring page >= 1.
	GetEntries(ctx context.Context, page int) ([]Entry, error)
}
