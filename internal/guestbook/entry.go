package guestbook

import (
	"time"
)

// Entry is a single guestbook submission. Entries are append-only: once
// stored they are never updated or deleted.
type Entry struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Posted  time.Time `json:"posted"`
}
