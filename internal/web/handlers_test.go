package web

import (
	"context"
	"fmt"
	"time"

	"github.com/lehrcode/guestbook/internal/guestbook"
)

// stubRepo backs handler tests with an in-memory entry list, newest first.
type stubRepo struct {
	entries  []guestbook.Entry
	added    []guestbook.Entry
	addErr   error
	countErr error
}

func (s *stubRepo) AddEntry(ctx context.Context, name, email, message string) (*guestbook.Entry, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	entry := guestbook.Entry{
		ID:      int64(len(s.added) + 1),
		Name:    name,
		Email:   email,
		Message: message,
		Posted:  time.Now(),
	}
	s.added = append(s.added, entry)
	s.entries = append([]guestbook.Entry{entry}, s.entries...)
	return &entry, nil
}

func (s *stubRepo) CountEntries(ctx context.Context) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return len(s.entries), nil
}

func (s *stubRepo) GetEntries(ctx context.Context, page int) ([]guestbook.Entry, error) {
	offset := (page - 1) * guestbook.DefaultPageSize
	if offset >= len(s.entries) {
		return nil, nil
	}
	end := offset + guestbook.DefaultPageSize
	if end > len(s.entries) {
		end = len(s.entries)
	}
	return s.entries[offset:end], nil
}

func newStubService() (*guestbook.Service, *stubRepo) {
	repo := &stubRepo{}
	return guestbook.NewService(repo, guestbook.DefaultPageSize), repo
}

var errStubStorage = fmt.Errorf("%w: connection refused", guestbook.ErrStorage)
