package guestbook

import (
	"context"
	"strconv"
	"strings"
)

// ListView is the data handed to a renderer for one listing page.
type ListView struct {
	Entries    []Entry `json:"entries"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
	PageSize   int     `json:"pageSize"`
}

// Pages lists the page numbers 1..TotalPages for the renderer.
func (v *ListView) Pages() []int {
	pages := make([]int, 0, v.TotalPages)
	for i := 1; i <= v.TotalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Service validates request parameters and orchestrates repository calls.
// It holds no per-request state; any number of Submit and List calls may
// run concurrently.
type Service struct {
	repo     Repository
	pageSize int
}

// NewService wires a Service to repo. pageSize must match the page size the
// repository paginates with; values below 1 fall back to DefaultPageSize.
func NewService(repo Repository, pageSize int) *Service {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Service{repo: repo, pageSize: pageSize}
}

// Submit stores a new entry and returns it. All three fields are required;
// values are trimmed before the empty check, and nothing is written when a
// field is missing.
func (s *Service) Submit(ctx context.Context, name, email, message string) (*Entry, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	switch {
	case name == "":
		return nil, &ValidationError{Reason: "missing field: name"}
	case email == "":
		return nil, &ValidationError{Reason: "missing field: email"}
	case message == "":
		return nil, &ValidationError{Reason: "missing field: message"}
	}

	return s.repo.AddEntry(ctx, name, email, message)
}

// List assembles the view model for one listing page. pageParam comes
// straight from the query string; empty means page 1. A page past the last
// one renders an empty listing rather than failing.
func (s *Service) List(ctx context.Context, pageParam string) (*ListView, error) {
	page := 1
	if p := strings.TrimSpace(pageParam); p != "" {
		i, err := strconv.Atoi(p)
		if err != nil || i < 1 {
			return nil, &ValidationError{Reason: "invalid page argument"}
		}
		page = i
	}

	total, err := s.repo.CountEntries(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.GetEntries(ctx, page)
	if err != nil {
		return nil, err
	}

	return &ListView{
		Entries:    entries,
		Page:       page,
		TotalPages: (total + s.pageSize - 1) / s.pageSize,
		PageSize:   s.pageSize,
	}, nil
}
