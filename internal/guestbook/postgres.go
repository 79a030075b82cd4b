// Package guestbook holds the domain core of the message board: the Entry
// model, the Repository abstraction over the relational store, and the
// Service that turns request parameters into bounded, ordered result sets.
package guestbook

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresRepository implements Repository over database/sql. Each operation
// acquires a pooled connection and releases it on every exit path.
type PostgresRepository struct {
	db       *sql.DB
	pageSize int
}

// NewPostgresRepository binds a repository to db. A pageSize below 1 falls
// back to DefaultPageSize.
func NewPostgresRepository(db *sql.DB, pageSize int) *PostgresRepository {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &PostgresRepository{db: db, pageSize: pageSize}
}

func (r *PostgresRepository) AddEntry(ctx context.Context, name, email, message string) (*Entry, error) {
	entry := Entry{Name: name, Email: email, Message: message}
	err := r.db.QueryRowContext(ctx, `INSERT INTO "entry" ("name", "email", "message")
	                                  VALUES ($1, $2, $3)
	                                  RETURNING "id", "posted"`,
		name, email, message).Scan(&entry.ID, &entry.Posted)
	if err != nil {
		return nil, fmt.Errorf("%w: inserting entry: %v", ErrStorage, err)
	}
	return &entry, nil
}

func (r *PostgresRepository) CountEntries(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM "entry"`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting entries: %v", ErrStorage, err)
	}
	return count, nil
}

// GetEntries orders by posted descending with id descending as tie-break, so
// pagination stays deterministic when timestamps collide.
func (r *PostgresRepository) GetEntries(ctx context.Context, page int) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT "id", "name", "email", "message", "posted"
	                                     FROM "entry"
	                                     ORDER BY "posted" DESC, "id" DESC
	                                     LIMIT $1 OFFSET $2`,
		r.pageSize, (page-1)*r.pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: loading entries: %v", ErrStorage, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Email, &entry.Message, &entry.Posted); err != nil {
			return nil, fmt.Errorf("%w: scanning entry: %v", ErrStorage, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading entries: %v", ErrStorage, err)
	}
	return entries, nil
}
