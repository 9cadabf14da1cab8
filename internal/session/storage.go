// Package session provides a PostgreSQL-backed storage for the Fiber session
// middleware. Each row maps an opaque session token to the session payload
// (which carries only the authenticated user's public id) with an expiry.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mkraev/teamtodo/internal/repository/postgres"
)

// Storage implements fiber.Storage over a Postgres sessions table.
type Storage struct {
	db *postgres.DB
}

// NewStorage constructs session storage over the shared pool.
func NewStorage(db *postgres.DB) *Storage {
	return &Storage{db: db}
}

// Get returns the payload for key, or nil when the session is absent or
// expired. Expired rows are reaped on read.
func (s *Storage) Get(key string) ([]byte, error) {
	const q = `SELECT data, expires_at FROM sessions WHERE id=$1`
	var (
		data      []byte
		expiresAt *time.Time
	)
	err := s.db.Pool.QueryRow(context.Background(), q, key).Scan(&data, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if expiresAt != nil && time.Now().After(*expiresAt) {
		_ = s.Delete(key)
		return nil, nil
	}
	return data, nil
}

// Set upserts the payload for key. exp <= 0 stores a session without expiry.
func (s *Storage) Set(key string, val []byte, exp time.Duration) error {
	var expiresAt *time.Time
	if exp > 0 {
		t := time.Now().Add(exp)
		expiresAt = &t
	}
	const q = `
INSERT INTO sessions (id, data, expires_at)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data, expires_at=EXCLUDED.expires_at`
	_, err := s.db.Pool.Exec(context.Background(), q, key, val, expiresAt)
	return err
}

// Delete removes a session row.
func (s *Storage) Delete(key string) error {
	_, err := s.db.Pool.Exec(context.Background(), `DELETE FROM sessions WHERE id=$1`, key)
	return err
}

// Reset removes all sessions.
func (s *Storage) Reset() error {
	_, err := s.db.Pool.Exec(context.Background(), `DELETE FROM sessions`)
	return err
}

// Close is a no-op; the pool is owned by the caller.
func (s *Storage) Close() error { return nil }
