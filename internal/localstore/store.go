// Package localstore is the durable client-local storage surface: three keys
// (session token, serialized identity, language) persisted across restarts.
// Each key has a single logical writer; readers may be anywhere.
package localstore

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	_ "modernc.org/sqlite"
)

// The entire persisted state surface.
const (
	KeyToken    = "token"
	KeyUser     = "user"
	KeyLanguage = "language"
)

var ErrNoValue = errors.New("no value")

// KV is the durable key-value contract consumed by the session holder and the
// locale resolver.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the single-file store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite store")
	}

	if _, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to init kv table")
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoValue
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

// Delete is idempotent; deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
