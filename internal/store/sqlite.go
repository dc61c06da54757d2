package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// sqliteStore keeps every document in a single two-column table
type sqliteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSQLite opens (or creates) the sqlite database file at path
func NewSQLite(path string, log zerolog.Logger) (Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// https://github.com/mattn/go-sqlite3#connection-string
	opts := []string{
		"_journal_mode=WAL",
		"_synchronous=NORMAL",
	}

	db, err := sql.Open("sqlite3", path+"?"+strings.Join(opts, "&"))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	_, err = db.Exec(`
		create table if not exists documents (
			key text primary key,
			value text not null,
			updated_at text not null default (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	s := &sqliteStore{
		db:  db,
		log: log.With().Str("component", "store").Str("driver", "sqlite").Logger(),
	}
	s.log.Info().Str("path", path).Msg("Document store opened")
	return s, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "select value from documents where key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		insert into documents (key, value, updated_at)
		values (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		on conflict (key) do update set
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value)
	return err
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
