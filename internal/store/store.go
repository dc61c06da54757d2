package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/timeclock/internal/config"
)

// ErrKeyNotFound is returned by Get when no document exists under the key.
var ErrKeyNotFound = errors.New("key not found")

// Document keys for the four persisted records
const (
	KeyAccounts    = "accounts"
	KeyPaySettings = "pay_settings"
	KeyLogs        = "logs"
	KeyOpenPunches = "open_punches"
)

// Store is a persistent string-keyed blob store. Set replaces the whole
// document under the key; there are no transactions across keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// New creates the store backend selected by configuration
func New(cfg *config.Config, log zerolog.Logger) (Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		return NewSQLite(cfg.Store.SQLitePath, log)
	case "postgres":
		return NewPostgres(&cfg.Database, cfg.Store.MigrationsPath, log)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}

// Load reads and decodes the document under key. A missing or corrupt
// document yields def; corruption is logged as a warning, never fatal.
func Load[T any](ctx context.Context, s Store, log zerolog.Logger, key string, def T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Warn().Err(err).Str("key", key).Msg("Failed to read document, using default")
		}
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Corrupt document, using default")
		return def
	}
	return v
}

// Save encodes v and writes it under key, replacing any previous value
func Save[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write document %s: %w", key, err)
	}
	return nil
}
