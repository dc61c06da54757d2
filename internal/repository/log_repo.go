package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/store"
)

// logRepo is the concrete implementation of LogRepository. Entries are
// append-only; the only removal path is the per-user cascade delete.
type logRepo struct {
	store store.Store
	log   zerolog.Logger
}

// NewLogRepo creates a new shift log repository
func NewLogRepo(s store.Store, log zerolog.Logger) LogRepository {
	return &logRepo{store: s, log: log}
}

// All returns every log entry in insertion order
func (r *logRepo) All(ctx context.Context) ([]models.LogEntry, error) {
	return store.Load(ctx, r.store, r.log, store.KeyLogs, []models.LogEntry{}), nil
}

// ForUser returns one user's log entries in insertion order
func (r *logRepo) ForUser(ctx context.Context, username string) ([]models.LogEntry, error) {
	entries, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.LogEntry
	for _, e := range entries {
		if e.Username == username {
			out = append(out, e)
		}
	}
	return out, nil
}

// Append adds a completed shift to the log
func (r *logRepo) Append(ctx context.Context, entry models.LogEntry) error {
	entries, err := r.All(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return store.Save(ctx, r.store, store.KeyLogs, entries)
}

// DeleteForUser removes all of one user's entries and reports how many
func (r *logRepo) DeleteForUser(ctx context.Context, username string) (int, error) {
	entries, err := r.All(ctx)
	if err != nil {
		return 0, err
	}

	kept := entries[:0]
	removed := 0
	for _, e := range entries {
		if e.Username == username {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if removed == 0 {
		return 0, nil
	}
	if err := store.Save(ctx, r.store, store.KeyLogs, kept); err != nil {
		return 0, err
	}
	return removed, nil
}
