package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/store"
)

// punchRepo is the concrete implementation of PunchRepository
type punchRepo struct {
	store store.Store
	log   zerolog.Logger
}

// NewPunchRepo creates a new open-punch repository
func NewPunchRepo(s store.Store, log zerolog.Logger) PunchRepository {
	return &punchRepo{store: s, log: log}
}

// All returns the full open-punch map
func (r *punchRepo) All(ctx context.Context) (map[string]models.OpenPunch, error) {
	return store.Load(ctx, r.store, r.log, store.KeyOpenPunches, map[string]models.OpenPunch{}), nil
}

// Get returns the user's open punch, or nil when there is none
func (r *punchRepo) Get(ctx context.Context, username string) (*models.OpenPunch, error) {
	punches, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	if punch, ok := punches[username]; ok {
		return &punch, nil
	}
	return nil, nil
}

// Set records the user's open punch, replacing any existing one
func (r *punchRepo) Set(ctx context.Context, username string, punch models.OpenPunch) error {
	punches, err := r.All(ctx)
	if err != nil {
		return err
	}
	punches[username] = punch
	return store.Save(ctx, r.store, store.KeyOpenPunches, punches)
}

// Delete removes the user's open punch if present
func (r *punchRepo) Delete(ctx context.Context, username string) error {
	punches, err := r.All(ctx)
	if err != nil {
		return err
	}
	if _, ok := punches[username]; !ok {
		return nil
	}
	delete(punches, username)
	return store.Save(ctx, r.store, store.KeyOpenPunches, punches)
}
