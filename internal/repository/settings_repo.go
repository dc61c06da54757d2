package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/store"
)

// settingsRepo is the concrete implementation of SettingsRepository
type settingsRepo struct {
	store store.Store
	log   zerolog.Logger
}

// NewSettingsRepo creates a new pay settings repository
func NewSettingsRepo(s store.Store, log zerolog.Logger) SettingsRepository {
	return &settingsRepo{store: s, log: log}
}

// Get returns the pay settings; a missing or corrupt document reads as
// the defaults so the calculator never sees an empty start-day set
func (r *settingsRepo) Get(ctx context.Context) (models.PaySettings, error) {
	settings := store.Load(ctx, r.store, r.log, store.KeyPaySettings, models.DefaultPaySettings())
	if len(settings.StartDays) == 0 {
		return models.DefaultPaySettings(), nil
	}
	return settings, nil
}

// Save replaces the pay settings record
func (r *settingsRepo) Save(ctx context.Context, settings models.PaySettings) error {
	return store.Save(ctx, r.store, store.KeyPaySettings, settings)
}
