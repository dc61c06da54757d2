package repository

import (
	"context"
	"errors"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/store"
)

// Seed values written on first run
const (
	SeedAdminUsername = "admin"
	SeedAdminPassword = "admin"
)

// EnsureDefaults makes sure the baseline documents exist: one admin
// account, default pay settings, an empty log list and an empty
// open-punch map. Existing documents are left untouched, so this is
// safe to call on every startup.
func (r *Repositories) EnsureDefaults(ctx context.Context) error {
	if missing, err := r.missing(ctx, store.KeyAccounts); err != nil {
		return err
	} else if missing {
		seed := []models.Account{{
			Username: SeedAdminUsername,
			Password: SeedAdminPassword,
			Role:     models.RoleAdmin,
		}}
		if err := store.Save(ctx, r.store, store.KeyAccounts, seed); err != nil {
			return err
		}
		r.log.Info().Str("username", SeedAdminUsername).Msg("Seeded default admin account")
	}

	if missing, err := r.missing(ctx, store.KeyPaySettings); err != nil {
		return err
	} else if missing {
		if err := store.Save(ctx, r.store, store.KeyPaySettings, models.DefaultPaySettings()); err != nil {
			return err
		}
		r.log.Info().Msg("Seeded default pay settings")
	}

	if missing, err := r.missing(ctx, store.KeyLogs); err != nil {
		return err
	} else if missing {
		if err := store.Save(ctx, r.store, store.KeyLogs, []models.LogEntry{}); err != nil {
			return err
		}
	}

	if missing, err := r.missing(ctx, store.KeyOpenPunches); err != nil {
		return err
	} else if missing {
		if err := store.Save(ctx, r.store, store.KeyOpenPunches, map[string]models.OpenPunch{}); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repositories) missing(ctx context.Context, key string) (bool, error) {
	_, err := r.store.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return true, nil
	}
	return false, err
}
