package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/store"
)

// AccountRepository defines the interface for account data operations
type AccountRepository interface {
	All(ctx context.Context) ([]models.Account, error)
	Get(ctx context.Context, username string) (*models.Account, error)
	Add(ctx context.Context, account models.Account) error
	Delete(ctx context.Context, username string) error
}

// SettingsRepository defines the interface for the pay settings record
type SettingsRepository interface {
	Get(ctx context.Context) (models.PaySettings, error)
	Save(ctx context.Context, settings models.PaySettings) error
}

// LogRepository defines the interface for the immutable shift log
type LogRepository interface {
	All(ctx context.Context) ([]models.LogEntry, error)
	ForUser(ctx context.Context, username string) ([]models.LogEntry, error)
	Append(ctx context.Context, entry models.LogEntry) error
	DeleteForUser(ctx context.Context, username string) (int, error)
}

// PunchRepository defines the interface for the open-punch map
type PunchRepository interface {
	All(ctx context.Context) (map[string]models.OpenPunch, error)
	Get(ctx context.Context, username string) (*models.OpenPunch, error)
	Set(ctx context.Context, username string, punch models.OpenPunch) error
	Delete(ctx context.Context, username string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Account  AccountRepository
	Settings SettingsRepository
	Log      LogRepository
	Punch    PunchRepository

	store store.Store
	log   zerolog.Logger
}

// New creates all repositories backed by the given document store
func New(s store.Store, log zerolog.Logger) *Repositories {
	log = log.With().Str("component", "repository").Logger()
	return &Repositories{
		Account:  NewAccountRepo(s, log),
		Settings: NewSettingsRepo(s, log),
		Log:      NewLogRepo(s, log),
		Punch:    NewPunchRepo(s, log),
		store:    s,
		log:      log,
	}
}
