package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/repository"
	"github.com/timeclock/internal/validation"
)

// settingsService is the concrete implementation of SettingsService
type settingsService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newSettingsService creates a new SettingsService
func newSettingsService(repos *repository.Repositories, log zerolog.Logger) *settingsService {
	return &settingsService{
		repos: repos,
		log:   log.With().Str("service", "settings").Logger(),
	}
}

// Get returns the current pay-period settings
func (s *settingsService) Get(ctx context.Context) (models.PaySettings, error) {
	return s.repos.Settings.Get(ctx)
}

// Save validates and stores a new start-day set. The empty set is
// rejected here; the period calculator must never see one.
func (s *settingsService) Save(ctx context.Context, session *models.Session, days []int) (models.PaySettings, error) {
	if !session.IsAdmin() {
		return models.PaySettings{}, models.ErrNotAdmin
	}
	if err := validation.ValidateStartDays(days); err != nil {
		return models.PaySettings{}, err
	}

	// Store sorted distinct days
	seen := make(map[int]bool, len(days))
	distinct := make([]int, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			distinct = append(distinct, d)
		}
	}
	sort.Ints(distinct)

	settings := models.PaySettings{StartDays: distinct}
	if err := s.repos.Settings.Save(ctx, settings); err != nil {
		return models.PaySettings{}, err
	}

	s.log.Info().Ints("start_days", distinct).Msg("Pay settings saved")
	return settings, nil
}
