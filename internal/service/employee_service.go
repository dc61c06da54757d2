package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/repository"
	"github.com/timeclock/internal/validation"
)

// employeeService is the concrete implementation of EmployeeService
type employeeService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newEmployeeService creates a new EmployeeService
func newEmployeeService(repos *repository.Repositories, log zerolog.Logger) *employeeService {
	return &employeeService{
		repos: repos,
		log:   log.With().Str("service", "employee").Logger(),
	}
}

// Add creates a new employee account from admin-entered fields
func (s *employeeService) Add(ctx context.Context, session *models.Session, input *models.NewEmployee) (*models.Account, error) {
	if !session.IsAdmin() {
		return nil, models.ErrNotAdmin
	}

	if errs := validation.ValidateEmployee(input); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid employee: %s", strings.Join(msgs, "; "))
	}

	account := models.Account{
		Username:   strings.TrimSpace(input.Username),
		Password:   input.Password,
		Role:       models.RoleEmployee,
		HourlyRate: input.HourlyRate,
		ShiftStart: input.ShiftStart,
		ShiftEnd:   input.ShiftEnd,
	}
	if err := s.repos.Account.Add(ctx, account); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", account.Username).Msg("Employee account created")
	return &account, nil
}

// Delete removes an account and cascades to its log entries and any
// open punch. Returns the number of log entries removed.
func (s *employeeService) Delete(ctx context.Context, session *models.Session, username string) (int, error) {
	if !session.IsAdmin() {
		return 0, models.ErrNotAdmin
	}

	if err := s.repos.Account.Delete(ctx, username); err != nil {
		return 0, err
	}

	removed, err := s.repos.Log.DeleteForUser(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("account deleted but log cleanup failed: %w", err)
	}
	if err := s.repos.Punch.Delete(ctx, username); err != nil {
		return removed, fmt.Errorf("account deleted but open punch cleanup failed: %w", err)
	}

	s.log.Info().
		Str("username", username).
		Int("log_entries_removed", removed).
		Msg("Account deleted")
	return removed, nil
}

// List returns every account
func (s *employeeService) List(ctx context.Context, session *models.Session) ([]models.Account, error) {
	if !session.IsAdmin() {
		return nil, models.ErrNotAdmin
	}
	return s.repos.Account.All(ctx)
}
