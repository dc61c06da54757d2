package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/repository"
)

// authService is the concrete implementation of AuthService
type authService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newAuthService creates a new AuthService
func newAuthService(repos *repository.Repositories, log zerolog.Logger) *authService {
	return &authService{
		repos: repos,
		log:   log.With().Str("service", "auth").Logger(),
	}
}

// Login checks the credentials and returns a fresh session. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	account, err := s.repos.Account.Get(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	if account.Password != password {
		return nil, models.ErrInvalidCredentials
	}

	session := models.NewSession(account)
	s.log.Debug().
		Str("username", session.Username).
		Str("role", string(session.Role)).
		Msg("Login succeeded")
	return session, nil
}
