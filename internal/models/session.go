package models

import (
	"time"

	"github.com/google/uuid"
)

// Session identifies an authenticated user for the duration of one
// interaction. It is passed explicitly to operations that need to know
// who is acting; there is no ambient current-user state.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSession creates a session for the given account
func NewSession(account *Account) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Username:  account.Username,
		Role:      account.Role,
		CreatedAt: time.Now(),
	}
}

// IsAdmin reports whether the session belongs to an admin account
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
