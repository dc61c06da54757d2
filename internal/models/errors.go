package models

import "errors"

// Validation and configuration errors surfaced to the acting user.
// Each one aborts a single operation and leaves prior state intact.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAdmin           = errors.New("operation requires an admin account")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNoPunchIn          = errors.New("no punch-in found for today")
	ErrEmptyStartDays     = errors.New("pay period start days must not be empty")
	ErrInvalidStartDay    = errors.New("pay period start days must be between 1 and 31")
)
