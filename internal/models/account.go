package models

// Role identifies what an account is allowed to do
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// ValidRoles defines allowed account roles
var ValidRoles = map[Role]bool{
	RoleAdmin:    true,
	RoleEmployee: true,
}

// Account represents a user of the system. Username is the unique key.
// Accounts are created by an admin (or seeded on first run) and only
// ever deleted, never edited; deleting one cascades to its log entries.
type Account struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	Role       Role    `json:"role"`
	HourlyRate float64 `json:"hourly_rate,omitempty"`
	ShiftStart string  `json:"shift_start,omitempty"` // "HH:MM"
	ShiftEnd   string  `json:"shift_end,omitempty"`   // "HH:MM"
}

// IsAdmin reports whether the account has the admin role
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
