package models

// NewEmployee carries the admin-entered fields for account creation
type NewEmployee struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	HourlyRate float64 `json:"hourly_rate"`
	ShiftStart string  `json:"shift_start"` // "HH:MM"
	ShiftEnd   string  `json:"shift_end"`   // "HH:MM"
}
