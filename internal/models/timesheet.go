package models

// PaySettings is the singleton record defining the recurring calendar
// days (1-31) on which a new pay period begins
type PaySettings struct {
	StartDays []int `json:"start_days"`
}

// DefaultPaySettings is seeded on first run: semi-monthly periods
func DefaultPaySettings() PaySettings {
	return PaySettings{StartDays: []int{1, 15}}
}

// LogEntry is one completed shift. Entries are immutable once created
// and are only ever removed by cascading account deletion.
type LogEntry struct {
	Username       string `json:"username"`
	Date           string `json:"date"`     // "YYYY-MM-DD"
	PunchIn        string `json:"punch_in"` // "HH:MM"
	PunchOut       string `json:"punch_out"`
	MinutesWorked  int    `json:"minutes_worked"`
	PayPeriodStart string `json:"pay_period_start"` // "YYYY-MM-DD"
}

// OpenPunch is the transient record of a punch-in awaiting its matching
// punch-out. At most one exists per user; a stale entry (earlier date)
// is ignored by punch-out and overwritten by the next punch-in.
type OpenPunch struct {
	Date    string `json:"date"`     // "YYYY-MM-DD"
	PunchIn string `json:"punch_in"` // "HH:MM"
}

// SummaryRow is one aggregated reporting row: total credited hours and
// pay for one employee within one pay period
type SummaryRow struct {
	PayPeriodStart string  `json:"pay_period_start"`
	Username       string  `json:"username"`
	TotalHours     float64 `json:"total_hours"`
	TotalPay       float64 `json:"total_pay"`
}
