package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/timeclock/internal/models"
)

var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmployee validates admin-entered new-employee fields
func ValidateEmployee(e *models.NewEmployee) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(e.Username) == "" {
		errors = append(errors, ValidationError{Field: "username", Message: "username is required"})
	}
	if e.Password == "" {
		errors = append(errors, ValidationError{Field: "password", Message: "password is required"})
	}
	if e.HourlyRate < 0 {
		errors = append(errors, ValidationError{Field: "hourly_rate", Message: "hourly rate must not be negative", Value: e.HourlyRate})
	}
	if e.ShiftStart == "" {
		errors = append(errors, ValidationError{Field: "shift_start", Message: "shift start is required"})
	} else if !clockRegex.MatchString(e.ShiftStart) {
		errors = append(errors, ValidationError{Field: "shift_start", Message: "invalid HH:MM time", Value: e.ShiftStart})
	}
	if e.ShiftEnd == "" {
		errors = append(errors, ValidationError{Field: "shift_end", Message: "shift end is required"})
	} else if !clockRegex.MatchString(e.ShiftEnd) {
		errors = append(errors, ValidationError{Field: "shift_end", Message: "invalid HH:MM time", Value: e.ShiftEnd})
	}

	return errors
}

// ValidateStartDays checks a pay-period start-day set. An empty set is
// rejected here because the period calculator has no meaning without
// one; out-of-range days are rejected as ordinary validation failures.
func ValidateStartDays(days []int) error {
	if len(days) == 0 {
		return models.ErrEmptyStartDays
	}
	for _, d := range days {
		if d < 1 || d > 31 {
			return fmt.Errorf("%w: got %d", models.ErrInvalidStartDay, d)
		}
	}
	return nil
}

// ParseStartDays parses a comma-separated day list such as "1,15"
func ParseStartDays(raw string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", models.ErrInvalidStartDay, part)
		}
		days = append(days, day)
	}
	if err := ValidateStartDays(days); err != nil {
		return nil, err
	}
	return days, nil
}
