// Package timeutil holds the pure clock and pay-period arithmetic the
// punch and reporting services are built on.
package timeutil

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar-date format used in all persisted records
	DateLayout = "2006-01-02"
	// ClockLayout is the wall-clock format used in all persisted records
	ClockLayout = "15:04"
)

// TimeToMinutes converts an "HH:MM" string to minutes since midnight.
// No bounds validation: garbage in, garbage out.
func TimeToMinutes(clock string) int {
	hh, mm, _ := strings.Cut(clock, ":")
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return h*60 + m
}

// MinutesToTime converts minutes since midnight back to "HH:MM"
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDate renders t as a calendar-date string
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock renders t's wall-clock time as "HH:MM"
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// PayPeriodStart computes the first day of the pay period containing
// date. Among configured start days on or before date's day-of-month,
// the largest wins; when none qualify the largest start day is applied
// to the previous month. Either way the day is clamped to the target
// month's last valid day (start day 31 in a 30-day month becomes 30).
//
// startDays must be non-empty; the settings-save boundary enforces that.
func PayPeriodStart(date time.Time, startDays []int) time.Time {
	days := append([]int(nil), startDays...)
	sort.Ints(days)

	chosen := 0
	for _, d := range days {
		if d <= date.Day() {
			chosen = d
		}
	}

	year, month := date.Year(), date.Month()
	if chosen == 0 {
		// No start day on or before date: the period began last month
		prev := time.Date(year, month, 1, 0, 0, 0, 0, date.Location()).AddDate(0, 0, -1)
		year, month = prev.Year(), prev.Month()
		chosen = days[len(days)-1]
	}

	day := chosen
	if last := daysInMonth(year, month, date.Location()); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, date.Location())
}

func daysInMonth(year int, month time.Month, loc *time.Location) int {
	// Day zero of the following month is this month's last day
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
