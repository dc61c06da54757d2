package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/repository"
	"github.com/timeclock/internal/timeutil"
)

// PunchInResult reports a recorded punch-in. Replaced carries the
// previous punch-in time when one for the same day was overwritten.
type PunchInResult struct {
	Date     string `json:"date"`
	PunchIn  string `json:"punch_in"`
	Replaced string `json:"replaced,omitempty"`
}

// punchService is the concrete implementation of PunchService
type punchService struct {
	repos *repository.Repositories
	log   zerolog.Logger
	now   func() time.Time
}

// newPunchService creates a new PunchService
func newPunchService(repos *repository.Repositories, log zerolog.Logger) *punchService {
	return &punchService{
		repos: repos,
		log:   log.With().Str("service", "punch").Logger(),
		now:   time.Now,
	}
}

// PunchIn records the start of a shift. A same-day open punch is
// overwritten (last write wins) but the replaced time is reported so
// the surface can warn; a stale punch from a previous day is discarded.
func (s *punchService) PunchIn(ctx context.Context, session *models.Session) (*PunchInResult, error) {
	now := s.now()
	today := timeutil.FormatDate(now)

	result := &PunchInResult{
		Date:    today,
		PunchIn: timeutil.FormatClock(now),
	}

	existing, err := s.repos.Punch.Get(ctx, session.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Date == today {
		result.Replaced = existing.PunchIn
		s.log.Warn().
			Str("username", session.Username).
			Str("previous", existing.PunchIn).
			Str("new", result.PunchIn).
			Msg("Existing punch-in for today replaced")
	}

	punch := models.OpenPunch{Date: today, PunchIn: result.PunchIn}
	if err := s.repos.Punch.Set(ctx, session.Username, punch); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("username", session.Username).
		Str("time", result.PunchIn).
		Msg("Punched in")
	return result, nil
}

// PunchOut completes today's shift: it computes the credited minutes
// and the owning pay period, deletes the open punch and appends an
// immutable log entry. Without an open punch dated today it reports
// ErrNoPunchIn and changes nothing.
func (s *punchService) PunchOut(ctx context.Context, session *models.Session) (*models.LogEntry, error) {
	now := s.now()
	today := timeutil.FormatDate(now)

	punch, err := s.repos.Punch.Get(ctx, session.Username)
	if err != nil {
		return nil, err
	}
	if punch == nil || punch.Date != today {
		return nil, models.ErrNoPunchIn
	}

	account, err := s.repos.Account.Get(ctx, session.Username)
	if err != nil {
		return nil, err
	}
	settings, err := s.repos.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	punchOut := timeutil.FormatClock(now)
	entry := models.LogEntry{
		Username:       session.Username,
		Date:           today,
		PunchIn:        punch.PunchIn,
		PunchOut:       punchOut,
		MinutesWorked:  WorkedMinutes(account.ShiftStart, account.ShiftEnd, punch.PunchIn, punchOut),
		PayPeriodStart: timeutil.FormatDate(timeutil.PayPeriodStart(now, settings.StartDays)),
	}

	if err := s.repos.Punch.Delete(ctx, session.Username); err != nil {
		return nil, err
	}
	if err := s.repos.Log.Append(ctx, entry); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("username", session.Username).
		Int("minutes_worked", entry.MinutesWorked).
		Str("pay_period_start", entry.PayPeriodStart).
		Msg("Punched out")
	return &entry, nil
}

// History returns the acting user's own log entries
func (s *punchService) History(ctx context.Context, session *models.Session) ([]models.LogEntry, error) {
	return s.repos.Log.ForUser(ctx, session.Username)
}

// WorkedMinutes computes the credited minutes for a shift. Credited
// time is anchored to the scheduled start, reduced by lateness (early
// arrival earns no bonus), capped at the scheduled end (staying late
// earns no overtime) and floored at zero.
func WorkedMinutes(schedStart, schedEnd, actualIn, actualOut string) int {
	ss := timeutil.TimeToMinutes(schedStart)
	se := timeutil.TimeToMinutes(schedEnd)
	ai := timeutil.TimeToMinutes(actualIn)
	ao := timeutil.TimeToMinutes(actualOut)

	late := ai - ss
	if late < 0 {
		late = 0
	}
	end := ao
	if end > se {
		end = se
	}

	worked := end - ss - late
	if worked < 0 {
		return 0
	}
	return worked
}
