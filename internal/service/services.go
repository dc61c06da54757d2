package service

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/repository"
)

// AuthService defines the interface for login
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
}

// EmployeeService defines the interface for account administration
type EmployeeService interface {
	Add(ctx context.Context, session *models.Session, input *models.NewEmployee) (*models.Account, error)
	Delete(ctx context.Context, session *models.Session, username string) (int, error)
	List(ctx context.Context, session *models.Session) ([]models.Account, error)
}

// SettingsService defines the interface for the pay-period settings
type SettingsService interface {
	Get(ctx context.Context) (models.PaySettings, error)
	Save(ctx context.Context, session *models.Session, days []int) (models.PaySettings, error)
}

// PunchService defines the interface for the punch clock
type PunchService interface {
	PunchIn(ctx context.Context, session *models.Session) (*PunchInResult, error)
	PunchOut(ctx context.Context, session *models.Session) (*models.LogEntry, error)
	History(ctx context.Context, session *models.Session) ([]models.LogEntry, error)
}

// ReportService defines the interface for summary reporting and export
type ReportService interface {
	Logs(ctx context.Context, session *models.Session) ([]models.LogEntry, error)
	Summary(ctx context.Context, session *models.Session) ([]models.SummaryRow, error)
	ExportSummary(ctx context.Context, session *models.Session, w io.Writer, format string) error
}

// Services holds all service interfaces
type Services struct {
	Auth     AuthService
	Employee EmployeeService
	Settings SettingsService
	Punch    PunchService
	Report   ReportService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Auth:     newAuthService(repos, log),
		Employee: newEmployeeService(repos, log),
		Settings: newSettingsService(repos, log),
		Punch:    newPunchService(repos, log),
		Report:   newReportService(repos, log),
	}
}
