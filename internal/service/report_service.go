package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/repository"
)

// SummaryHeader is the fixed header row of every summary export
var SummaryHeader = []string{"Pay Period Start", "Employee", "Total Hours", "Total Pay"}

// reportService is the concrete implementation of ReportService
type reportService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newReportService creates a new ReportService
func newReportService(repos *repository.Repositories, log zerolog.Logger) *reportService {
	return &reportService{
		repos: repos,
		log:   log.With().Str("service", "report").Logger(),
	}
}

// Logs returns the full shift log for the admin view
func (s *reportService) Logs(ctx context.Context, session *models.Session) ([]models.LogEntry, error) {
	if !session.IsAdmin() {
		return nil, models.ErrNotAdmin
	}
	return s.repos.Log.All(ctx)
}

// Summary aggregates the shift log into per-period-per-employee totals.
// Rows are ordered by ascending period, then username.
func (s *reportService) Summary(ctx context.Context, session *models.Session) ([]models.SummaryRow, error) {
	if !session.IsAdmin() {
		return nil, models.ErrNotAdmin
	}

	logs, err := s.repos.Log.All(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.repos.Account.All(ctx)
	if err != nil {
		return nil, err
	}

	rates := make(map[string]float64, len(accounts))
	for _, a := range accounts {
		rates[a.Username] = a.HourlyRate
	}

	type groupKey struct {
		period   string
		username string
	}
	minutes := make(map[groupKey]int)
	for _, entry := range logs {
		minutes[groupKey{entry.PayPeriodStart, entry.Username}] += entry.MinutesWorked
	}

	rows := make([]models.SummaryRow, 0, len(minutes))
	for key, total := range minutes {
		hours := round2(float64(total) / 60)
		// Missing account or unset rate pays zero
		pay := round2(hours * rates[key.username])
		rows = append(rows, models.SummaryRow{
			PayPeriodStart: key.period,
			Username:       key.username,
			TotalHours:     hours,
			TotalPay:       pay,
		})
	}

	// ISO dates sort lexicographically in chronological order
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PayPeriodStart != rows[j].PayPeriodStart {
			return rows[i].PayPeriodStart < rows[j].PayPeriodStart
		}
		return rows[i].Username < rows[j].Username
	})

	s.log.Debug().Int("rows", len(rows)).Msg("Summary generated")
	return rows, nil
}

// ExportSummary writes the summary in the requested format
func (s *reportService) ExportSummary(ctx context.Context, session *models.Session, w io.Writer, format string) error {
	rows, err := s.Summary(ctx, session)
	if err != nil {
		return err
	}

	s.log.Info().Str("format", format).Int("rows", len(rows)).Msg("Exporting summary")

	switch format {
	case "csv":
		return writeSummaryCSV(w, rows)
	case "json":
		return writeSummaryJSON(w, rows)
	case "xlsx":
		return writeSummaryXLSX(w, rows)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeSummaryCSV(w io.Writer, rows []models.SummaryRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(SummaryHeader); err != nil {
		return err
	}
	for _, row := range rows {
		err := writer.Write([]string{
			row.PayPeriodStart,
			row.Username,
			strconv.FormatFloat(row.TotalHours, 'f', 2, 64),
			strconv.FormatFloat(row.TotalPay, 'f', 2, 64),
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeSummaryJSON(w io.Writer, rows []models.SummaryRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func writeSummaryXLSX(w io.Writer, rows []models.SummaryRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := make([]interface{}, len(SummaryHeader))
	for i, h := range SummaryHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{row.PayPeriodStart, row.Username, row.TotalHours, row.TotalPay}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
