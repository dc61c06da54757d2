package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/timeclock/internal/models"
)

func seedLog(t *testing.T, repos interface {
	Append(ctx context.Context, entry models.LogEntry) error
}, entries []models.LogEntry) {
	t.Helper()
	for _, e := range entries {
		if err := repos.Append(context.Background(), e); err != nil {
			t.Fatalf("failed to seed log entry: %v", err)
		}
	}
}

func TestSummaryAggregation(t *testing.T) {
	ctx := context.Background()
	repos, services := newTestEnv(t)
	admin := adminSession(t, services)
	addEmployee(t, services, "jane", 20)
	addEmployee(t, services, "john", 18)

	seedLog(t, repos.Log, []models.LogEntry{
		{Username: "jane", Date: "2024-03-10", MinutesWorked: 470, PayPeriodStart: "2024-03-01"},
		{Username: "jane", Date: "2024-03-12", MinutesWorked: 480, PayPeriodStart: "2024-03-01"},
		{Username: "john", Date: "2024-03-10", MinutesWorked: 480, PayPeriodStart: "2024-03-01"},
		{Username: "jane", Date: "2024-03-16", MinutesWorked: 240, PayPeriodStart: "2024-03-15"},
		// Entry left behind by a deleted account: pays zero
		{Username: "ghost", Date: "2024-03-10", MinutesWorked: 60, PayPeriodStart: "2024-03-01"},
	})

	rows, err := services.Report.Summary(ctx, admin)
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}

	want := []models.SummaryRow{
		{PayPeriodStart: "2024-03-01", Username: "ghost", TotalHours: 1, TotalPay: 0},
		{PayPeriodStart: "2024-03-01", Username: "jane", TotalHours: 15.83, TotalPay: 316.6},
		{PayPeriodStart: "2024-03-01", Username: "john", TotalHours: 8, TotalPay: 144},
		{PayPeriodStart: "2024-03-15", Username: "jane", TotalHours: 4, TotalPay: 80},
	}
	if len(rows) != len(want) {
		t.Fatalf("Summary() returned %d rows, want %d: %+v", len(rows), len(want), rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestSummaryRounding(t *testing.T) {
	ctx := context.Background()
	repos, services := newTestEnv(t)
	admin := adminSession(t, services)
	addEmployee(t, services, "jane", 20)

	// 470 minutes is 7.8333... hours; rounds to 7.83
	seedLog(t, repos.Log, []models.LogEntry{
		{Username: "jane", Date: "2024-03-10", MinutesWorked: 470, PayPeriodStart: "2024-03-01"},
	})

	rows, err := services.Report.Summary(ctx, admin)
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Summary() returned %d rows, want 1", len(rows))
	}
	if rows[0].TotalHours != 7.83 {
		t.Errorf("TotalHours = %v, want 7.83", rows[0].TotalHours)
	}
	if rows[0].TotalPay != 156.6 {
		t.Errorf("TotalPay = %v, want 156.60", rows[0].TotalPay)
	}
}

func TestLogs(t *testing.T) {
	ctx := context.Background()
	repos, services := newTestEnv(t)
	admin := adminSession(t, services)
	employee := addEmployee(t, services, "jane", 20)

	seedLog(t, repos.Log, []models.LogEntry{
		{Username: "jane", Date: "2024-03-10", MinutesWorked: 480, PayPeriodStart: "2024-03-01"},
		{Username: "john", Date: "2024-03-10", MinutesWorked: 450, PayPeriodStart: "2024-03-01"},
	})

	entries, err := services.Report.Logs(ctx, admin)
	if err != nil {
		t.Fatalf("Logs() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Logs() returned %d entries, want 2", len(entries))
	}

	if _, err := services.Report.Logs(ctx, employee); !errors.Is(err, models.ErrNotAdmin) {
		t.Errorf("Logs() as employee error = %v, want ErrNotAdmin", err)
	}
}

func TestSummaryRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	_, services := newTestEnv(t)
	employee := addEmployee(t, services, "jane", 20)

	if _, err := services.Report.Summary(ctx, employee); !errors.Is(err, models.ErrNotAdmin) {
		t.Errorf("Summary() as employee error = %v, want ErrNotAdmin", err)
	}
}

func TestExportSummaryCSV(t *testing.T) {
	ctx := context.Background()
	repos, services := newTestEnv(t)
	admin := adminSession(t, services)
	addEmployee(t, services, "jane", 20)

	seedLog(t, repos.Log, []models.LogEntry{
		{Username: "jane", Date: "2024-03-10", MinutesWorked: 470, PayPeriodStart: "2024-03-01"},
	})

	var buf bytes.Buffer
	if err := services.Report.ExportSummary(ctx, admin, &buf, "csv"); err != nil {
		t.Fatalf("ExportSummary(csv) failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv export has %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Pay Period Start,Employee,Total Hours,Total Pay" {
		t.Errorf("csv header = %q", lines[0])
	}
	if lines[1] != "2024-03-01,jane,7.83,156.60" {
		t.Errorf("csv row = %q", lines[1])
	}
}

func TestExportSummaryCSVQuotesDelimiters(t *testing.T) {
	ctx := context.Background()
	repos, services := newTestEnv(t)
	admin := adminSession(t, services)

	// Username containing the delimiter must come back quoted
	seedLog(t, repos.Log, []models.LogEntry{
		{Username: "doe, jane", Date: "2024-03-10", MinutesWorked: 60, PayPeriodStart: "2024-03-01"},
	})

	var buf bytes.Buffer
	if err := services.Report.ExportSummary(ctx, admin, &buf, "csv"); err != nil {
		t.Fatalf("ExportSummary(csv) failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"doe, jane"`) {
		t.Errorf("embedded delimiter not quoted:\n%s", buf.String())
	}
}

func TestExportSummaryJSON(t *testing.T) {
	ctx := context.Background()
	repos, services := newTestEnv(t)
	admin := adminSession(t, services)
	addEmployee(t, services, "jane", 20)

	seedLog(t, repos.Log, []models.LogEntry{
		{Username: "jane", Date: "2024-03-10", MinutesWorked: 480, PayPeriodStart: "2024-03-01"},
	})

	var buf bytes.Buffer
	if err := services.Report.ExportSummary(ctx, admin, &buf, "json"); err != nil {
		t.Fatalf("ExportSummary(json) failed: %v", err)
	}

	var rows []models.SummaryRow
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("json export does not decode: %v", err)
	}
	if len(rows) != 1 || rows[0].TotalHours != 8 || rows[0].TotalPay != 160 {
		t.Errorf("json rows = %+v", rows)
	}
}

func TestExportSummaryUnsupportedFormat(t *testing.T) {
	ctx := context.Background()
	_, services := newTestEnv(t)
	admin := adminSession(t, services)

	var buf bytes.Buffer
	if err := services.Report.ExportSummary(ctx, admin, &buf, "yaml"); err == nil {
		t.Error("ExportSummary(yaml) succeeded, want error")
	}
}
