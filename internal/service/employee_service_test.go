package service

import (
	"context"
	"errors"
	"testing"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/repository"
)

func TestLogin(t *testing.T) {
	_, services := newTestEnv(t)
	addEmployee(t, services, "jane", 20)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
		wantRole models.Role
	}{
		{
			name:     "seeded admin",
			username: repository.SeedAdminUsername,
			password: repository.SeedAdminPassword,
			wantRole: models.RoleAdmin,
		},
		{
			name:     "employee",
			username: "jane",
			password: "secret",
			wantRole: models.RoleEmployee,
		},
		{
			name:     "wrong password",
			username: "jane",
			password: "nope",
			wantErr:  models.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "nobody",
			password: "secret",
			wantErr:  models.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := services.Auth.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() failed: %v", err)
			}
			if session.Username != tt.username || session.Role != tt.wantRole {
				t.Errorf("session = %+v, want user %s role %s", session, tt.username, tt.wantRole)
			}
			if session.ID == "" {
				t.Error("session has no ID")
			}
		})
	}
}

func TestAddEmployeeValidation(t *testing.T) {
	ctx := context.Background()
	_, services := newTestEnv(t)
	admin := adminSession(t, services)

	tests := []struct {
		name  string
		input models.NewEmployee
	}{
		{
			name:  "empty username",
			input: models.NewEmployee{Password: "x", ShiftStart: "09:00", ShiftEnd: "17:00"},
		},
		{
			name:  "empty password",
			input: models.NewEmployee{Username: "jane", ShiftStart: "09:00", ShiftEnd: "17:00"},
		},
		{
			name:  "negative rate",
			input: models.NewEmployee{Username: "jane", Password: "x", HourlyRate: -1, ShiftStart: "09:00", ShiftEnd: "17:00"},
		},
		{
			name:  "malformed shift start",
			input: models.NewEmployee{Username: "jane", Password: "x", ShiftStart: "9am", ShiftEnd: "17:00"},
		},
		{
			name:  "missing shift end",
			input: models.NewEmployee{Username: "jane", Password: "x", ShiftStart: "09:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := services.Employee.Add(ctx, admin, &tt.input); err == nil {
				t.Error("Add() succeeded, want validation error")
			}
		})
	}

	// Nothing beyond the seed admin was created
	accounts, err := services.Employee.List(ctx, admin)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(accounts) != 1 {
		t.Errorf("accounts = %d, want only the seed admin", len(accounts))
	}
}

func TestAddEmployeeDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	_, services := newTestEnv(t)
	admin := adminSession(t, services)
	addEmployee(t, services, "jane", 20)

	_, err := services.Employee.Add(ctx, admin, &models.NewEmployee{
		Username:   "jane",
		Password:   "other",
		ShiftStart: "08:00",
		ShiftEnd:   "16:00",
	})
	if !errors.Is(err, models.ErrDuplicateUsername) {
		t.Errorf("Add() error = %v, want ErrDuplicateUsername", err)
	}
}

func TestAddEmployeeRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	_, services := newTestEnv(t)
	employee := addEmployee(t, services, "jane", 20)

	_, err := services.Employee.Add(ctx, employee, &models.NewEmployee{
		Username:   "john",
		Password:   "x",
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
	})
	if !errors.Is(err, models.ErrNotAdmin) {
		t.Errorf("Add() as employee error = %v, want ErrNotAdmin", err)
	}
}

func TestDeleteEmployeeCascades(t *testing.T) {
	ctx := context.Background()
	repos, services := newTestEnv(t)
	admin := adminSession(t, services)
	addEmployee(t, services, "jane", 20)
	addEmployee(t, services, "john", 18)

	seedLog(t, repos.Log, []models.LogEntry{
		{Username: "jane", Date: "2024-03-10", MinutesWorked: 480, PayPeriodStart: "2024-03-01"},
		{Username: "john", Date: "2024-03-10", MinutesWorked: 480, PayPeriodStart: "2024-03-01"},
		{Username: "jane", Date: "2024-03-11", MinutesWorked: 450, PayPeriodStart: "2024-03-01"},
	})
	if err := repos.Punch.Set(ctx, "jane", models.OpenPunch{Date: "2024-03-12", PunchIn: "09:00"}); err != nil {
		t.Fatalf("failed to seed open punch: %v", err)
	}

	removed, err := services.Employee.Delete(ctx, admin, "jane")
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("Delete() removed %d log entries, want 2", removed)
	}

	// All and only jane's records are gone
	if _, err := repos.Account.Get(ctx, "jane"); !errors.Is(err, models.ErrAccountNotFound) {
		t.Errorf("account still present after delete: %v", err)
	}
	entries, _ := repos.Log.All(ctx)
	if len(entries) != 1 || entries[0].Username != "john" {
		t.Errorf("surviving log = %+v, want john's single entry", entries)
	}
	punch, _ := repos.Punch.Get(ctx, "jane")
	if punch != nil {
		t.Errorf("open punch survived account deletion: %+v", punch)
	}
}

func TestDeleteEmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	_, services := newTestEnv(t)
	admin := adminSession(t, services)

	if _, err := services.Employee.Delete(ctx, admin, "nobody"); !errors.Is(err, models.ErrAccountNotFound) {
		t.Errorf("Delete() error = %v, want ErrAccountNotFound", err)
	}
}
