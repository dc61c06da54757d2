package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/repository"
	"github.com/timeclock/internal/store"
)

// newTestEnv builds the full service stack on an in-memory store with
// the baseline records seeded
func newTestEnv(t *testing.T) (*repository.Repositories, *Services) {
	t.Helper()

	repos := repository.New(store.NewMemory(), zerolog.Nop())
	if err := repos.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("EnsureDefaults() failed: %v", err)
	}
	return repos, NewServices(repos, zerolog.Nop())
}

func adminSession(t *testing.T, services *Services) *models.Session {
	t.Helper()

	session, err := services.Auth.Login(context.Background(),
		repository.SeedAdminUsername, repository.SeedAdminPassword)
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	return session
}

// setClock pins the punch service's clock for deterministic tests
func setClock(t *testing.T, services *Services, at time.Time) {
	t.Helper()

	ps, ok := services.Punch.(*punchService)
	if !ok {
		t.Fatalf("unexpected PunchService implementation %T", services.Punch)
	}
	ps.now = func() time.Time { return at }
}

// addEmployee creates a standard 09:00-17:00 employee for tests
func addEmployee(t *testing.T, services *Services, username string, rate float64) *models.Session {
	t.Helper()

	ctx := context.Background()
	admin := adminSession(t, services)
	_, err := services.Employee.Add(ctx, admin, &models.NewEmployee{
		Username:   username,
		Password:   "secret",
		HourlyRate: rate,
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
	})
	if err != nil {
		t.Fatalf("failed to add employee %s: %v", username, err)
	}

	session, err := services.Auth.Login(ctx, username, "secret")
	if err != nil {
		t.Fatalf("employee login failed: %v", err)
	}
	return session
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()

	at, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return at
}
