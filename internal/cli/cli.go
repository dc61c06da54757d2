// Package cli is the interactive surface: thin command glue that logs
// the acting user in, invokes one core operation and renders the
// result. No business logic lives here.
package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/service"
)

type app struct {
	services *service.Services
	log      zerolog.Logger
}

// New builds the root command with all subcommands attached
func New(services *service.Services, log zerolog.Logger) *cli.Command {
	a := &app{services: services, log: log}

	return &cli.Command{
		Name:  "timeclock",
		Usage: "employee punch clock and payroll summaries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "user",
				Usage: "acting username",
			},
			&cli.StringFlag{
				Name:  "password",
				Usage: "acting user's password",
			},
		},
		Commands: []*cli.Command{
			a.employeeCommand(),
			a.punchCommand(),
			a.settingsCommand(),
			a.logsCommand(),
			a.summaryCommand(),
		},
	}
}

// login resolves the acting session from the root flags
func (a *app) login(ctx context.Context, cmd *cli.Command) (*models.Session, error) {
	return a.services.Auth.Login(ctx, cmd.String("user"), cmd.String("password"))
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func renderEntries(entries []models.LogEntry) error {
	w := newTable()
	fmt.Fprintln(w, "DATE\tIN\tOUT\tMINUTES\tPAY PERIOD")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			e.Date, e.PunchIn, e.PunchOut, e.MinutesWorked, e.PayPeriodStart)
	}
	return w.Flush()
}
