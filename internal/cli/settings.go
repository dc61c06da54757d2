package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/timeclock/internal/validation"
)

func (a *app) settingsCommand() *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "view and change pay-period settings",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "show the configured pay-period start days",
				Action: a.settingsShow,
			},
			{
				Name:  "set-days",
				Usage: "set the pay-period start days",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "days",
						Usage:    "comma separated days of the month, e.g. \"1,15\"",
						Required: true,
					},
				},
				Action: a.settingsSetDays,
			},
		},
	}
}

func (a *app) settingsShow(ctx context.Context, cmd *cli.Command) error {
	settings, err := a.services.Settings.Get(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "pay period start days: %s\n", formatDays(settings.StartDays))
	return nil
}

func (a *app) settingsSetDays(ctx context.Context, cmd *cli.Command) error {
	days, err := validation.ParseStartDays(cmd.String("days"))
	if err != nil {
		return err
	}

	session, err := a.login(ctx, cmd)
	if err != nil {
		return err
	}

	settings, err := a.services.Settings.Save(ctx, session, days)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "pay period start days saved: %s\n", formatDays(settings.StartDays))
	return nil
}

func formatDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, ",")
}
