package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func (a *app) punchCommand() *cli.Command {
	return &cli.Command{
		Name:  "punch",
		Usage: "punch in and out",
		Commands: []*cli.Command{
			{
				Name:   "in",
				Usage:  "start a shift",
				Action: a.punchIn,
			},
			{
				Name:   "out",
				Usage:  "end today's shift",
				Action: a.punchOut,
			},
			{
				Name:   "history",
				Usage:  "show your completed shifts",
				Action: a.punchHistory,
			},
		},
	}
}

func (a *app) punchIn(ctx context.Context, cmd *cli.Command) error {
	session, err := a.login(ctx, cmd)
	if err != nil {
		return err
	}

	result, err := a.services.Punch.PunchIn(ctx, session)
	if err != nil {
		return err
	}

	if result.Replaced != "" {
		fmt.Fprintf(os.Stdout, "punched in at %s (replaced earlier punch-in at %s)\n",
			result.PunchIn, result.Replaced)
		return nil
	}
	fmt.Fprintf(os.Stdout, "punched in at %s\n", result.PunchIn)
	return nil
}

func (a *app) punchOut(ctx context.Context, cmd *cli.Command) error {
	session, err := a.login(ctx, cmd)
	if err != nil {
		return err
	}

	entry, err := a.services.Punch.PunchOut(ctx, session)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "punched out at %s, %d minutes credited (pay period %s)\n",
		entry.PunchOut, entry.MinutesWorked, entry.PayPeriodStart)
	return nil
}

func (a *app) punchHistory(ctx context.Context, cmd *cli.Command) error {
	session, err := a.login(ctx, cmd)
	if err != nil {
		return err
	}

	entries, err := a.services.Punch.History(ctx, session)
	if err != nil {
		return err
	}
	return renderEntries(entries)
}
