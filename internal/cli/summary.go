package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

func (a *app) logsCommand() *cli.Command {
	return &cli.Command{
		Name:   "logs",
		Usage:  "show every completed shift (admin)",
		Action: a.logs,
	}
}

func (a *app) logs(ctx context.Context, cmd *cli.Command) error {
	session, err := a.login(ctx, cmd)
	if err != nil {
		return err
	}

	entries, err := a.services.Report.Logs(ctx, session)
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "EMPLOYEE\tDATE\tIN\tOUT\tMINUTES\tPAY PERIOD")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			e.Username, e.Date, e.PunchIn, e.PunchOut, e.MinutesWorked, e.PayPeriodStart)
	}
	return w.Flush()
}

func (a *app) summaryCommand() *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "aggregate hours and pay per pay period and employee",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: table, csv, json or xlsx",
				Value: "table",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "write to a file instead of stdout",
			},
		},
		Action: a.summary,
	}
}

func (a *app) summary(ctx context.Context, cmd *cli.Command) error {
	session, err := a.login(ctx, cmd)
	if err != nil {
		return err
	}

	format := cmd.String("format")
	if format == "table" {
		rows, err := a.services.Report.Summary(ctx, session)
		if err != nil {
			return err
		}

		w := newTable()
		fmt.Fprintln(w, "PAY PERIOD\tEMPLOYEE\tHOURS\tPAY")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\n",
				row.PayPeriodStart, row.Username, row.TotalHours, row.TotalPay)
		}
		return w.Flush()
	}

	var out io.Writer = os.Stdout
	if path := cmd.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return a.services.Report.ExportSummary(ctx, session, out, format)
}
