package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/timeclock/internal/models"
)

func (a *app) employeeCommand() *cli.Command {
	return &cli.Command{
		Name:  "employee",
		Usage: "manage employee accounts",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list all accounts",
				Action: a.employeeList,
			},
			{
				Name:  "add",
				Usage: "create an employee account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Usage: "new employee's username", Required: true},
					&cli.StringFlag{Name: "new-password", Usage: "new employee's password", Required: true},
					&cli.FloatFlag{Name: "rate", Usage: "hourly rate"},
					&cli.StringFlag{Name: "shift-start", Usage: "scheduled shift start (HH:MM)", Required: true},
					&cli.StringFlag{Name: "shift-end", Usage: "scheduled shift end (HH:MM)", Required: true},
				},
				Action: a.employeeAdd,
			},
			{
				Name:      "delete",
				Usage:     "delete an account and all of its log entries",
				ArgsUsage: "<username>",
				Action:    a.employeeDelete,
			},
		},
	}
}

func (a *app) employeeList(ctx context.Context, cmd *cli.Command) error {
	session, err := a.login(ctx, cmd)
	if err != nil {
		return err
	}

	accounts, err := a.services.Employee.List(ctx, session)
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "USERNAME\tROLE\tRATE\tSHIFT")
	for _, acc := range accounts {
		shift := ""
		if acc.ShiftStart != "" || acc.ShiftEnd != "" {
			shift = acc.ShiftStart + "-" + acc.ShiftEnd
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", acc.Username, acc.Role, acc.HourlyRate, shift)
	}
	return w.Flush()
}

func (a *app) employeeAdd(ctx context.Context, cmd *cli.Command) error {
	session, err := a.login(ctx, cmd)
	if err != nil {
		return err
	}

	input := &models.NewEmployee{
		Username:   cmd.String("username"),
		Password:   cmd.String("new-password"),
		HourlyRate: cmd.Float("rate"),
		ShiftStart: cmd.String("shift-start"),
		ShiftEnd:   cmd.String("shift-end"),
	}
	account, err := a.services.Employee.Add(ctx, session, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "created employee %s\n", account.Username)
	return nil
}

func (a *app) employeeDelete(ctx context.Context, cmd *cli.Command) error {
	username := cmd.Args().First()
	if username == "" {
		return fmt.Errorf("usage: employee delete <username>")
	}

	session, err := a.login(ctx, cmd)
	if err != nil {
		return err
	}

	removed, err := a.services.Employee.Delete(ctx, session, username)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "deleted %s and %d log entries\n", username, removed)
	return nil
}
