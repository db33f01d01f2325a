package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ib-77/switch3/pkg/sw"
	"github.com/ib-77/switch3/pkg/sw/table"
)

// usageError marks bad arguments; run maps it to exit code 2.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func createCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "eval",
			Usage:     "evaluate values against the table",
			ArgsUsage: "<value>...",
			Action:    cmdEval,
		},
		{
			Name:   "check",
			Usage:  "validate the table",
			Action: cmdCheck,
		},
	}
}

func cmdEval(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return &usageError{msg: "eval needs at least one value"}
	}

	tbl, err := loadTable(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	for _, value := range cmd.Args().Slice() {
		d, err := tbl.Evaluate(value, sw.WithLogger(logger))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s -> %s (visited: %s)\n", d.Value, d.Result, strings.Join(d.Visited, ","))
	}
	return nil
}

func cmdCheck(_ context.Context, cmd *cli.Command) error {
	tbl, err := loadTable(cmd)
	if err != nil {
		return err
	}
	if err := tbl.Check(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.Root().Writer, "%s: %d cases ok\n", tbl.Name, len(tbl.Cases))
	return nil
}

func loadTable(cmd *cli.Command) (*table.Table, error) {
	path := cmd.String("table")
	if path == "" {
		return nil, &usageError{msg: "--table is required"}
	}
	return table.Load(path)
}

func newLogger(cmd *cli.Command) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
		return nil, &usageError{msg: fmt.Sprintf("invalid --log-level: %v", err)}
	}
	return slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: level})), nil
}
