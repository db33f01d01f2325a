// switchctl evaluates values against a decision table.
//
// Usage:
//
//	switchctl [global options] <command> [arguments]
//
// Global options:
//
//	-t, --table      decision table file (.yaml, .yml or .json)
//	    --log-level  debug, info, warn or error (default: warn)
//
// Commands:
//
//	eval <value>...  print the result of each value
//	check            validate the table and report duplicate cases
//
// Exit codes:
//
//	0: success
//	1: evaluation or table error
//	2: usage error
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

var Version = "0.1.0-dev"

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "switchctl",
		Usage:     "evaluate values against a decision table",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "table",
				Aliases: []string{"t"},
				Usage:   "decision table file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level",
				Value: "warn",
			},
		},
		Commands: createCommands(),
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(stderr, err)
			}
		},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := createApp(stdout, stderr)

	if err := app.Run(ctx, args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "usage error: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
