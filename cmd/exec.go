package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
)

type execCmd struct{}

func (*execCmd) Name() string     { return "exec" }
func (*execCmd) Synopsis() string { return "run one budget command line" }
func (*execCmd) Usage() string {
	return `exec <command line...>

Run a single budget command and print its messages.

Usage Examples:
$ budgetbot exec budget food 200 20/12 1m
$ budgetbot exec food 1.99 greggs
`
}

func (c *execCmd) SetFlags(f *flag.FlagSet) {}

func (c *execCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no command line given")
		return subcommands.ExitUsageError
	}

	dispatcher, closeStore, err := OpenDispatcher(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	messages, err := dispatcher.Process(ctx, strings.Join(f.Args(), " "), time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	for _, m := range messages {
		fmt.Println(m)
	}
	return subcommands.ExitSuccess
}
