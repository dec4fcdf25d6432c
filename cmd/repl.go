package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/subcommands"
)

type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "interactive budget console" }
func (*replCmd) Usage() string {
	return `repl

Read budget commands from stdin, one per line, until EOF.
`
}

func (c *replCmd) SetFlags(f *flag.FlagSet) {}

func (c *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dispatcher, closeStore, err := OpenDispatcher(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Println()
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error reading input:", err)
			return subcommands.ExitFailure
		}

		messages, err := dispatcher.Process(ctx, line, time.Now())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			continue
		}
		for _, m := range messages {
			fmt.Println(m)
		}
	}
}
