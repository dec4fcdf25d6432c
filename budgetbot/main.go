// budgetbot is a personal budgeting assistant driven by short free-text
// commands, from the console or Telegram.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/budgetbot/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

// builtins are the subcommand names, for shell completion and to tell an
// unknown subcommand from an extension call.
var builtins = []string{"repl", "exec", "bot", "assist", "topic", "help", "flags", "commands"}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if flag.NArg() > 0 && !isBuiltin(flag.Arg(0)) {
		if found, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func isBuiltin(name string) bool {
	for _, b := range builtins {
		if b == name {
			return true
		}
	}
	return false
}

// completion installs shell completion for the subcommands and exits when
// invoked by the shell, a no-op otherwise.
func completion() {
	sub := make(map[string]*complete.Command, len(builtins))
	for _, b := range builtins {
		sub[b] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete("budgetbot")
}
