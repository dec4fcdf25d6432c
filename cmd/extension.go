package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

const (
	EnvStore    = "BUDGETBOT_STORE"
	EnvDir      = "BUDGETBOT_DIR"
	EnvCurrency = "BUDGETBOT_CURRENCY"
)

// RunExtension attempts to find and execute an external budgetbot-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) otherwise.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "budgetbot-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// extensions see the same configuration this process resolved
	cfg, err := LoadConfig()
	if err == nil {
		cmd.Env = append(os.Environ(),
			EnvStore+"="+cfg.Store,
			EnvDir+"="+cfg.Dir,
			EnvCurrency+"="+cfg.Currency,
		)
	}

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
