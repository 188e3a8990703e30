package main

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/nextforge-dev/nextforge/internal/errors"
	"github.com/nextforge-dev/nextforge/internal/preflight"
	"github.com/nextforge-dev/nextforge/internal/toolchain"
	"github.com/nextforge-dev/nextforge/internal/ui"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cli bundles the dependencies the commands run against, so tests can
// swap the subprocess runner, the tool checker, and the terminal.
type cli struct {
	stdin   io.Reader
	printer *ui.Printer
	runner  toolchain.Runner
	checker *preflight.Checker
	isTTY   func() bool
}

func defaultCLI() *cli {
	return &cli{
		stdin:   os.Stdin,
		printer: ui.Default(),
		runner:  &toolchain.ExecRunner{},
		checker: preflight.New(),
		isTTY: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

func main() {
	if err := newRootCmd(defaultCLI()).Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}
