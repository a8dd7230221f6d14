package main

import (
	"errors"
	"os"

	"github.com/stamp-labs/stamp/internal/cli"
	"github.com/stamp-labs/stamp/internal/scaffold"
	"github.com/stamp-labs/stamp/internal/template"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes. Scripts drive this tool, so each failure class gets its own code.
const (
	exitOK       = 0
	exitFailure  = 1 // copy I/O failure or any other error
	exitConflict = 2 // destination exists with content, no --force
	exitNoSource = 3 // bundled template root unresolvable
)

func main() {
	os.Exit(run())
}

func run() int {
	err := cli.Execute(version, commit, date)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, scaffold.ErrDestinationConflict):
		return exitConflict
	case errors.Is(err, template.ErrTemplateNotFound):
		return exitNoSource
	default:
		return exitFailure
	}
}
