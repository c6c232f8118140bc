package main

import (
	"fmt"
	"os"

	"github.com/wohlbier/taucmdr/internal/cli"
	"github.com/wohlbier/taucmdr/internal/prereq"
)

func main() {
	// The prerequisite check runs before any argument parsing; it is the
	// only structured error path in this tool.
	if r := prereq.Check(); !r.Ok() {
		fmt.Fprintln(os.Stderr, cli.PrereqBanner(r))
		os.Exit(cli.ExitPrereq)
	}
	os.Exit(cli.Run())
}
