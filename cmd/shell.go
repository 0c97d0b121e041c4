package cmd

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/etnz/inventory/shell"
	"github.com/google/subcommands"
)

// stdin feeds the interactive shell.
var stdin io.Reader = os.Stdin

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage the inventory from an interactive menu" }
func (*shellCmd) Usage() string {
	return `shell

  Starts the interactive menu. Choose 0 to exit.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (*shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sh := shell.New(OpenInventory(), stdin, stdout, settings.Currency)
	if err := sh.Run(ctx); err != nil {
		return fail("%v", err)
	}
	return subcommands.ExitSuccess
}
