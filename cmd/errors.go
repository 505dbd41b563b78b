package cmd

import (
	"context"
	"flag"

	"github.com/etnz/ledgerdash/renderer"
	"github.com/google/subcommands"
)

type errorsCmd struct{}

func (*errorsCmd) Name() string     { return "errors" }
func (*errorsCmd) Synopsis() string { return "list the transactions rejected for their date" }
func (*errorsCmd) Usage() string {
	return `ldash errors

  Lists the transactions whose date could not be read. They are left out of
  every report. Exits with status 1 if there is any.
`
}

func (*errorsCmd) SetFlags(*flag.FlagSet) {}

func (c *errorsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := openOrExit()
	if a == nil {
		return status
	}
	rejected := a.snapshot.Rejected()
	printMarkdown(renderer.ErrorsMarkdown(rejected))
	if len(rejected) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
