package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

type profileCmd struct{}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "print the company profile" }
func (*profileCmd) Usage() string {
	return `fin profile <ticker>

  Prints the name, exchange, sector, industry and headcount of the
  company behind ticker. Requires the eodhd provider.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := equity(f)
	if err != nil {
		return fail(err)
	}
	p, err := e.Profile()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ProfileMarkdown(e.Ticker, p))
	return subcommands.ExitSuccess
}
