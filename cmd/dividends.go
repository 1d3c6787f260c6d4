package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finance"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

type dividendsCmd struct{}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "print dividends, annual dividend and yield" }
func (*dividendsCmd) Usage() string {
	return `fin dividends <ticker>

  Prints the dividends paid by ticker, with the annual dividend
  extrapolated from the latest payment and the dividend yield.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {}

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := equity(f)
	if err != nil {
		return fail(err)
	}
	r, err := finance.NewDividendReport(e)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.DividendsMarkdown(r, currency(e)))
	return subcommands.ExitSuccess
}
