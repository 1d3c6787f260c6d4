package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finance"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

type chainCmd struct {
	near bool
	kind string
}

func (*chainCmd) Name() string     { return "chain" }
func (*chainCmd) Synopsis() string { return "print listed option contracts" }
func (*chainCmd) Usage() string {
	return `fin chain [-near] [-type call|put] <ticker>

  Prints the option contracts listed on ticker. With -near, only the
  contracts within 5 strikes of the current price. Requires the yahoo
  provider.
`
}

func (c *chainCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.near, "near", false, "Only print contracts within 5 strikes of the current price.")
	f.StringVar(&c.kind, "type", "", "Only print calls (c, call) or puts (p, put).")
}

func (c *chainCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var kind finance.OptionType
	if c.kind != "" {
		var err error
		if kind, err = finance.ParseOptionType(c.kind); err != nil {
			return fail(err)
		}
	}
	e, err := equity(f)
	if err != nil {
		return fail(err)
	}
	r, err := finance.NewChainReport(e, kind, c.near)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.ChainMarkdown(r, currency(e)))
	return subcommands.ExitSuccess
}
