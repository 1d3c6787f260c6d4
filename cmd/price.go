package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/renderer"
	"github.com/gocarina/gocsv"
	"github.com/google/subcommands"
)

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "print the latest price of tickers" }
func (*priceCmd) Usage() string {
	return `fin price <ticker>...

  Prints the latest price of each ticker, one per line.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker is required.")
		return subcommands.ExitUsageError
	}
	src, err := newSource()
	if err != nil {
		return fail(err)
	}

	var errs []error
	for _, ticker := range f.Args() {
		price, err := finance.NewEquity(ticker, src).Price()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Printf("%s\t%v\n", ticker, price)
	}
	if err := errors.Join(errs...); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type historyCmd struct {
	from     string
	to       string
	adjusted bool
	csv      bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "print daily closing prices" }
func (*historyCmd) Usage() string {
	return `fin history [-from <date>] [-to <date>] [-adjusted] [-csv] <ticker>

  Prints the daily closing prices of ticker, adjusted for splits and
  dividends with -adjusted.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First day to print (defaults to 30 days ago).")
	f.StringVar(&c.to, "to", "", "Last day to print (defaults to today).")
	f.BoolVar(&c.adjusted, "adjusted", false, "Print the adjusted close instead of the close.")
	f.BoolVar(&c.csv, "csv", false, "Print as CSV instead of markdown.")
}

// pricePoint is a row of CSV output.
type pricePoint struct {
	Date  date.Date `csv:"date"`
	Price float64   `csv:"price"`
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := equity(f)
	if err != nil {
		return fail(err)
	}
	r := date.NewRange(date.Today().Add(-30), date.Today())
	if c.from != "" {
		if r.From, err = date.Parse(c.from); err != nil {
			return fail(err)
		}
	}
	if c.to != "" {
		if r.To, err = date.Parse(c.to); err != nil {
			return fail(err)
		}
	}

	prices, title := e.Close, "Close of "+e.Ticker
	if c.adjusted {
		prices, title = e.AdjClose, "Adjusted Close of "+e.Ticker
	}
	all, err := prices()
	if err != nil {
		return fail(err)
	}
	var selected date.History[float64]
	var rows []pricePoint
	for on, price := range all.Values() {
		if r.Contains(on) {
			selected.Append(on, price)
			rows = append(rows, pricePoint{on, price})
		}
	}

	if c.csv {
		if err := gocsv.Marshal(rows, os.Stdout); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.HistoryMarkdown(title, selected, currency(e)))
	return subcommands.ExitSuccess
}
