package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/renderer"
	"github.com/gocarina/gocsv"
	"github.com/google/subcommands"
)

type volatilityCmd struct {
	days    int
	on      string
	rolling bool
	csv     bool
}

func (*volatilityCmd) Name() string     { return "volatility" }
func (*volatilityCmd) Synopsis() string { return "print the historical volatility" }
func (*volatilityCmd) Usage() string {
	return `fin volatility [-days <n>] [-on <date>] [-rolling] [-csv] <ticker>

  Prints the annualized standard deviation of the last <n> daily returns
  of ticker, up to the given date. With -rolling, also prints the
  volatility over a sliding window of <n> returns at every date.
`
}

func (c *volatilityCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "Number of daily returns in the window.")
	f.StringVar(&c.on, "on", "", "Last day of the window (defaults to the latest price).")
	f.BoolVar(&c.rolling, "rolling", false, "Also print the rolling volatility.")
	f.BoolVar(&c.csv, "csv", false, "Print the rolling volatility as CSV.")
}

// volatilityPoint is a row of CSV output.
type volatilityPoint struct {
	Date       date.Date `csv:"date"`
	Volatility float64   `csv:"volatility"`
}

func (c *volatilityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := equity(f)
	if err != nil {
		return fail(err)
	}
	asOf, err := parseOptionalDate(c.on)
	if err != nil {
		return fail(err)
	}
	r, err := finance.NewVolatilityReport(e, c.days, asOf, c.rolling || c.csv)
	if err != nil {
		return fail(err)
	}

	if c.csv {
		var rows []volatilityPoint
		for on, vol := range r.Rolling.Values() {
			rows = append(rows, volatilityPoint{on, vol})
		}
		if err := gocsv.Marshal(rows, os.Stdout); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.VolatilityMarkdown(r))
	return subcommands.ExitSuccess
}
