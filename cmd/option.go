package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

type optionCmd struct {
	expiry   string
	strike   float64
	kind     string
	price    float64
	vol      float64
	rate     float64
	on       string
	engine   string
	steps    int
	spot     float64
	dividend float64
	currency string
}

func (*optionCmd) Name() string     { return "option" }
func (*optionCmd) Synopsis() string { return "value an option, its greeks and implied volatility" }
func (*optionCmd) Usage() string {
	return `fin option -expiry <date> -strike <strike> [-type call|put] [-price <price>] [-vol <vol>] [options] [<ticker>]

  Values a European option on ticker. Without -vol, the volatility is the
  historical volatility over as many daily returns as there are days to
  expiration. With -price, the implied volatility is printed too.

  With -spot (and -dividend), the underlying is not fetched and ticker is
  optional, -vol is then required.

  Rates and volatilities are decimals: 0.26 for 26%.
`
}

func (c *optionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.expiry, "expiry", "", "Expiration date of the option (required).")
	f.Float64Var(&c.strike, "strike", 0, "Strike price (required).")
	f.StringVar(&c.kind, "type", "call", "Option type: c, call, p or put.")
	f.Float64Var(&c.price, "price", 0, "Market price of the option, to compute the implied volatility.")
	f.Float64Var(&c.vol, "vol", 0, "Volatility to value the option with (defaults to the historical volatility).")
	f.Float64Var(&c.rate, "rate", finance.DefaultInterestRate, "Annual risk free interest rate.")
	f.StringVar(&c.on, "on", "", "Valuation date (defaults to today).")
	f.StringVar(&c.engine, "engine", "merton", "Pricing engine: merton or binomial.")
	f.IntVar(&c.steps, "steps", finance.DefaultBinomialSteps, "Number of steps of the binomial engine.")
	f.Float64Var(&c.spot, "spot", 0, "Price of the underlying, instead of fetching it.")
	f.Float64Var(&c.dividend, "dividend", 0, "Annual dividend of the underlying, used with -spot.")
	f.StringVar(&c.currency, "currency", "", "Currency of prices, used with -spot.")
}

// quoted is an underlying given on the command line.
type quoted struct{ spot, dividend float64 }

func (q quoted) Price() (float64, error)          { return q.spot, nil }
func (q quoted) AnnualDividend() (float64, error) { return q.dividend, nil }
func (q quoted) HistoricalVolatility(int, *date.Date) (float64, error) {
	return 0, errors.New("no price history for an underlying given with -spot, use -vol")
}

func (c *optionCmd) oracle() (finance.PriceOracle, error) {
	switch c.engine {
	case "merton":
		return finance.Merton{}, nil
	case "binomial":
		return finance.Binomial{Steps: c.steps}, nil
	default:
		return nil, fmt.Errorf("unknown engine %q, want merton or binomial", c.engine)
	}
}

func (c *optionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.expiry == "" || !isSet(f, "strike") {
		fmt.Fprintln(f.Output(), "Error: -expiry and -strike are required.")
		return subcommands.ExitUsageError
	}
	expiry, err := date.Parse(c.expiry)
	if err != nil {
		return fail(err)
	}
	oracle, err := c.oracle()
	if err != nil {
		return fail(err)
	}

	opts := []finance.OptionOpt{finance.WithInterestRate(c.rate), finance.WithOracle(oracle)}
	if isSet(f, "price") {
		opts = append(opts, finance.WithPrice(c.price))
	}
	if isSet(f, "vol") {
		opts = append(opts, finance.WithVolatility(c.vol))
	}
	if c.on != "" {
		on, err := date.Parse(c.on)
		if err != nil {
			return fail(err)
		}
		opts = append(opts, finance.WithValuationDate(on))
	}

	var underlying finance.Underlying
	name, cur := "", c.currency
	if isSet(f, "spot") {
		underlying, name = quoted{c.spot, c.dividend}, f.Arg(0)
	} else {
		e, err := equity(f)
		if err != nil {
			return fail(err)
		}
		underlying, name, cur = e, e.Ticker, currency(e)
	}

	o, err := finance.NewOption(underlying, expiry, c.strike, c.kind, opts...)
	if err != nil {
		return fail(err)
	}
	r, err := finance.NewOptionReport(name, o)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.OptionMarkdown(r, cur))
	return subcommands.ExitSuccess
}
