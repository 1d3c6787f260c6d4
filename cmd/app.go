// Package cmd implements the fin CLI application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/eodhd"
	"github.com/etnz/finance/yahoo"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "market data")
	}
	c.Register(&topicCmd{}, "help")
}

// Commands are the market data commands, in help order.
var Commands = []subcommands.Command{
	&priceCmd{},
	&historyCmd{},
	&dividendsCmd{},
	&volatilityCmd{},
	&optionCmd{},
	&chainCmd{},
	&profileCmd{},
	&searchCmd{},
}

const eodhd_api_key = "EODHD_API_KEY"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	provider    = flag.String("provider", "eodhd", "Market data provider: eodhd or yahoo.")
	eodhdApiKey = flag.String("eodhd-api-key", "", "EODHD API key to use for consuming EODHD.com API. This flag takes precedence over the "+eodhd_api_key+" environment variable. You can get one at https://eodhd.com/")
	Verbose     = flag.Bool("v", false, "Log provider requests on stderr.")
	raw         = flag.Bool("raw", false, "Print markdown as is, without terminal styling.")
)

// SetupLogging discards logs unless -v is set. Call it after flag.Parse().
func SetupLogging() {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// apiKey retrieves the EODHD API key from the command-line flag or the environment variable.
// It prioritizes the flag over the environment variable.
func apiKey() string {
	if *eodhdApiKey == "" {
		*eodhdApiKey = os.Getenv(eodhd_api_key)
	}
	return *eodhdApiKey
}

// newSource returns the market data source selected by -provider.
func newSource() (finance.Source, error) {
	switch *provider {
	case "eodhd":
		key := apiKey()
		if key == "" {
			return nil, fmt.Errorf("EODHD API key is not set. Use -eodhd-api-key flag or %s environment variable", eodhd_api_key)
		}
		return eodhd.New(key), nil
	case "yahoo":
		return yahoo.New(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q, want eodhd or yahoo", *provider)
	}
}

// equity returns the equity named by the single argument of f.
func equity(f *flag.FlagSet) (*finance.Equity, error) {
	if f.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one ticker, got %d arguments", f.NArg())
	}
	src, err := newSource()
	if err != nil {
		return nil, err
	}
	return finance.NewEquity(f.Arg(0), src), nil
}

// currency returns the currency e trades in, or "" if the source does not tell.
func currency(e *finance.Equity) string {
	p, err := e.Profile()
	if err != nil {
		log.Printf("no currency for %s: %v", e.Ticker, err)
		return ""
	}
	return p.Currency
}

// parseOptionalDate parses s, and returns nil for an empty string.
func parseOptionalDate(s string) (*date.Date, error) {
	if s == "" {
		return nil, nil
	}
	on, err := date.Parse(s)
	if err != nil {
		return nil, err
	}
	return &on, nil
}

// isSet reports whether the flag name was given on the command line.
func isSet(f *flag.FlagSet, name string) (set bool) {
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// printMarkdown prints md to stdout, styled for the terminal unless -raw is set.
func printMarkdown(md string) {
	if !*raw {
		out, err := glamour.Render(md, "dark")
		if err == nil {
			md = out
		} else {
			log.Printf("cannot render markdown (printing it raw): %v", err)
		}
	}
	fmt.Print(md)
}

// fail reports err on stderr.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
