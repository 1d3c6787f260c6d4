package renderer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders a price series.
func HistoryMarkdown(title string, prices date.History[float64], currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Price"},
		Rows:      [][]string{},
	}
	for on, price := range prices.Values() {
		table.Rows = append(table.Rows, []string{on.String(), Money(price, currency)})
	}
	doc.Table(table)
	return doc.String()
}

// DividendsMarkdown renders the dividends of an equity, with the annual estimate when known.
func DividendsMarkdown(r *finance.DividendReport, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Dividends of %s", r.Ticker))

	if r.Annual != 0 {
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"", ""},
			Rows: [][]string{
				{"Price", Money(r.Price, currency)},
				{md.Bold("Annual Dividend"), md.Bold(Money(r.Annual, currency))},
				{"Dividend Yield", percent(r.Yield)},
			},
		})
	} else {
		doc.PlainText("Not enough dividends to estimate the annual dividend.")
	}

	doc.H2("History")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Ex-Date", "Amount"},
		Rows:      [][]string{},
	}
	for on, amount := range r.Dividends.Values() {
		table.Rows = append(table.Rows, []string{on.String(), Money(amount, currency)})
	}
	doc.Table(table)
	return doc.String()
}

// VolatilityMarkdown renders the historical volatility, and the rolling series if any.
func VolatilityMarkdown(r *finance.VolatilityReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Historical Volatility of %s", r.Ticker))

	asOf := "latest"
	if r.AsOf != nil {
		asOf = r.AsOf.String()
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Window", "As Of", "Volatility"},
		Rows:      [][]string{{fmt.Sprintf("%d days", r.Window), asOf, md.Bold(volatility(r.Volatility))}},
	})

	if r.Rolling.Len() > 0 {
		doc.H2("Rolling")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Date", "Volatility"},
			Rows:      [][]string{},
		}
		for on, vol := range r.Rolling.Values() {
			table.Rows = append(table.Rows, []string{on.String(), volatility(vol)})
		}
		doc.Table(table)
	}
	return doc.String()
}

// volatility formats an annualized volatility, NaN when there are not enough returns.
func volatility(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return percent(v)
}

// ChainMarkdown renders option contracts.
func ChainMarkdown(r *finance.ChainReport, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Options on %s", r.Ticker))
	doc.PlainText(fmt.Sprintf("Spot: %s", Money(r.Spot, currency)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignRight,
			md.AlignRight, md.AlignRight, md.AlignRight,
			md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Expiry", "Type", "Strike", "Last", "Bid", "Ask", "Volume", "Open Interest", "IV"},
		Rows:   [][]string{},
	}
	for _, c := range r.Contracts {
		table.Rows = append(table.Rows, []string{
			c.Expiry.String(),
			string(c.Type),
			Money(c.Strike, currency),
			Money(c.Last, currency),
			Money(c.Bid, currency),
			Money(c.Ask, currency),
			fmt.Sprint(c.Volume),
			fmt.Sprint(c.OpenInterest),
			percent(c.ImpliedVolatility),
		})
	}
	doc.Table(table)
	return doc.String()
}
