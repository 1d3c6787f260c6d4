package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finance"
	md "github.com/nao1215/markdown"
)

// OptionMarkdown renders the valuation of an option. Prices are in currency.
func OptionMarkdown(r *finance.OptionReport, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s %s %s %s", r.Name, r.Type, Money(r.Strike, currency), r.Expiry))
	doc.PlainText(fmt.Sprintf("Valued on %s, %d days to expiration.", r.Valuation, r.Days))

	doc.H2("Inputs")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Input", "Value"},
		Rows: [][]string{
			{"Spot", Money(r.Spot, currency)},
			{"Strike", Money(r.Strike, currency)},
			{"Annual Dividend", Money(r.Dividend, currency)},
			{"Interest Rate", percent(r.Rate)},
			{"Volatility", percent(r.Volatility)},
		},
	})

	doc.H2("Valuation")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Measure", "Value"},
		Rows: [][]string{
			{md.Bold("Value"), md.Bold(Money(r.Greeks.Value, currency))},
			{"Delta", number(r.Greeks.Delta)},
			{"Gamma", number(r.Greeks.Gamma)},
			{"Vega", number(r.Greeks.Vega)},
			{"Theta", number(r.Greeks.Theta)},
			{"Rho", number(r.Greeks.Rho)},
		},
	})

	if r.Price != nil {
		iv := "n/a"
		if r.ImpliedVolatility != nil {
			iv = percent(*r.ImpliedVolatility)
		}
		doc.H2("Market")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Measure", "Value"},
			Rows: [][]string{
				{"Price", Money(*r.Price, currency)},
				{"Implied Volatility", iv},
			},
		})
		if r.ImpliedVolatilityErr != nil {
			doc.PlainText(fmt.Sprintf("No implied volatility: %v.", r.ImpliedVolatilityErr))
		}
	}

	return doc.String()
}
