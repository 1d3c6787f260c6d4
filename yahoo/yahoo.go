// Package yahoo reads market data from Yahoo Finance.
package yahoo

import (
	"fmt"
	"log"
	"time"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	yfin "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/options"
	"github.com/piquette/finance-go/quote"
)

// Client is a finance.Source backed by Yahoo Finance.
//
// Yahoo does not publish dividends through this API, Dividends fails with finance.ErrUnsupported.
type Client struct{}

var (
	_ finance.Source      = Client{}
	_ finance.ChainSource = Client{}
)

// New returns a Yahoo Finance client.
func New() Client { return Client{} }

// DailyPrices returns the close and adjusted close of ticker over r.
func (Client) DailyPrices(ticker string, r date.Range) (close, adjusted date.History[float64], err error) {
	from, to := r.From.Time(), r.To.Add(1).Time()
	iter := chart.Get(&chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&from),
		End:      datetime.New(&to),
		Interval: datetime.OneDay,
	})
	var bars []yfin.ChartBar
	for iter.Next() {
		bars = append(bars, *iter.Bar())
	}
	if err := iter.Err(); err != nil {
		return close, adjusted, fmt.Errorf("cannot read chart of %s: %w", ticker, err)
	}
	close, adjusted = fromBars(bars, exchangeLocation(iter.Meta()))
	return close, adjusted, nil
}

// exchangeLocation returns the timezone of the exchange the chart was read from.
func exchangeLocation(meta yfin.ChartMeta) *time.Location {
	if meta.ExchangeTimezoneName != "" {
		loc, err := time.LoadLocation(meta.ExchangeTimezoneName)
		if err == nil {
			return loc
		}
		log.Printf("unknown exchange timezone %q (using its offset instead): %v", meta.ExchangeTimezoneName, err)
	}
	return time.FixedZone(meta.Timezone, meta.Gmtoffset)
}

// fromBars converts daily bars to close and adjusted close series.
//
// Bars are stamped at the market open, their day is the one at the exchange in loc.
func fromBars(bars []yfin.ChartBar, loc *time.Location) (close, adjusted date.History[float64]) {
	for _, b := range bars {
		on := date.Of(time.Unix(int64(b.Timestamp), 0).In(loc))
		close.Append(on, b.Close.InexactFloat64())
		adjusted.Append(on, b.AdjClose.InexactFloat64())
	}
	return close, adjusted
}

// Dividends implements finance.Source.
func (Client) Dividends(ticker string, r date.Range) (date.History[float64], error) {
	return date.History[float64]{}, fmt.Errorf("yahoo dividends of %s: %w", ticker, finance.ErrUnsupported)
}

// Quote returns the regular market price of ticker.
func (Client) Quote(ticker string) (float64, error) {
	q, err := quote.Get(ticker)
	if err != nil {
		return 0, fmt.Errorf("cannot quote %s: %w", ticker, err)
	}
	if q == nil {
		return 0, fmt.Errorf("cannot quote %s: unknown symbol", ticker)
	}
	return q.RegularMarketPrice, nil
}

// OptionChain returns the contracts listed on ticker, for every expiry.
func (Client) OptionChain(ticker string) ([]finance.Contract, error) {
	iter := options.GetStraddle(ticker)
	contracts, err := readStraddles(iter)
	if err != nil {
		return nil, fmt.Errorf("cannot read options of %s: %w", ticker, err)
	}
	meta := iter.Meta()
	if meta == nil {
		return contracts, nil
	}
	for _, exp := range meta.AllExpirationDates {
		if exp == meta.ExpirationDate {
			continue // already read
		}
		more, err := readStraddles(options.GetStraddleP(&options.Params{
			UnderlyingSymbol: ticker,
			Expiration:       datetime.FromUnix(exp),
		}))
		if err != nil {
			log.Printf("cannot read options of %s expiring on %v (skipped): %v", ticker, expiry(exp), err)
			continue
		}
		contracts = append(contracts, more...)
	}
	return contracts, nil
}

func readStraddles(iter *options.StraddleIter) ([]finance.Contract, error) {
	var contracts []finance.Contract
	for iter.Next() {
		contracts = append(contracts, fromStraddle(iter.Straddle())...)
	}
	return contracts, iter.Err()
}

// fromStraddle returns the call and the put of a straddle, if listed.
func fromStraddle(s *yfin.Straddle) []finance.Contract {
	var res []finance.Contract
	if s.Call != nil {
		res = append(res, fromContract(s.Call, finance.Call))
	}
	if s.Put != nil {
		res = append(res, fromContract(s.Put, finance.Put))
	}
	return res
}

func fromContract(c *yfin.Contract, kind finance.OptionType) finance.Contract {
	return finance.Contract{
		Symbol:            c.Symbol,
		Type:              kind,
		Strike:            c.Strike,
		Expiry:            expiry(c.Expiration),
		Last:              c.LastPrice,
		Bid:               c.Bid,
		Ask:               c.Ask,
		Volume:            c.Volume,
		OpenInterest:      c.OpenInterest,
		ImpliedVolatility: c.ImpliedVolatility,
	}
}

// expiry converts a Yahoo expiration timestamp, midnight UTC, to a date.
func expiry(unix int) date.Date { return date.Of(time.Unix(int64(unix), 0).UTC()) }
