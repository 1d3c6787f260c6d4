package finance

import (
	"errors"

	"github.com/etnz/finance/date"
)

// stock is an Underlying with fixed market data.
type stock struct {
	price    float64
	dividend float64
	vol      float64

	// volCalls counts calls to HistoricalVolatility.
	volCalls int
	// volDays and volAsOf record the last HistoricalVolatility arguments.
	volDays int
	volAsOf *date.Date
}

func (s *stock) Price() (float64, error)          { return s.price, nil }
func (s *stock) AnnualDividend() (float64, error) { return s.dividend, nil }
func (s *stock) HistoricalVolatility(days int, asOf *date.Date) (float64, error) {
	s.volCalls++
	s.volDays, s.volAsOf = days, asOf
	return s.vol, nil
}

// ko is the stock used in option tests: Apple at the end of 2015, 115 paying 0.52 a quarter.
func ko() *stock { return &stock{price: 115, dividend: 2.08, vol: 0.26} }

// fakeSource is a Source serving in-memory data.
type fakeSource struct {
	close, adjusted date.History[float64]
	dividends       date.History[float64]
	quote           float64
	profile         *Profile
	contracts       []Contract

	// dailyCalls counts calls to DailyPrices.
	dailyCalls int
}

func (f *fakeSource) DailyPrices(ticker string, r date.Range) (close, adjusted date.History[float64], err error) {
	f.dailyCalls++
	return f.close, f.adjusted, nil
}

func (f *fakeSource) Dividends(ticker string, r date.Range) (date.History[float64], error) {
	return f.dividends, nil
}

func (f *fakeSource) Quote(ticker string) (float64, error) { return f.quote, nil }

// fullSource also serves profiles and option chains.
type fullSource struct{ *fakeSource }

func (f fullSource) Profile(ticker string) (Profile, error) {
	if f.profile == nil {
		return Profile{}, errors.New("no profile")
	}
	return *f.profile, nil
}

func (f fullSource) OptionChain(ticker string) ([]Contract, error) { return f.contracts, nil }

// series builds a daily history starting on 2025-01-01.
func series(values ...float64) date.History[float64] {
	var h date.History[float64]
	start := date.New(2025, 1, 1)
	for i, v := range values {
		h.Append(start.Add(i), v)
	}
	return h
}

func ptr[T any](v T) *T { return &v }
