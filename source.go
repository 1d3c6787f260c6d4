package finance

import "github.com/etnz/finance/date"

// Source provides market data for tickers.
type Source interface {
	// DailyPrices returns the close and the split and dividend adjusted close over r.
	DailyPrices(ticker string, r date.Range) (close, adjusted date.History[float64], err error)
	// Dividends returns the cash dividends per share by ex-dividend date over r.
	Dividends(ticker string, r date.Range) (date.History[float64], error)
	// Quote returns the latest traded price.
	Quote(ticker string) (float64, error)
}

// ProfileSource is a Source that also describes companies.
type ProfileSource interface {
	Profile(ticker string) (Profile, error)
}

// ChainSource is a Source that also lists option contracts.
type ChainSource interface {
	OptionChain(ticker string) ([]Contract, error)
}

// Profile describes the company behind a ticker.
type Profile struct {
	Name      string
	Exchange  string
	Currency  string
	Sector    string
	Industry  string
	Employees int
}
