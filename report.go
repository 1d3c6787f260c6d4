package finance

import (
	"errors"

	"github.com/etnz/finance/date"
)

// OptionReport is the valuation of an option, ready to render.
type OptionReport struct {
	Name       string
	Type       OptionType
	Strike     float64
	Expiry     date.Date
	Valuation  date.Date
	Days       int
	Spot       float64
	Dividend   float64
	Rate       float64
	Volatility float64
	Greeks     Greeks
	// Price is set when a market price is known. ImpliedVolatility is set
	// when it can be backed out of that price, otherwise ImpliedVolatilityErr
	// tells why.
	Price                *float64
	ImpliedVolatility    *float64
	ImpliedVolatilityErr error
}

// NewOptionReport values o. name identifies the underlying.
func NewOptionReport(name string, o *Option) (*OptionReport, error) {
	in, err := o.marketInputs()
	if err != nil {
		return nil, err
	}
	r := &OptionReport{
		Name:      name,
		Type:      o.kind,
		Strike:    o.strike,
		Expiry:    o.expiry,
		Valuation: o.valuation,
		Days:      o.DaysToExpiration(),
		Spot:      in.Spot,
		Dividend:  in.Dividend,
		Rate:      o.rate,
	}
	if price, ok := o.Price(); ok {
		r.Price = &price
		if iv, err := o.ImpliedVolatility(); err != nil {
			r.ImpliedVolatilityErr = err
		} else {
			r.ImpliedVolatility = &iv
		}
	}
	if r.Volatility, err = o.Volatility(); err != nil {
		return nil, err
	}
	if r.Greeks, err = o.Greeks(); err != nil {
		return nil, err
	}
	return r, nil
}

// DividendReport lists the dividends of an equity with the annual estimate.
type DividendReport struct {
	Ticker    string
	Dividends date.History[float64]
	Price     float64
	// Annual and Yield are zero when there are not enough dividends to estimate them.
	Annual float64
	Yield  float64
}

// NewDividendReport collects the dividends of e.
func NewDividendReport(e *Equity) (*DividendReport, error) {
	divs, err := e.Dividends()
	if err != nil {
		return nil, err
	}
	price, err := e.Price()
	if err != nil {
		return nil, err
	}
	r := &DividendReport{Ticker: e.Ticker, Dividends: divs, Price: price}
	r.Annual, err = AnnualDividend(divs)
	switch {
	case errors.Is(err, ErrInsufficientDividends):
	case err != nil:
		return nil, err
	default:
		r.Yield = r.Annual / price
	}
	return r, nil
}

// VolatilityReport holds the historical volatility of an equity over a window.
type VolatilityReport struct {
	Ticker     string
	Window     int
	AsOf       *date.Date
	Volatility float64
	// Rolling is only filled on demand.
	Rolling date.History[float64]
}

// NewVolatilityReport computes the volatility of e over window returns, and the rolling series if rolling is true.
func NewVolatilityReport(e *Equity, window int, asOf *date.Date, rolling bool) (*VolatilityReport, error) {
	vol, err := e.HistoricalVolatility(window, asOf)
	if err != nil {
		return nil, err
	}
	r := &VolatilityReport{Ticker: e.Ticker, Window: window, AsOf: asOf, Volatility: vol}
	if rolling {
		if r.Rolling, err = e.RollingHistoricalVolatility(window, asOf); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ChainReport is a selection of contracts of an option chain.
type ChainReport struct {
	Ticker    string
	Spot      float64
	Contracts []Contract
}

// NewChainReport selects contracts of type kind ("" for both) of e's option chain,
// and only the ones near the spot if near is true.
func NewChainReport(e *Equity, kind OptionType, near bool) (*ChainReport, error) {
	chain, err := e.Options()
	if err != nil {
		return nil, err
	}
	spot, err := e.Price()
	if err != nil {
		return nil, err
	}
	var contracts []Contract
	switch kind {
	case Call:
		contracts = chain.Calls()
	case Put:
		contracts = chain.Puts()
	default:
		contracts = chain.AllContracts()
	}
	if near {
		contracts = FilterNear(contracts, NearStrikes, spot)
	}
	return &ChainReport{Ticker: e.Ticker, Spot: spot, Contracts: contracts}, nil
}
