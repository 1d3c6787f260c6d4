package finance

import (
	"fmt"
	"math"
	"sync"

	"github.com/etnz/finance/date"
)

// StartDate is the first day of price history fetched for an Equity.
var StartDate = date.New(1990, 1, 1)

// Equity is a listed stock and the market data about it.
//
// Daily prices are fetched once, on first use, and kept for the life of the
// Equity. Every other accessor queries the Source.
type Equity struct {
	Ticker string
	source Source

	pricesOnce sync.Once
	close      date.History[float64]
	adjusted   date.History[float64]
	pricesErr  error
}

var _ Underlying = (*Equity)(nil)

// NewEquity returns the equity identified by ticker in source.
func NewEquity(ticker string, source Source) *Equity {
	return &Equity{Ticker: ticker, source: source}
}

func (e *Equity) history() date.Range { return date.NewRange(StartDate, date.Today()) }

func (e *Equity) dailyPrices() error {
	e.pricesOnce.Do(func() {
		e.close, e.adjusted, e.pricesErr = e.source.DailyPrices(e.Ticker, e.history())
		if e.pricesErr != nil {
			e.pricesErr = fmt.Errorf("cannot fetch daily prices of %s: %w", e.Ticker, e.pricesErr)
		}
	})
	return e.pricesErr
}

// Close returns the daily closing prices.
func (e *Equity) Close() (date.History[float64], error) {
	err := e.dailyPrices()
	return e.close, err
}

// AdjClose returns the daily closing prices adjusted for splits and dividends.
func (e *Equity) AdjClose() (date.History[float64], error) {
	err := e.dailyPrices()
	return e.adjusted, err
}

// Returns returns the daily returns of the adjusted close.
func (e *Equity) Returns() (date.History[float64], error) {
	adjusted, err := e.AdjClose()
	if err != nil {
		return adjusted, err
	}
	return Returns(adjusted), nil
}

// Dividends returns the cash dividends paid since StartDate, by ex-dividend date.
func (e *Equity) Dividends() (date.History[float64], error) {
	divs, err := e.source.Dividends(e.Ticker, e.history())
	if err != nil {
		return divs, fmt.Errorf("cannot fetch dividends of %s: %w", e.Ticker, err)
	}
	return divs, nil
}

// AnnualDividend estimates the cash dividend paid over a year.
func (e *Equity) AnnualDividend() (float64, error) {
	divs, err := e.Dividends()
	if err != nil {
		return 0, err
	}
	return AnnualDividend(divs)
}

// AnnualDividend extrapolates the latest dividend to a year.
//
// The payment frequency is guessed from the gap between the two latest
// dividends, so a special dividend or a change in frequency skews it.
func AnnualDividend(dividends date.History[float64]) (float64, error) {
	n := dividends.Len()
	if n < 2 {
		return 0, fmt.Errorf("%w: %d dividend(s), need at least 2", ErrInsufficientDividends, n)
	}
	previous, _ := dividends.At(n - 2)
	latest, amount := dividends.At(n - 1)
	timesPerYear := math.RoundToEven(365 / float64(latest.Sub(previous)))
	return timesPerYear * amount, nil
}

// DividendYield is the annual dividend over the current price.
func (e *Equity) DividendYield() (float64, error) {
	dividend, err := e.AnnualDividend()
	if err != nil {
		return 0, err
	}
	price, err := e.Price()
	if err != nil {
		return 0, err
	}
	return dividend / price, nil
}

// Price returns the latest traded price.
func (e *Equity) Price() (float64, error) {
	price, err := e.source.Quote(e.Ticker)
	if err != nil {
		return 0, fmt.Errorf("cannot fetch quote of %s: %w", e.Ticker, err)
	}
	return price, nil
}

// HistoricalVolatility returns the annualized volatility of the last days returns, up to asOf if not nil.
func (e *Equity) HistoricalVolatility(days int, asOf *date.Date) (float64, error) {
	returns, err := e.Returns()
	if err != nil {
		return 0, err
	}
	return HistoricalVolatility(returns, days, asOf)
}

// RollingHistoricalVolatility returns the annualized volatility over a sliding window of days returns.
func (e *Equity) RollingHistoricalVolatility(days int, asOf *date.Date) (date.History[float64], error) {
	returns, err := e.Returns()
	if err != nil {
		return returns, err
	}
	return RollingHistoricalVolatility(returns, days, asOf)
}

// Profile returns the company profile, if the source knows it.
func (e *Equity) Profile() (Profile, error) {
	ps, ok := e.source.(ProfileSource)
	if !ok {
		return Profile{}, fmt.Errorf("profile of %s: %w", e.Ticker, ErrUnsupported)
	}
	p, err := ps.Profile(e.Ticker)
	if err != nil {
		return p, fmt.Errorf("cannot fetch profile of %s: %w", e.Ticker, err)
	}
	return p, nil
}

func (e *Equity) Sector() (string, error) {
	p, err := e.Profile()
	return p.Sector, err
}

func (e *Equity) Industry() (string, error) {
	p, err := e.Profile()
	return p.Industry, err
}

func (e *Equity) Employees() (int, error) {
	p, err := e.Profile()
	return p.Employees, err
}

func (e *Equity) Name() (string, error) {
	p, err := e.Profile()
	return p.Name, err
}

// Options returns the listed option contracts on this equity.
func (e *Equity) Options() (*OptionChain, error) {
	cs, ok := e.source.(ChainSource)
	if !ok {
		return nil, fmt.Errorf("options of %s: %w", e.Ticker, ErrUnsupported)
	}
	contracts, err := cs.OptionChain(e.Ticker)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch options of %s: %w", e.Ticker, err)
	}
	return NewOptionChain(e, contracts), nil
}
