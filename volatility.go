package finance

import (
	"fmt"
	"math"

	"github.com/etnz/finance/date"
	"gonum.org/v1/gonum/stat"
)

// TradingDays is the number of trading days per year used to annualize daily statistics.
const TradingDays = 252

// annualize is the factor from a daily to a yearly standard deviation.
var annualize = math.Sqrt(TradingDays)

// Returns computes the fractional change between consecutive prices.
//
// Each return is dated at the later of the two observations, so the result has
// one point less than prices.
func Returns(prices date.History[float64]) date.History[float64] {
	var returns date.History[float64]
	var prev float64
	first := true
	for on, price := range prices.Values() {
		if !first {
			returns.Append(on, (price-prev)/prev)
		}
		prev, first = price, false
	}
	return returns
}

// HistoricalVolatility returns the annualized sample standard deviation of the
// last windowDays returns, up to and including asOf when it is not nil.
//
// When fewer returns are available, all of them are used. A single return has
// no sample standard deviation: the result is NaN in that case, as it is for
// windowDays == 1.
func HistoricalVolatility(returns date.History[float64], windowDays int, asOf *date.Date) (float64, error) {
	if windowDays < 1 {
		return math.NaN(), fmt.Errorf("%w: got %d", ErrInvalidWindow, windowDays)
	}
	if asOf != nil {
		returns = returns.Until(*asOf)
	}
	window := returns.Tail(windowDays)
	return stat.StdDev(window.Points(), nil) * annualize, nil
}

// RollingHistoricalVolatility returns the annualized sample standard deviation
// of the trailing windowDays returns at every date, up to and including asOf
// when it is not nil.
//
// Dates with fewer than windowDays returns behind them are NaN.
func RollingHistoricalVolatility(returns date.History[float64], windowDays int, asOf *date.Date) (date.History[float64], error) {
	var rolling date.History[float64]
	if windowDays < 1 {
		return rolling, fmt.Errorf("%w: got %d", ErrInvalidWindow, windowDays)
	}
	if asOf != nil {
		returns = returns.Until(*asOf)
	}
	points := returns.Points()
	for i := range points {
		on, _ := returns.At(i)
		if i+1 < windowDays {
			rolling.Append(on, math.NaN())
			continue
		}
		rolling.Append(on, stat.StdDev(points[i+1-windowDays:i+1], nil)*annualize)
	}
	return rolling, nil
}
