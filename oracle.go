package finance

import (
	"math"
	"strconv"
	"strings"
)

// PricingInputs are the parameters of a pricing call.
//
// Units are those of the pricing engines, not those of Option:
//   - RatePct and VolPct are in percent (0.5 means 0.5%, that is 0.005).
//   - Dividend is the annual cash dividend per share, not a yield.
//   - Days are calendar days to expiry, and may be negative.
type PricingInputs struct {
	Spot     float64
	Strike   float64
	RatePct  float64
	Dividend float64
	Days     int
	VolPct   float64
}

// Quote holds the fair value of the call and the put with the same inputs.
type Quote struct {
	Call float64
	Put  float64
}

// Greeks holds the value and the sensitivities of one option.
//
// Theta is the change in value per calendar day, Vega and Rho are the changes
// in value per one percentage point of volatility and interest rate.
type Greeks struct {
	Value float64
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
}

// PriceOracle is a pricing engine for European options.
type PriceOracle interface {
	// Price returns the call and put values.
	Price(in PricingInputs) Quote
	// Greeks returns the value and sensitivities of the option of the given type.
	Greeks(in PricingInputs, kind OptionType) Greeks
	// ImpliedVolatility returns the volatility, in percent, at which the engine
	// prices the call at callPrice, or the put at putPrice. Only one of them is
	// expected, in.VolPct is ignored.
	ImpliedVolatility(in PricingInputs, callPrice, putPrice *float64) (float64, error)
}

// Bounds of the implied volatility search, in percent.
const (
	maxVolPct     = 500.0
	minVolPct     = 0.00001
	maxIterations = 10000
)

// solveImpliedVolatility inverts o.Price by bisection.
//
// The search stops when the estimated price equals the target at the
// precision the target was given with (at most 6 decimals), or fails when
// the bracket stops shrinking.
func solveImpliedVolatility(o PriceOracle, in PricingInputs, callPrice, putPrice *float64) (float64, error) {
	var target float64
	var side func(Quote) float64
	switch {
	case callPrice != nil:
		target, side = *callPrice, func(q Quote) float64 { return q.Call }
	case putPrice != nil:
		target, side = *putPrice, func(q Quote) float64 { return q.Put }
	default:
		return math.NaN(), ErrNoPrice
	}
	target = math.Round(target*1e6) / 1e6
	scale := math.Pow10(decimals(target))
	want := math.Round(target * scale)

	low, high := 0.0, maxVolPct
	previous := math.NaN()
	for range maxIterations {
		mid := max((high+low)/2, minVolPct)
		if mid == previous {
			// the bracket cannot shrink anymore, the target is out of reach.
			break
		}
		previous = mid
		in.VolPct = mid
		estimate := side(o.Price(in))
		switch {
		case math.Round(estimate*scale) == want:
			return mid, nil
		case estimate > target:
			high = mid
		case estimate < target:
			low = mid
		}
	}
	return math.NaN(), ErrNoConvergence
}

// decimals returns the number of digits after the decimal point in the shortest representation of x.
func decimals(x float64) int {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// dividendYield turns an annual cash dividend into a continuous yield.
func dividendYield(dividend, spot float64) float64 { return math.Log(1 + dividend/spot) }

// intrinsic returns the exercise value of the call and the put.
func intrinsic(spot, strike float64) Quote {
	return Quote{Call: max(spot-strike, 0), Put: max(strike-spot, 0)}
}
