package finance

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/finance/date"
)

// OptionType is either a Call or a Put.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// accepted spellings, matched case insensitively.
var (
	callTypes  = []string{"c", "call"}
	putTypes   = []string{"p", "put"}
	validTypes = append(callTypes[:len(callTypes):len(callTypes)], putTypes...)
)

// ParseOptionType parses "c", "call", "p" or "put", in any case.
func ParseOptionType(s string) (OptionType, error) {
	l := strings.ToLower(s)
	switch {
	case slices.Contains(callTypes, l):
		return Call, nil
	case slices.Contains(putTypes, l):
		return Put, nil
	}
	return "", &InvalidOptionTypeError{Type: s}
}

func (t OptionType) String() string { return string(t) }

// DefaultInterestRate is the annual risk free rate used when none is given.
const DefaultInterestRate = 0.005

// Underlying is what an Option needs to know about the security it is written on.
type Underlying interface {
	// Price is the current spot price.
	Price() (float64, error)
	// AnnualDividend is the expected cash dividend per share over a year.
	AnnualDividend() (float64, error)
	// HistoricalVolatility is the annualized volatility over the last days returns, up to asOf if not nil.
	HistoricalVolatility(days int, asOf *date.Date) (float64, error)
}

// Option is a European option on an Underlying.
//
// Rates and volatilities are decimals (0.26 for 26%).
type Option struct {
	underlying Underlying
	expiry     date.Date
	strike     float64
	kind       OptionType
	valuation  date.Date
	rate       float64
	oracle     PriceOracle

	price    float64
	hasPrice bool

	// volatility is either given or computed once from the underlying.
	volatility      float64
	volatilityKnown bool
}

// OptionOpt configures an Option in NewOption.
type OptionOpt func(*Option)

// WithPrice sets the market price of the option, needed for ImpliedVolatility.
func WithPrice(price float64) OptionOpt {
	return func(o *Option) { o.price, o.hasPrice = price, true }
}

// WithVolatility sets the volatility used for pricing instead of the underlying's historical volatility.
func WithVolatility(vol float64) OptionOpt {
	return func(o *Option) { o.volatility, o.volatilityKnown = vol, true }
}

// WithValuationDate sets the day the option is valued on. It defaults to today.
func WithValuationDate(on date.Date) OptionOpt {
	return func(o *Option) { o.valuation = on }
}

// WithInterestRate sets the annual risk free rate. It defaults to DefaultInterestRate.
func WithInterestRate(rate float64) OptionOpt {
	return func(o *Option) { o.rate = rate }
}

// WithOracle sets the pricing engine. It defaults to Merton.
func WithOracle(oracle PriceOracle) OptionOpt {
	return func(o *Option) { o.oracle = oracle }
}

// NewOption returns an option of type kind ("c", "call", "p" or "put") on underlying.
func NewOption(underlying Underlying, expiry date.Date, strike float64, kind string, opts ...OptionOpt) (*Option, error) {
	t, err := ParseOptionType(kind)
	if err != nil {
		return nil, err
	}
	o := &Option{
		underlying: underlying,
		expiry:     expiry,
		strike:     strike,
		kind:       t,
		valuation:  date.Today(),
		rate:       DefaultInterestRate,
		oracle:     Merton{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

func (o *Option) Underlying() Underlying   { return o.underlying }
func (o *Option) Expiry() date.Date        { return o.expiry }
func (o *Option) Strike() float64          { return o.strike }
func (o *Option) Type() OptionType         { return o.kind }
func (o *Option) ValuationDate() date.Date { return o.valuation }
func (o *Option) InterestRate() float64    { return o.rate }

// Price returns the market price of the option if it was given.
func (o *Option) Price() (float64, bool) { return o.price, o.hasPrice }

// DaysToExpiration is the number of calendar days from the valuation date to expiry.
//
// It is negative for expired options.
func (o *Option) DaysToExpiration() int { return o.expiry.Sub(o.valuation) }

// HistoricalVolatility returns the underlying's volatility over as many returns as there are days to expiration.
//
// It fails with ErrInvalidWindow on or after expiry, a volatility must then be given.
func (o *Option) HistoricalVolatility() (float64, error) {
	on := o.valuation
	return o.underlying.HistoricalVolatility(o.DaysToExpiration(), &on)
}

// Volatility returns the volatility used for pricing.
//
// When none was given, the historical volatility is computed on first use and kept.
func (o *Option) Volatility() (float64, error) {
	if o.volatilityKnown {
		return o.volatility, nil
	}
	vol, err := o.HistoricalVolatility()
	if err != nil {
		return 0, fmt.Errorf("cannot estimate volatility: %w", err)
	}
	o.volatility, o.volatilityKnown = vol, true
	return vol, nil
}

// marketInputs collects everything but the volatility.
func (o *Option) marketInputs() (PricingInputs, error) {
	spot, err := o.underlying.Price()
	if err != nil {
		return PricingInputs{}, fmt.Errorf("cannot read underlying price: %w", err)
	}
	dividend, err := o.underlying.AnnualDividend()
	if err != nil {
		return PricingInputs{}, fmt.Errorf("cannot read underlying dividend: %w", err)
	}
	return PricingInputs{
		Spot:     spot,
		Strike:   o.strike,
		RatePct:  o.rate * 100,
		Dividend: dividend,
		Days:     o.DaysToExpiration(),
	}, nil
}

func (o *Option) inputs() (PricingInputs, error) {
	in, err := o.marketInputs()
	if err != nil {
		return in, err
	}
	vol, err := o.Volatility()
	if err != nil {
		return in, err
	}
	in.VolPct = vol * 100
	return in, nil
}

// Greeks returns the value and all sensitivities at once.
func (o *Option) Greeks() (Greeks, error) {
	in, err := o.inputs()
	if err != nil {
		return Greeks{}, err
	}
	return o.oracle.Greeks(in, o.kind), nil
}

// Value returns the fair value of the option.
func (o *Option) Value() (float64, error) {
	in, err := o.inputs()
	if err != nil {
		return 0, err
	}
	q := o.oracle.Price(in)
	if o.kind == Put {
		return q.Put, nil
	}
	return q.Call, nil
}

// greek evaluates one sensitivity.
func (o *Option) greek(pick func(Greeks) float64) (float64, error) {
	g, err := o.Greeks()
	if err != nil {
		return 0, err
	}
	return pick(g), nil
}

// Delta is the change in value for a one unit change in the underlying price.
func (o *Option) Delta() (float64, error) { return o.greek(func(g Greeks) float64 { return g.Delta }) }

// Gamma is the change in delta for a one unit change in the underlying price.
func (o *Option) Gamma() (float64, error) { return o.greek(func(g Greeks) float64 { return g.Gamma }) }

// Vega is the change in value for a one point change in volatility.
func (o *Option) Vega() (float64, error) { return o.greek(func(g Greeks) float64 { return g.Vega }) }

// Theta is the change in value over one calendar day.
func (o *Option) Theta() (float64, error) { return o.greek(func(g Greeks) float64 { return g.Theta }) }

// Rho is the change in value for a one point change in the interest rate.
func (o *Option) Rho() (float64, error) { return o.greek(func(g Greeks) float64 { return g.Rho }) }

// ImpliedVolatility returns the volatility at which the option is worth its market price.
func (o *Option) ImpliedVolatility() (float64, error) {
	if !o.hasPrice {
		return 0, ErrNoPrice
	}
	in, err := o.marketInputs()
	if err != nil {
		return 0, err
	}
	price := o.price
	var volPct float64
	if o.kind == Put {
		volPct, err = o.oracle.ImpliedVolatility(in, nil, &price)
	} else {
		volPct, err = o.oracle.ImpliedVolatility(in, &price, nil)
	}
	if err != nil {
		return 0, err
	}
	return volPct / 100, nil
}

// String returns a short description like "call 115 2017-01-20".
func (o *Option) String() string {
	return fmt.Sprintf("%s %g %s", o.kind, o.strike, o.expiry)
}
