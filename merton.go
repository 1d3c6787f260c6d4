package finance

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Merton is the closed form Black-Scholes-Merton engine with a continuous dividend yield.
//
// The annual cash dividend is converted to a yield as ln(1 + D/S), and time
// to expiry is Days/365.
type Merton struct{}

var _ PriceOracle = Merton{}

// merton holds the decimal parameters and the intermediate terms of one pricing.
type merton struct {
	s, k, r, q, t, vol float64
	d1, d2             float64
}

func newMerton(in PricingInputs) merton {
	m := merton{
		s:   in.Spot,
		k:   in.Strike,
		r:   in.RatePct / 100,
		q:   dividendYield(in.Dividend, in.Spot),
		t:   float64(in.Days) / 365,
		vol: in.VolPct / 100,
	}
	a := m.vol * math.Sqrt(m.t)
	m.d1 = (math.Log(m.s/m.k) + (m.r-m.q+m.vol*m.vol/2)*m.t) / a
	m.d2 = m.d1 - a
	return m
}

// degenerate reports whether the option has no time value left.
func (m merton) degenerate() bool { return m.vol == 0 || m.t == 0 }

func (m merton) price() Quote {
	if m.degenerate() {
		return intrinsic(m.s, m.k)
	}
	fwd := m.s * math.Exp(-m.q*m.t)
	pv := m.k * math.Exp(-m.r*m.t)
	return Quote{
		Call: fwd*cdf(m.d1) - pv*cdf(m.d2),
		Put:  pv*cdf(-m.d2) - fwd*cdf(-m.d1),
	}
}

// Price implements PriceOracle.
func (Merton) Price(in PricingInputs) Quote { return newMerton(in).price() }

// Greeks implements PriceOracle.
func (Merton) Greeks(in PricingInputs, kind OptionType) Greeks {
	m := newMerton(in)
	q := m.price()
	if m.degenerate() {
		g := Greeks{Value: q.Call}
		if kind == Put {
			g.Value = q.Put
		}
		g.Delta = intrinsicDelta(m.s, m.k, kind)
		return g
	}

	divDisc := math.Exp(-m.q * m.t)
	rateDisc := math.Exp(-m.r * m.t)
	sqrtT := math.Sqrt(m.t)
	decay := -m.s * divDisc * pdf(m.d1) * m.vol / (2 * sqrtT)

	g := Greeks{
		Gamma: divDisc * pdf(m.d1) / (m.s * m.vol * sqrtT),
		Vega:  m.s * divDisc * pdf(m.d1) * sqrtT / 100,
	}
	switch kind {
	case Put:
		g.Value = q.Put
		g.Delta = divDisc * (cdf(m.d1) - 1)
		g.Theta = (decay - m.q*m.s*divDisc*cdf(-m.d1) + m.r*m.k*rateDisc*cdf(-m.d2)) / 365
		g.Rho = -m.k * m.t * rateDisc * cdf(-m.d2) / 100
	default:
		g.Value = q.Call
		g.Delta = divDisc * cdf(m.d1)
		g.Theta = (decay + m.q*m.s*divDisc*cdf(m.d1) - m.r*m.k*rateDisc*cdf(m.d2)) / 365
		g.Rho = m.k * m.t * rateDisc * cdf(m.d2) / 100
	}
	return g
}

// ImpliedVolatility implements PriceOracle.
func (o Merton) ImpliedVolatility(in PricingInputs, callPrice, putPrice *float64) (float64, error) {
	return solveImpliedVolatility(o, in, callPrice, putPrice)
}

// intrinsicDelta is the delta of an option at expiry, or with no volatility.
func intrinsicDelta(spot, strike float64, kind OptionType) float64 {
	switch {
	case kind == Call && spot > strike:
		return 1
	case kind == Put && spot < strike:
		return -1
	default:
		return 0
	}
}

func cdf(x float64) float64 { return distuv.UnitNormal.CDF(x) }
func pdf(x float64) float64 { return distuv.UnitNormal.Prob(x) }
