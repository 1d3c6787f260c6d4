package finance

import "math"

// DefaultBinomialSteps is the depth of the tree used by a zero Binomial.
const DefaultBinomialSteps = 500

// Binomial is a Cox-Ross-Rubinstein tree engine for European options.
//
// It uses the same inputs and dividend yield convention as Merton, and
// converges to it as Steps grows.
type Binomial struct {
	Steps int
}

var _ PriceOracle = Binomial{}

func (b Binomial) steps() int {
	if b.Steps <= 0 {
		return DefaultBinomialSteps
	}
	return b.Steps
}

// lattice is a priced tree. It keeps the option values of the first two steps to derive greeks.
type lattice struct {
	s, u, d, dt float64
	// values[step][node] for step 0, 1 and 2, node 0 being the highest spot.
	calls, puts [3][]float64
}

// build prices the tree with decimal parameters and a continuous dividend yield q.
func (b Binomial) build(s, k, r, q, t, vol float64) lattice {
	n := max(b.steps(), 2)
	dt := t / float64(n)
	u := math.Exp(vol * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp((r-q)*dt) - d) / (u - d)
	disc := math.Exp(-r * dt)

	calls := make([]float64, n+1)
	puts := make([]float64, n+1)
	for i := range n + 1 {
		st := s * math.Pow(u, float64(n-i)) * math.Pow(d, float64(i))
		calls[i] = max(st-k, 0)
		puts[i] = max(k-st, 0)
	}

	l := lattice{s: s, u: u, d: d, dt: dt}
	for step := n - 1; step >= 0; step-- {
		for i := 0; i <= step; i++ {
			calls[i] = disc * (p*calls[i] + (1-p)*calls[i+1])
			puts[i] = disc * (p*puts[i] + (1-p)*puts[i+1])
		}
		if step <= 2 {
			l.calls[step] = append([]float64(nil), calls[:step+1]...)
			l.puts[step] = append([]float64(nil), puts[:step+1]...)
		}
	}
	return l
}

func (l lattice) quote() Quote { return Quote{Call: l.calls[0][0], Put: l.puts[0][0]} }

// params converts the inputs to decimal parameters.
func params(in PricingInputs) (s, k, r, q, t, vol float64) {
	return in.Spot, in.Strike, in.RatePct / 100, dividendYield(in.Dividend, in.Spot), float64(in.Days) / 365, in.VolPct / 100
}

// Price implements PriceOracle.
func (b Binomial) Price(in PricingInputs) Quote {
	s, k, r, q, t, vol := params(in)
	if vol == 0 || t == 0 {
		return intrinsic(s, k)
	}
	return b.build(s, k, r, q, t, vol).quote()
}

// Greeks implements PriceOracle.
//
// Delta, gamma and theta are read from the first steps of the tree, vega and
// rho are central differences with one point bumps, or half the volatility
// when it is below two points.
func (b Binomial) Greeks(in PricingInputs, kind OptionType) Greeks {
	s, k, r, q, t, vol := params(in)
	if vol == 0 || t == 0 {
		value := intrinsic(s, k).Call
		if kind == Put {
			value = intrinsic(s, k).Put
		}
		return Greeks{Value: value, Delta: intrinsicDelta(s, k, kind)}
	}

	l := b.build(s, k, r, q, t, vol)
	values := l.calls
	pick := func(q Quote) float64 { return q.Call }
	if kind == Put {
		values = l.puts
		pick = func(q Quote) float64 { return q.Put }
	}

	const bump = 0.01
	// a tree prices a negative volatility like its opposite, keep vol-volBump positive.
	volBump := min(bump, vol/2)
	su, sd := s*l.u, s*l.d
	suu, sdd := s*l.u*l.u, s*l.d*l.d
	f0 := values[0][0]
	fu, fd := values[1][0], values[1][1]
	fuu, fud, fdd := values[2][0], values[2][1], values[2][2]

	return Greeks{
		Value: f0,
		Delta: (fu - fd) / (su - sd),
		Gamma: ((fuu-fud)/(suu-s) - (fud-fdd)/(s-sdd)) / ((suu - sdd) / 2),
		Theta: (fud - f0) / (2 * l.dt) / 365,
		Vega:  (pick(b.build(s, k, r, q, t, vol+volBump).quote()) - pick(b.build(s, k, r, q, t, vol-volBump).quote())) / (2 * volBump) / 100,
		Rho:   (pick(b.build(s, k, r+bump, q, t, vol).quote()) - pick(b.build(s, k, r-bump, q, t, vol).quote())) / (2 * bump) / 100,
	}
}

// ImpliedVolatility implements PriceOracle.
func (b Binomial) ImpliedVolatility(in PricingInputs, callPrice, putPrice *float64) (float64, error) {
	return solveImpliedVolatility(b, in, callPrice, putPrice)
}
