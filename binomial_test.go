package finance

import (
	"math"
	"testing"
)

func TestBinomial_AgreesWithMerton(t *testing.T) {
	testCases := []struct {
		name string
		in   PricingInputs
	}{
		{"at the money with dividend", koInputs},
		{"in the money", PricingInputs{Spot: 100, Strike: 90, RatePct: 5, Days: 182, VolPct: 30}},
		{"out of the money", PricingInputs{Spot: 100, Strike: 120, RatePct: 1, Dividend: 3, Days: 90, VolPct: 35}},
		{"low volatility", PricingInputs{Spot: 100, Strike: 100, RatePct: 0.5, Days: 30, VolPct: 0.5}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, kind := range []OptionType{Call, Put} {
				want := Merton{}.Greeks(tc.in, kind)
				got := Binomial{}.Greeks(tc.in, kind)
				if math.Abs(got.Value-want.Value) > 0.05 {
					t.Errorf("%s Value = %v want %v ± 0.05", kind, got.Value, want.Value)
				}
				if math.Abs(got.Delta-want.Delta) > 0.005 {
					t.Errorf("%s Delta = %v want %v ± 0.005", kind, got.Delta, want.Delta)
				}
				if tol := max(0.001, 0.005*want.Gamma); math.Abs(got.Gamma-want.Gamma) > tol {
					t.Errorf("%s Gamma = %v want %v ± %v", kind, got.Gamma, want.Gamma, tol)
				}
				if math.Abs(got.Vega-want.Vega) > 0.01 {
					t.Errorf("%s Vega = %v want %v ± 0.01", kind, got.Vega, want.Vega)
				}
				if math.Abs(got.Theta-want.Theta) > 0.001 {
					t.Errorf("%s Theta = %v want %v ± 0.001", kind, got.Theta, want.Theta)
				}
				if math.Abs(got.Rho-want.Rho) > 0.01 {
					t.Errorf("%s Rho = %v want %v ± 0.01", kind, got.Rho, want.Rho)
				}
			}
		})
	}
}

func TestBinomial_Price(t *testing.T) {
	q := Binomial{}.Price(koInputs)
	if math.Abs(q.Call-11.0471) > 1e-3 {
		t.Errorf("Price().Call = %v want 11.0471", q.Call)
	}

	// fewer steps are coarser but still close.
	coarse := Binomial{Steps: 50}.Price(koInputs)
	if math.Abs(coarse.Call-q.Call) > 0.1 {
		t.Errorf("Binomial{50}.Price().Call = %v want %v ± 0.1", coarse.Call, q.Call)
	}
}

func TestBinomial_Degenerate(t *testing.T) {
	in := PricingInputs{Spot: 100, Strike: 90, Days: 30}
	if got, want := (Binomial{}).Greeks(in, Call), (Greeks{Value: 10, Delta: 1}); got != want {
		t.Errorf("Greeks(no volatility) = %+v want %+v", got, want)
	}
	if got := (Binomial{}).Price(in); got != (Quote{Call: 10}) {
		t.Errorf("Price(no volatility) = %+v want {Call:10 Put:0}", got)
	}
}
