package finance

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/finance/date"
)

var (
	koExpiry    = date.New(2016, 12, 31)
	koValuation = date.New(2015, 12, 31)
)

func TestParseOptionType(t *testing.T) {
	testCases := []struct {
		kind      string
		want      OptionType
		expectErr bool
	}{
		{"c", Call, false},
		{"call", Call, false},
		{"CALL", Call, false},
		{"Call", Call, false},
		{"p", Put, false},
		{"P", Put, false},
		{"put", Put, false},
		{"pUt", Put, false},
		{"", "", true},
		{"calls", "", true},
		{"x", "", true},
	}
	for _, tc := range testCases {
		t.Run(tc.kind, func(t *testing.T) {
			got, err := ParseOptionType(tc.kind)
			if hasErr := err != nil; hasErr != tc.expectErr {
				t.Fatalf("ParseOptionType(%q) returned error: %v, want error: %v", tc.kind, err, tc.expectErr)
			}
			if got != tc.want {
				t.Errorf("ParseOptionType(%q) = %q want %q", tc.kind, got, tc.want)
			}
		})
	}
}

func TestNewOption_InvalidType(t *testing.T) {
	_, err := NewOption(ko(), koExpiry, 115, "forward")
	if !errors.Is(err, ErrInvalidOptionType) {
		t.Fatalf("NewOption(forward) error = %v want %v", err, ErrInvalidOptionType)
	}
	var typeErr *InvalidOptionTypeError
	if !errors.As(err, &typeErr) || typeErr.Type != "forward" {
		t.Fatalf("NewOption(forward) error = %#v want an InvalidOptionTypeError for %q", err, "forward")
	}
	want := "forward not a valid option type.  Valid types are c,call,p,put"
	if err.Error() != want {
		t.Errorf("error message = %q want %q", err.Error(), want)
	}
}

func TestNewOption_Defaults(t *testing.T) {
	o, err := NewOption(ko(), koExpiry, 115, "c")
	if err != nil {
		t.Fatal(err)
	}
	if o.InterestRate() != DefaultInterestRate {
		t.Errorf("InterestRate() = %v want %v", o.InterestRate(), DefaultInterestRate)
	}
	if o.ValuationDate() != date.Today() {
		t.Errorf("ValuationDate() = %v want today", o.ValuationDate())
	}
	if _, ok := o.Price(); ok {
		t.Errorf("Price() is set, want unset")
	}
	if o.Type() != Call {
		t.Errorf("Type() = %v want %v", o.Type(), Call)
	}
}

func TestOption_Call(t *testing.T) {
	o, err := NewOption(ko(), koExpiry, 115, "call", WithVolatility(0.26), WithValuationDate(koValuation))
	if err != nil {
		t.Fatal(err)
	}
	if got := o.DaysToExpiration(); got != 366 {
		t.Errorf("DaysToExpiration() = %d want 366", got)
	}

	testCases := []struct {
		name      string
		get       func() (float64, error)
		want, tol float64
	}{
		{"Value", o.Value, 11.04, 0.02},
		{"Delta", o.Delta, 0.52, 0.01},
		{"Gamma", o.Gamma, 0.013, 0.001},
		{"Vega", o.Vega, 0.45, 0.01},
		{"Rho", o.Rho, 0.49, 0.01},
		{"Theta", o.Theta, -0.014, 0.001},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.get()
			if err != nil {
				t.Fatalf("%s() unexpected error: %v", tc.name, err)
			}
			if math.Abs(got-tc.want) > tc.tol {
				t.Errorf("%s() = %v want %v ± %v", tc.name, got, tc.want, tc.tol)
			}
		})
	}
}

func TestOption_Put(t *testing.T) {
	o, err := NewOption(ko(), koExpiry, 115, "p", WithVolatility(0.26), WithValuationDate(koValuation))
	if err != nil {
		t.Fatal(err)
	}
	g, err := o.Greeks()
	if err != nil {
		t.Fatal(err)
	}
	checkGreeks(t, g, Merton{}.Greeks(koInputs, Put), 1e-12)

	value, _ := o.Value()
	if value != g.Value {
		t.Errorf("Value() = %v want %v", value, g.Value)
	}
}

func TestOption_ImpliedVolatility(t *testing.T) {
	for _, kind := range []string{"c", "p"} {
		t.Run(kind, func(t *testing.T) {
			price := 11.04
			if kind == "p" {
				price = 12.51
			}
			o, err := NewOption(ko(), koExpiry, 115, kind, WithPrice(price), WithValuationDate(koValuation))
			if err != nil {
				t.Fatal(err)
			}
			got, err := o.ImpliedVolatility()
			if err != nil {
				t.Fatalf("ImpliedVolatility() unexpected error: %v", err)
			}
			if math.Abs(got-0.26) > 0.01 {
				t.Errorf("ImpliedVolatility() = %v want 0.26 ± 0.01", got)
			}
		})
	}
}

func TestOption_ImpliedVolatilityWithoutPrice(t *testing.T) {
	o, err := NewOption(ko(), koExpiry, 115, "c", WithVolatility(0.26))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.ImpliedVolatility(); !errors.Is(err, ErrNoPrice) {
		t.Errorf("ImpliedVolatility() error = %v want %v", err, ErrNoPrice)
	}
}

func TestOption_VolatilityFallback(t *testing.T) {
	s := ko()
	o, err := NewOption(s, koExpiry, 115, "c", WithValuationDate(koValuation))
	if err != nil {
		t.Fatal(err)
	}
	if s.volCalls != 0 {
		t.Errorf("historical volatility computed at construction, want on first use")
	}
	for range 3 {
		if _, err := o.Value(); err != nil {
			t.Fatal(err)
		}
	}
	if s.volCalls != 1 {
		t.Errorf("historical volatility computed %d times, want once", s.volCalls)
	}
	if s.volDays != 366 {
		t.Errorf("historical volatility over %d days, want 366", s.volDays)
	}
	if s.volAsOf == nil || *s.volAsOf != koValuation {
		t.Errorf("historical volatility as of %v, want %v", s.volAsOf, koValuation)
	}

	vol, _ := o.Volatility()
	if vol != s.vol {
		t.Errorf("Volatility() = %v want %v", vol, s.vol)
	}
}

func TestOption_ExpiredNeedsVolatility(t *testing.T) {
	e := NewEquity("KO", &fakeSource{
		quote:     110,
		adjusted:  series(100, 102, 99, 104, 103),
		dividends: dividends(map[string]float64{"2024-09-13": 0.5, "2024-12-13": 0.5}),
	})
	on := date.New(2025, 1, 5)
	o, _ := NewOption(e, on, 100, "c", WithValuationDate(on))
	if _, err := o.Value(); !errors.Is(err, ErrInvalidWindow) {
		t.Errorf("Value() on expiry without volatility error = %v want %v", err, ErrInvalidWindow)
	}

	o, _ = NewOption(e, on, 100, "c", WithValuationDate(on), WithVolatility(0.2))
	if value, err := o.Value(); err != nil || value != 10 {
		t.Errorf("Value() on expiry = %v, %v want intrinsic value 10", value, err)
	}
}

func TestOption_ZeroVolatilityIsGiven(t *testing.T) {
	s := ko()
	o, _ := NewOption(s, koExpiry, 100, "c", WithVolatility(0), WithValuationDate(koValuation))
	value, err := o.Value()
	if err != nil {
		t.Fatal(err)
	}
	if value != 15 {
		t.Errorf("Value() = %v want intrinsic value 15", value)
	}
	if s.volCalls != 0 {
		t.Errorf("historical volatility used although a volatility was given")
	}
}

func TestOption_Binomial(t *testing.T) {
	o, _ := NewOption(ko(), koExpiry, 115, "c", WithVolatility(0.26), WithValuationDate(koValuation), WithOracle(Binomial{}))
	value, err := o.Value()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(value-11.04) > 0.02 {
		t.Errorf("Value() = %v want 11.04 ± 0.02", value)
	}
}
