package finance

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/finance/date"
)

func dividends(points map[string]float64) date.History[float64] {
	var h date.History[float64]
	for on, v := range points {
		h.Append(date.MustParse(on), v)
	}
	return h
}

func TestAnnualDividend(t *testing.T) {
	testCases := []struct {
		name      string
		dividends map[string]float64
		want      float64
	}{
		{"quarterly", map[string]float64{"2015-06-12": 0.33, "2015-09-11": 0.52}, 2.08},
		{"quarterly with history", map[string]float64{"2015-03-12": 0.3, "2015-06-12": 0.33, "2015-09-11": 0.52}, 2.08},
		{"yearly", map[string]float64{"2014-05-02": 1, "2015-05-01": 1.2}, 1.2},
		{"monthly", map[string]float64{"2025-01-15": 0.1, "2025-02-14": 0.1}, 1.2},
		// 365/146 is 2.5, rounded half to even.
		{"tie", map[string]float64{"2025-01-01": 1, "2025-05-27": 1}, 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AnnualDividend(dividends(tc.dividends))
			if err != nil {
				t.Fatalf("AnnualDividend() unexpected error: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("AnnualDividend() = %v want %v", got, tc.want)
			}
		})
	}
}

func TestAnnualDividend_Insufficient(t *testing.T) {
	for _, divs := range []map[string]float64{nil, {"2025-01-01": 1}} {
		if _, err := AnnualDividend(dividends(divs)); !errors.Is(err, ErrInsufficientDividends) {
			t.Errorf("AnnualDividend(%v) error = %v want %v", divs, err, ErrInsufficientDividends)
		}
	}
}

func TestEquity(t *testing.T) {
	src := &fakeSource{
		close:     series(100, 110, 99, 99),
		adjusted:  series(50, 55, 49.5, 49.5),
		dividends: dividends(map[string]float64{"2015-06-12": 0.33, "2015-09-11": 0.52}),
		quote:     104,
	}
	e := NewEquity("KO", src)

	prices, err := e.Close()
	if err != nil || prices.Len() != 4 {
		t.Fatalf("Close() = %d points, %v want 4 points", prices.Len(), err)
	}
	returns, err := e.Returns()
	if err != nil {
		t.Fatal(err)
	}
	if _, last := returns.Latest(); last != 0 {
		t.Errorf("Returns().Latest() = %v want 0", last)
	}
	if _, err := e.AdjClose(); err != nil {
		t.Fatal(err)
	}
	if src.dailyCalls != 1 {
		t.Errorf("daily prices fetched %d times, want once", src.dailyCalls)
	}

	yield, err := e.DividendYield()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(yield-0.02) > 1e-9 {
		t.Errorf("DividendYield() = %v want 0.02", yield)
	}

	vol, err := e.HistoricalVolatility(2, ptr(date.New(2025, 1, 3)))
	if err != nil {
		t.Fatal(err)
	}
	if want := math.Sqrt(0.02) * math.Sqrt(252); math.Abs(vol-want) > 1e-9 {
		t.Errorf("HistoricalVolatility() = %v want %v", vol, want)
	}
	rolling, err := e.RollingHistoricalVolatility(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if rolling.Len() != 3 {
		t.Errorf("RollingHistoricalVolatility().Len() = %d want 3", rolling.Len())
	}
}

func TestEquity_Unsupported(t *testing.T) {
	e := NewEquity("KO", &fakeSource{})
	if _, err := e.Profile(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Profile() error = %v want %v", err, ErrUnsupported)
	}
	if _, err := e.Sector(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Sector() error = %v want %v", err, ErrUnsupported)
	}
	if _, err := e.Options(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Options() error = %v want %v", err, ErrUnsupported)
	}
}

func TestEquity_Profile(t *testing.T) {
	p := &Profile{Name: "The Coca-Cola Company", Sector: "Consumer Defensive", Industry: "Beverages - Non-Alcoholic", Employees: 69700}
	e := NewEquity("KO", fullSource{&fakeSource{profile: p}})

	name, err := e.Name()
	if err != nil || name != p.Name {
		t.Errorf("Name() = %q, %v want %q", name, err, p.Name)
	}
	sector, _ := e.Sector()
	if sector != p.Sector {
		t.Errorf("Sector() = %q want %q", sector, p.Sector)
	}
	industry, _ := e.Industry()
	if industry != p.Industry {
		t.Errorf("Industry() = %q want %q", industry, p.Industry)
	}
	employees, _ := e.Employees()
	if employees != p.Employees {
		t.Errorf("Employees() = %d want %d", employees, p.Employees)
	}

	missing := NewEquity("XX", fullSource{&fakeSource{}})
	if _, err := missing.Profile(); err == nil || errors.Is(err, ErrUnsupported) {
		t.Errorf("Profile() error = %v want a source error", err)
	}
}
