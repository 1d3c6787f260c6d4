package finance

import (
	"cmp"
	"slices"

	"github.com/etnz/finance/date"
)

// NearStrikes is the number of strikes kept on each side of the spot by NearCalls and NearPuts.
const NearStrikes = 5

// Contract is a listed option.
type Contract struct {
	Symbol            string
	Type              OptionType
	Strike            float64
	Expiry            date.Date
	Last              float64
	Bid               float64
	Ask               float64
	Volume            int
	OpenInterest      int
	ImpliedVolatility float64
}

// Option returns the option of that contract on underlying, priced at the last trade.
func (c Contract) Option(underlying Underlying, opts ...OptionOpt) (*Option, error) {
	opts = append([]OptionOpt{WithPrice(c.Last)}, opts...)
	return NewOption(underlying, c.Expiry, c.Strike, string(c.Type), opts...)
}

// OptionChain is the set of contracts listed on an underlying.
type OptionChain struct {
	underlying Underlying
	contracts  []Contract
}

// NewOptionChain returns the chain of contracts, sorted by expiry, strike and type.
func NewOptionChain(underlying Underlying, contracts []Contract) *OptionChain {
	contracts = slices.Clone(contracts)
	slices.SortStableFunc(contracts, compareContracts)
	return &OptionChain{underlying: underlying, contracts: contracts}
}

// Underlying returns the security the contracts are written on.
func (c *OptionChain) Underlying() Underlying { return c.underlying }

// AllContracts returns every contract of the chain.
func (c *OptionChain) AllContracts() []Contract { return slices.Clone(c.contracts) }

// Calls returns the call contracts.
func (c *OptionChain) Calls() []Contract { return c.ofType(Call) }

// Puts returns the put contracts.
func (c *OptionChain) Puts() []Contract { return c.ofType(Put) }

func (c *OptionChain) ofType(t OptionType) []Contract {
	var res []Contract
	for _, ct := range c.contracts {
		if ct.Type == t {
			res = append(res, ct)
		}
	}
	return res
}

// NearCalls returns the calls within NearStrikes strikes of the underlying price.
func (c *OptionChain) NearCalls() ([]Contract, error) { return c.near(c.Calls()) }

// NearPuts returns the puts within NearStrikes strikes of the underlying price.
func (c *OptionChain) NearPuts() ([]Contract, error) { return c.near(c.Puts()) }

func (c *OptionChain) near(contracts []Contract) ([]Contract, error) {
	spot, err := c.underlying.Price()
	if err != nil {
		return nil, err
	}
	return FilterNear(contracts, NearStrikes, spot), nil
}

// FilterNear keeps the contracts whose strike is among the strikeCount
// strikes around spot.
//
// Strikes are ranked and the first one above spot is located; the strikes
// from strikeCount below it to strikeCount above it are kept, bounds
// included. The result is sorted by expiry, strike and type.
func FilterNear(contracts []Contract, strikeCount int, spot float64) []Contract {
	if len(contracts) == 0 {
		return nil
	}
	strikes := make([]float64, 0, len(contracts))
	for _, ct := range contracts {
		strikes = append(strikes, ct.Strike)
	}
	slices.Sort(strikes)
	strikes = slices.Compact(strikes)

	above := len(strikes)
	for i, k := range strikes {
		if k > spot {
			above = i
			break
		}
	}
	low := strikes[max(above-strikeCount, 0)]
	high := strikes[min(above+strikeCount, len(strikes)-1)]

	var res []Contract
	for _, ct := range contracts {
		if ct.Strike >= low && ct.Strike <= high {
			res = append(res, ct)
		}
	}
	slices.SortStableFunc(res, compareContracts)
	return res
}

func compareContracts(a, b Contract) int {
	switch {
	case a.Expiry.Before(b.Expiry):
		return -1
	case a.Expiry.After(b.Expiry):
		return 1
	}
	return cmp.Or(cmp.Compare(a.Strike, b.Strike), cmp.Compare(a.Type, b.Type))
}
