package marina

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rates is the monthly fee per foot of boat length, by kind.
type Rates map[Kind]Money

// DefaultRates returns the marina's standard monthly rates in currency.
func DefaultRates(currency string) Rates {
	return Rates{
		Slip:    M(decimal.RequireFromString("12.50"), currency),
		Land:    M(decimal.RequireFromString("14.00"), currency),
		Trailer: M(decimal.RequireFromString("25.00"), currency),
		Storage: M(decimal.RequireFromString("11.20"), currency),
	}
}

// Rate returns the rate of a kind, zero if it has none.
func (r Rates) Rate(k Kind) Money { return r[k] }

// Accrual returns what a boat owes for one more month.
func (r Rates) Accrual(b Boat) Money {
	return r.Rate(b.Kind()).Mul(b.Length)
}

// Validate checks that every kind has a non negative rate.
func (r Rates) Validate() error {
	for _, k := range Kinds {
		rate, ok := r[k]
		if !ok {
			return fmt.Errorf("missing rate for %s", k)
		}
		if rate.IsNegative() {
			return fmt.Errorf("negative rate for %s: %s", k, rate.Fixed())
		}
	}
	return nil
}
