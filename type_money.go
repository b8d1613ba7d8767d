package marina

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency balances are kept in unless configured otherwise.
const DefaultCurrency = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney reads an amount the permissive way older versions did:
// the leading number of s is used, and anything unreadable is zero.
func ParseMoney(s, currency string) Money {
	return Money{value: atof(s), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the human representation of the money value, e.g. "$1,281.50".
//
// Amounts too large for the formatter are printed without grouping, e.g. "$100000000000000000000.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	if !dec.BigInt().IsInt64() {
		if m.value.IsNegative() {
			return "-" + cur.Grapheme + m.value.Abs().StringFixed(int32(cur.Fraction))
		}
		return cur.Grapheme + m.value.StringFixed(int32(cur.Fraction))
	}
	return cur.Formatter().Format(dec.IntPart())
}

// Symbol returns the currency symbol, e.g. "$".
func (m Money) Symbol() string { return m.currency().Grapheme }

// Fixed returns the amount with exactly two decimals and no currency, as persisted.
func (m Money) Fixed() string { return m.value.StringFixed(2) }

// In returns the same amount tagged with another currency.
// It does not convert: the inventory file carries no currency, so amounts read from it take the marina's.
func (m Money) In(currency string) Money { return Money{value: m.value, cur: currency} }

func (m Money) Currency() string         { return m.cur }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Mul(f Feet) Money         { return Money{value: m.value.Mul(f.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(2))
	return w.MarshalJSON()
}
