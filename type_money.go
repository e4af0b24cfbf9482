package pescados

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the currency of every amount in the books.
const Currency = money.BRL

// Money represents a monetary value in Currency.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses an amount typed by a user. Both "12.5" and "12,5" are accepted.
func ParseMoney(s string) (Money, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalid, s)
	}
	return Money{value: d}, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// String returns the string representation of the money value, e.g. R$1.234,50.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.IsZero() {
		return "-"
	}
	if m.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Decimal() decimal.Decimal         { return m.value }
func (m Money) Equal(n Money) bool               { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                     { return m.value.IsZero() }
func (m Money) IsPositive() bool                 { return m.value.IsPositive() }
func (m Money) IsNegative() bool                 { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool            { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool         { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                       { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money                { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money                { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(w Weight) Money               { return Money{value: m.value.Mul(w.value)} }
func (m Money) InexactFloat64() float64          { return m.value.InexactFloat64() }
func (m Money) MarshalJSON() ([]byte, error)     { return m.value.MarshalJSON() }
func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }

// parseDecimal reads a decimal accepting a comma as the decimal separator.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}
