package pescados

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Weight is a mass in kilograms.
type Weight struct {
	value decimal.Decimal
}

func Kg[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Weight {
	return Weight{value: newDecimal(value)}
}

// ParseWeight parses a weight in kg typed by a user. Both "2.5" and "2,5" are accepted.
func ParseWeight(s string) (Weight, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Weight{}, fmt.Errorf("%w: weight %q is not a number", ErrInvalid, s)
	}
	return Weight{value: d}, nil
}

func (w Weight) Decimal() decimal.Decimal         { return w.value }
func (w Weight) Equal(p Weight) bool              { return w.value.Equal(p.value) }
func (w Weight) Add(p Weight) Weight              { return Weight{value: w.value.Add(p.value)} }
func (w Weight) Sub(p Weight) Weight              { return Weight{value: w.value.Sub(p.value)} }
func (w Weight) IsZero() bool                     { return w.value.IsZero() }
func (w Weight) IsPositive() bool                 { return w.value.IsPositive() }
func (w Weight) IsNegative() bool                 { return w.value.IsNegative() }
func (w Weight) LessThan(p Weight) bool           { return w.value.LessThan(p.value) }
func (w Weight) GreaterThan(p Weight) bool        { return w.value.GreaterThan(p.value) }
func (w Weight) InexactFloat64() float64          { return w.value.InexactFloat64() }
func (w Weight) String() string                   { return w.value.String() + " kg" }
func (w Weight) StringFixed(places int32) string  { return w.value.StringFixed(places) }
func (w Weight) MarshalJSON() ([]byte, error)     { return w.value.MarshalJSON() }
func (w *Weight) UnmarshalJSON(data []byte) error { return w.value.UnmarshalJSON(data) }
