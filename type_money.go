package rentals

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCurrency is the currency of a collection when none is configured.
const DefaultCurrency = "BRL"

// Money represents a monetary amount in the collection currency.
//
// Properties do not carry their own currency: a collection is always priced in
// a single currency chosen by configuration.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M creates a Money from a numeric value.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float32:
		return Money{value: decimal.NewFromFloat32(v)}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Money{value: decimal.NewFromInt32(v)}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	}
	panic(fmt.Sprintf("unsupported money value %T", value))
}

// ParseMoney parses a decimal string like "1500" or "27.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// Format returns the amount formatted for the given ISO currency code, e.g.
// "R$1.500,00" for BRL. An empty code formats as DefaultCurrency.
func (m Money) Format(currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	cur := *money.New(0, currency).Currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// String returns the plain decimal representation.
func (m Money) String() string { return m.value.String() }

func (m Money) Decimal() decimal.Decimal    { return m.value }
func (m Money) Float64() float64            { return m.value.InexactFloat64() }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) }
func (m Money) Cmp(n Money) int             { return m.value.Cmp(n.value) }
func (m Money) LessThan(n Money) bool       { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool    { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money           { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money           { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(f decimal.Decimal) Money { return Money{value: m.value.Mul(f)} }

// DivInt divides the amount by n. Division by zero returns zero.
func (m Money) DivInt(n int) Money {
	if n == 0 {
		return Money{}
	}
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))}
}

// MarshalJSON writes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// UnmarshalJSON accepts both bare and quoted numbers.
func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }
