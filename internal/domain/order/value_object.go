package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the precision every stored amount is rounded to.
const CurrencyPlaces = 2

// Money is a currency amount held at cent precision. Rounding is half away
// from zero, which for the non-negative amounts in this dataset is half-up.
type Money struct {
	value decimal.Decimal
}

// Zero is the additive identity.
var Zero = Money{value: decimal.Zero}

// NewMoney rounds d to cents.
func NewMoney(d decimal.Decimal) Money {
	return Money{value: d.Round(CurrencyPlaces)}
}

// ParseMoney parses a textual amount such as "19.99".
func ParseMoney(raw string) (Money, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return NewMoney(d), nil
}

// MustMoney is ParseMoney for literals known to be valid.
func MustMoney(raw string) Money {
	m, err := ParseMoney(raw)
	if err != nil {
		panic(err)
	}
	return m
}

// NewPrice validates that the amount is strictly positive.
func NewPrice(m Money) (Money, error) {
	if !m.value.IsPositive() {
		return Money{}, ErrInvalidPrice
	}
	return m, nil
}

func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// Times multiplies by a quantity and re-rounds to cents.
func (m Money) Times(qty int) Money {
	return NewMoney(m.value.Mul(decimal.NewFromInt(int64(qty))))
}

func (m Money) Add(o Money) Money {
	return NewMoney(m.value.Add(o.value))
}

func (m Money) Equal(o Money) bool {
	return m.value.Equal(o.value)
}

func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

func (m Money) Float64() float64 {
	f, _ := m.value.Float64()
	return f
}

// String renders exactly two decimals.
func (m Money) String() string {
	return m.value.StringFixed(CurrencyPlaces)
}
