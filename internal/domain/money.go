package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary quantity held at exactly two fractional
// digits. Every construction quantizes with round-half-up, so 0.005 becomes
// 0.01; amounts are never represented as binary floating point.
type Money struct {
	value decimal.Decimal
}

func NewMoney(v decimal.Decimal) Money {
	return Money{value: v.Round(2)}
}

func MoneyFromString(raw string) (Money, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Money{}, err
	}
	return NewMoney(v), nil
}

func (m Money) Add(o Money) Money {
	return Money{value: m.value.Add(o.value)}
}

func (m Money) Sub(o Money) Money {
	return Money{value: m.value.Sub(o.value)}
}

func (m Money) GreaterThanOrEqual(o Money) bool {
	return m.value.GreaterThanOrEqual(o.value)
}

func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// Decimal exposes the exact underlying value for accrual arithmetic, which
// accumulates at full precision and quantizes only the final total.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

func (m Money) String() string {
	return m.value.StringFixed(2)
}
