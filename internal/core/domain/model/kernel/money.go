package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative tariff amount. The zero value is zero money.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromInt panics on negative input; it is meant for constants.
func MoneyFromInt(amount int64) Money {
	m, err := NewMoney(decimal.NewFromInt(amount))
	if err != nil {
		panic(err)
	}
	return m
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub never goes below zero.
func (m Money) Sub(other Money) Money {
	amount := m.amount.Sub(other.amount)
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return Money{amount: amount}
}

func (m Money) Mul(factor int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(factor))}
}

// Max returns the larger of m and other.
func (m Money) Max(other Money) Money {
	if other.amount.GreaterThan(m.amount) {
		return other
	}
	return m
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
