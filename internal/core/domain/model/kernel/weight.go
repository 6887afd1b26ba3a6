package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrWeightIsNotConstructed is returned when a zero-value Weight is used.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("Weight must be created via NewWeight or ZeroWeight")

// Weight is a mass in kilograms. Arithmetic is decimal so that capacity sums
// compare exactly against a run's maximum.
type Weight struct {
	kg    decimal.Decimal
	guard guard.ConstructorGuard
}

// NewWeight returns a strictly positive weight.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if !kg.IsPositive() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%s is not greater than 0", kg),
		)
	}
	return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
}

// WeightFromFloat is a convenience for callers holding a float64.
func WeightFromFloat(kg float64) (Weight, error) {
	return NewWeight(decimal.NewFromFloat(kg))
}

// ZeroWeight is the neutral element used when summing loads.
func ZeroWeight() Weight {
	return Weight{kg: decimal.Zero, guard: guard.NewConstructorGuard()}
}

func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

func (w Weight) Decimal() decimal.Decimal {
	return w.kg
}

func (w Weight) Add(other Weight) Weight {
	return Weight{kg: w.kg.Add(other.kg), guard: guard.NewConstructorGuard()}
}

// Sub never goes below zero.
func (w Weight) Sub(other Weight) Weight {
	kg := w.kg.Sub(other.kg)
	if kg.IsNegative() {
		kg = decimal.Zero
	}
	return Weight{kg: kg, guard: guard.NewConstructorGuard()}
}

func (w Weight) GreaterThan(other Weight) bool {
	return w.kg.GreaterThan(other.kg)
}

func (w Weight) IsEqual(other Weight) bool {
	return w.kg.Equal(other.kg)
}

func (w Weight) IsZero() bool {
	return w.kg.IsZero()
}

func (w Weight) String() string {
	return w.kg.String()
}
