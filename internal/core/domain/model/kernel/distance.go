package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrDistanceIsNotConstructed is returned when a zero-value Distance is used.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError("Distance must be created via NewDistance")

// Distance is the length of a run's leg in kilometres; always positive.
type Distance struct {
	km    decimal.Decimal
	guard guard.ConstructorGuard
}

func NewDistance(km decimal.Decimal) (Distance, error) {
	if !km.IsPositive() {
		return Distance{}, errs.NewValueIsInvalidErrorWithCause(
			"distance is invalid",
			fmt.Errorf("%s is not greater than 0", km),
		)
	}
	return Distance{km: km, guard: guard.NewConstructorGuard()}, nil
}

func DistanceFromFloat(km float64) (Distance, error) {
	return NewDistance(decimal.NewFromFloat(km))
}

func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

func (d Distance) Decimal() decimal.Decimal {
	return d.km
}

func (d Distance) String() string {
	return d.km.String()
}
