package services

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultMinimumTariff is the floor applied to every final tariff unless
// configured otherwise.
const DefaultMinimumTariff int64 = 10000

// Legality rules for goods category and transport mode.
const (
	RuleChemicalSeaOnly = "chemical goods restricted to sea transport"
	RuleFragileNotSea   = "fragile goods forbidden on sea transport"
)

var (
	seaHandlingFee         = decimal.NewFromInt(5000)
	chemicalMaintenanceFee = decimal.NewFromInt(10000)
)

// TariffRequest is the input of TariffCalculator.Price. ToxicityTier is read
// only for chemical goods.
type TariffRequest struct {
	Category     kernel.GoodsCategory
	Mode         kernel.TransportMode
	Weight       kernel.Weight
	Distance     kernel.Distance
	ParcelCount  int
	ToxicityTier *int
}

// Quote is a priced request. Unit is the price of one item, Raw is Unit times
// the parcel count, Final is Raw raised to the minimum tariff.
type Quote struct {
	Unit  kernel.Money
	Raw   kernel.Money
	Final kernel.Money
}

// TariffCalculator prices a parcel for a transport mode. It is a pure function
// of its request and the configured minimum.
//
// Per unit, by category and mode (w = weight, d = distance, t = toxicity tier):
//
//	                      routiere      maritime              aerienne
//	alimentaire           w*100*d       w*50*d + 5000         w*300*d
//	chimique              illegal       w*500*t + 10000       illegal
//	materiel-fragile      w*200*d       illegal               w*1000
//	materiel-incassable   w*200*d       w*400*d               w*1000
//	other                 w*100*d       w*100*d               w*100*d
type TariffCalculator struct {
	minimum kernel.Money
}

// NewTariffCalculator returns a calculator flooring final tariffs at minimum.
func NewTariffCalculator(minimum kernel.Money) TariffCalculator {
	return TariffCalculator{minimum: minimum}
}

func (c TariffCalculator) Minimum() kernel.Money {
	return c.minimum
}

// Price checks the enums, then legality, then the numeric inputs, and prices
// the request. An illegal combination is always reported as a LegalityError,
// whatever the numbers are.
func (c TariffCalculator) Price(req TariffRequest) (Quote, error) {
	if err := errors.Join(req.Mode.Validate(), req.Category.Validate()); err != nil {
		return Quote{}, err
	}

	if err := CheckLegality(req.Category, req.Mode); err != nil {
		return Quote{}, err
	}

	if err := validateTariffNumbers(req); err != nil {
		return Quote{}, err
	}

	unit := unitPrice(req)
	raw := unit.Mul(decimal.NewFromInt(int64(req.ParcelCount)))

	unitMoney, err := kernel.NewMoney(unit)
	if err != nil {
		return Quote{}, err
	}
	rawMoney, err := kernel.NewMoney(raw)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Unit:  unitMoney,
		Raw:   rawMoney,
		Final: rawMoney.Max(c.minimum),
	}, nil
}

// CheckLegality returns a LegalityError when goods of the category may not
// travel on the mode.
func CheckLegality(category kernel.GoodsCategory, mode kernel.TransportMode) error {
	switch {
	case category == kernel.Chemical && mode != kernel.Sea:
		return errs.NewLegalityError(RuleChemicalSeaOnly)
	case category == kernel.Fragile && mode == kernel.Sea:
		return errs.NewLegalityError(RuleFragileNotSea)
	default:
		return nil
	}
}

func validateTariffNumbers(req TariffRequest) error {
	var joined []error

	if err := req.Weight.Validate(); err != nil {
		joined = append(joined, err)
	} else if req.Weight.IsZero() {
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause("weight is invalid", errors.New("0 is not greater than 0")))
	}

	joined = append(joined, req.Distance.Validate())

	if req.ParcelCount < 1 {
		joined = append(joined, errs.NewValueIsInvalidErrorWithCause(
			"parcel count is invalid",
			fmt.Errorf("%d is less than 1", req.ParcelCount),
		))
	}

	joined = append(joined, parcel.ValidateToxicityTier(req.Category, tierFor(req)))

	return errors.Join(joined...)
}

// tierFor ignores a tier sent for non-chemical goods, the quote does not use it.
func tierFor(req TariffRequest) *int {
	if req.Category != kernel.Chemical {
		return nil
	}
	return req.ToxicityTier
}

func unitPrice(req TariffRequest) decimal.Decimal {
	w := req.Weight.Decimal()
	d := req.Distance.Decimal()

	perKm := func(rate int64) decimal.Decimal {
		return w.Mul(decimal.NewFromInt(rate)).Mul(d)
	}
	flat := func(rate int64) decimal.Decimal {
		return w.Mul(decimal.NewFromInt(rate))
	}

	switch req.Category {
	case kernel.Food:
		switch req.Mode {
		case kernel.Sea:
			return perKm(50).Add(seaHandlingFee)
		case kernel.Air:
			return perKm(300)
		default:
			return perKm(100)
		}
	case kernel.Chemical:
		tier := decimal.NewFromInt(int64(*req.ToxicityTier))
		return flat(500).Mul(tier).Add(chemicalMaintenanceFee)
	case kernel.Fragile:
		if req.Mode == kernel.Air {
			return flat(1000)
		}
		return perKm(200)
	case kernel.Unbreakable:
		switch req.Mode {
		case kernel.Sea:
			return perKm(400)
		case kernel.Air:
			return flat(1000)
		default:
			return perKm(200)
		}
	default:
		return perKm(100)
	}
}
