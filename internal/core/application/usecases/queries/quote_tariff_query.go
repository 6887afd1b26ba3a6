package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrQuoteTariffQueryIsNotConstructed = errors.New(
		"QuoteTariffQuery must be created via NewQuoteTariffQuery constructor",
	)
)

// QuoteTariffQuery prices a parcel without storing anything.
//
// The constructor checks its inputs in the same order as the calculator: the
// mode and category first, then whether the goods may travel on the mode, and
// only then the numbers. An illegal pairing is reported as a LegalityError even
// when the weight or distance is also wrong.
//
//	query, err := NewQuoteTariffQuery("alimentaire", "routiere", decimal.NewFromInt(10), decimal.NewFromInt(1000), 1, nil)
//	if err != nil {
//	    return err
//	}
//	quote, err := handler.Handle(ctx, query)
type QuoteTariffQuery struct {
	request services.TariffRequest
	guard   guard.ConstructorGuard
}

func NewQuoteTariffQuery(
	category string,
	mode string,
	weight decimal.Decimal,
	distance decimal.Decimal,
	parcelCount int,
	toxicityTier *int,
) (QuoteTariffQuery, error) {
	transportMode, modeErr := kernel.ParseTransportMode(mode)
	goodsCategory, categoryErr := kernel.NewGoodsCategory(category)
	if err := errors.Join(modeErr, categoryErr); err != nil {
		return QuoteTariffQuery{}, err
	}

	if err := services.CheckLegality(goodsCategory, transportMode); err != nil {
		return QuoteTariffQuery{}, err
	}

	w, weightErr := kernel.NewWeight(weight)
	d, distanceErr := kernel.NewDistance(distance)
	if err := errors.Join(weightErr, distanceErr); err != nil {
		return QuoteTariffQuery{}, err
	}

	var tier *int
	if toxicityTier != nil {
		t := *toxicityTier
		tier = &t
	}

	return QuoteTariffQuery{
		request: services.TariffRequest{
			Category:     goodsCategory,
			Mode:         transportMode,
			Weight:       w,
			Distance:     d,
			ParcelCount:  parcelCount,
			ToxicityTier: tier,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteTariffQuery) Validate() error {
	return q.guard.Validate(ErrQuoteTariffQueryIsNotConstructed)
}

func (q QuoteTariffQuery) Request() services.TariffRequest {
	return q.request
}

// QuoteTariffQueryResponse is a priced request. Minimum is the floor that
// was applied to Raw to obtain Final.
type QuoteTariffQueryResponse struct {
	Unit    kernel.Money
	Raw     kernel.Money
	Final   kernel.Money
	Minimum kernel.Money
}
