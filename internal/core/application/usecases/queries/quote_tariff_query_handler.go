package queries

import (
	"context"

	"freight/internal/core/domain/services"
)

// QuoteTariffQueryHandler answers tariff quotes from the calculator alone; it
// never touches storage.
type QuoteTariffQueryHandler struct {
	calculator services.TariffCalculator
}

func NewQuoteTariffQueryHandler(calculator services.TariffCalculator) QuoteTariffQueryHandler {
	return QuoteTariffQueryHandler{calculator: calculator}
}

func (h QuoteTariffQueryHandler) Handle(
	_ context.Context,
	query QuoteTariffQuery,
) (QuoteTariffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteTariffQueryResponse{}, err
	}

	quote, err := h.calculator.Price(query.Request())
	if err != nil {
		return QuoteTariffQueryResponse{}, err
	}

	return QuoteTariffQueryResponse{
		Unit:    quote.Unit,
		Raw:     quote.Raw,
		Final:   quote.Final,
		Minimum: h.calculator.Minimum(),
	}, nil
}
