package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetRunLoadQueryIsNotConstructed = errors.New(
		"GetRunLoadQuery must be created via NewGetRunLoadQuery constructor",
	)
)

// GetRunLoadQuery reads how loaded a run is: its limits, the weight of the
// parcels attached to it and how many of them sit in each status.
type GetRunLoadQuery struct {
	runID kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetRunLoadQuery(runID kernel.UUID) (GetRunLoadQuery, error) {
	if err := runID.Validate(); err != nil {
		return GetRunLoadQuery{}, err
	}
	return GetRunLoadQuery{runID: runID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRunLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetRunLoadQueryIsNotConstructed)
}

func (q GetRunLoadQuery) RunID() kernel.UUID {
	return q.runID
}

// GetRunLoadQueryResponse is the load of one run. Statuses hold wire codes
// (OUVERT, EN_COURS, ...) as stored. ParcelsByStatus only lists statuses that
// have at least one parcel.
type GetRunLoadQueryResponse struct {
	ID              kernel.UUID
	Number          string
	Mode            string
	Availability    string
	Progress        string
	MaxWeight       decimal.Decimal
	UsedWeight      decimal.Decimal
	RemainingWeight decimal.Decimal
	Distance        decimal.Decimal
	PriceTotal      decimal.Decimal
	ParcelCount     int
	ParcelsByStatus map[string]int
}
