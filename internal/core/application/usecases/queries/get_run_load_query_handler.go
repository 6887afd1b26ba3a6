package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetRunLoadQueryHandler reads run load straight from the snapshot tables.
// Used weight is summed from the attached parcels on every call, never read
// from a stored counter.
type GetRunLoadQueryHandler struct {
	db *gorm.DB
}

func NewGetRunLoadQueryHandler(db *gorm.DB) GetRunLoadQueryHandler {
	return GetRunLoadQueryHandler{db: db}
}

func (h GetRunLoadQueryHandler) Handle(
	ctx context.Context,
	query GetRunLoadQuery,
) (GetRunLoadQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRunLoadQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	runID := query.RunID()

	var run struct {
		ID           uuid.UUID
		Number       string
		Mode         string
		Availability string
		Progress     string
		MaxWeight    decimal.Decimal
		Distance     decimal.Decimal
		PriceTotal   decimal.Decimal
	}
	result := db.Raw(`
		SELECT
			id,
			number,
			mode,
			availability,
			progress,
			max_weight,
			distance,
			price_total
		FROM cargo_runs
		WHERE id = ?
	`, runID.Bytes()).Scan(&run)
	if result.Error != nil {
		return GetRunLoadQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetRunLoadQueryResponse{}, errs.NewObjectNotFoundError("run", runID)
	}

	rows, err := db.Raw(`
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(weight), 0)
		FROM parcels
		WHERE run_id = ?
		GROUP BY status
		ORDER BY status
	`, runID.Bytes()).Rows()
	if err != nil {
		return GetRunLoadQueryResponse{}, err
	}
	defer rows.Close()

	id, err := kernel.UUIDFromBytes(run.ID[:])
	if err != nil {
		return GetRunLoadQueryResponse{}, err
	}

	resp := GetRunLoadQueryResponse{
		ID:              id,
		Number:          run.Number,
		Mode:            run.Mode,
		Availability:    run.Availability,
		Progress:        run.Progress,
		MaxWeight:       run.MaxWeight,
		UsedWeight:      decimal.Zero,
		Distance:        run.Distance,
		PriceTotal:      run.PriceTotal,
		ParcelsByStatus: make(map[string]int),
	}

	for rows.Next() {
		var (
			status string
			count  int
			weight decimal.Decimal
		)
		if err = rows.Scan(&status, &count, &weight); err != nil {
			return GetRunLoadQueryResponse{}, err
		}
		resp.ParcelsByStatus[status] = count
		resp.ParcelCount += count
		resp.UsedWeight = resp.UsedWeight.Add(weight)
	}
	if err = rows.Err(); err != nil {
		return GetRunLoadQueryResponse{}, err
	}

	resp.RemainingWeight = decimal.Max(resp.MaxWeight.Sub(resp.UsedWeight), decimal.Zero)
	return resp, nil
}
