package services

import (
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/snapshot"
	"freight/internal/pkg/errs"
)

// BulkRequest selects parcels for one bulk status change. Explicit ParcelIDs
// win; without them every parcel of RunID eligible for Target is selected.
type BulkRequest struct {
	ParcelIDs []kernel.UUID
	RunID     *kernel.UUID
	Target    parcel.Status
}

// Rejection explains why one parcel of a bulk request was not changed.
type Rejection struct {
	ParcelID kernel.UUID
	Reason   string
}

// BulkReport is the per-item outcome of a bulk operation.
type BulkReport struct {
	Applied    []kernel.UUID
	Rejections []Rejection
}

func (r BulkReport) AppliedCount() int {
	return len(r.Applied)
}

// getBulkEligibility maps each allowed bulk target to the statuses the run
// selector picks for it.
func getBulkEligibility() map[parcel.Status][]parcel.Status {
	return map[parcel.Status][]parcel.Status{
		parcel.Recovered: {parcel.Arrived},
		parcel.Lost:      {parcel.InTransit, parcel.Arrived},
	}
}

// IsBulkTarget reports whether status can be requested in bulk.
func IsBulkTarget(status parcel.Status) bool {
	_, ok := getBulkEligibility()[status]
	return ok
}

// BulkCoordinator applies one target status to many parcels with partial
// success: legal moves are applied, the others are reported one by one.
type BulkCoordinator struct {
	validator TransitionValidator
}

func NewBulkCoordinator(validator TransitionValidator) BulkCoordinator {
	return BulkCoordinator{validator: validator}
}

// ApplyBulk returns an updated copy of snap and the report. The returned error
// covers the request as a whole (unsupported target, no selection, unknown
// selector run); per-parcel problems land in the report.
func (b BulkCoordinator) ApplyBulk(
	snap *snapshot.Snapshot,
	req BulkRequest,
	at time.Time,
) (*snapshot.Snapshot, BulkReport, error) {
	if err := req.Target.Validate(); err != nil {
		return nil, BulkReport{}, err
	}
	if !IsBulkTarget(req.Target) {
		return nil, BulkReport{}, errs.NewLegalityError(
			fmt.Sprintf("%s is not a supported bulk target, use %s or %s", req.Target, parcel.Recovered, parcel.Lost),
		)
	}

	out := snap.Clone()
	report := BulkReport{Applied: []kernel.UUID{}, Rejections: []Rejection{}}

	candidates, err := b.selectCandidates(out, req, &report)
	if err != nil {
		return nil, BulkReport{}, err
	}

	for _, p := range candidates {
		from := p.Status()
		if err := b.validator.ValidateParcelTransition(from, req.Target); err != nil {
			report.Rejections = append(report.Rejections, Rejection{
				ParcelID: p.ID(),
				Reason:   fmt.Sprintf("parcel %s: %s -> %s is not a legal transition", p.ID(), from, req.Target),
			})
			continue
		}
		if err := p.TransitionTo(req.Target, at); err != nil {
			report.Rejections = append(report.Rejections, Rejection{ParcelID: p.ID(), Reason: err.Error()})
			continue
		}
		report.Applied = append(report.Applied, p.ID())
	}

	return out, report, nil
}

func (b BulkCoordinator) selectCandidates(
	snap *snapshot.Snapshot,
	req BulkRequest,
	report *BulkReport,
) ([]*parcel.Parcel, error) {
	if len(req.ParcelIDs) > 0 {
		seen := make(map[kernel.UUID]struct{}, len(req.ParcelIDs))
		out := make([]*parcel.Parcel, 0, len(req.ParcelIDs))
		for _, id := range req.ParcelIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			p, err := snap.Parcel(id)
			if err != nil {
				report.Rejections = append(report.Rejections, Rejection{
					ParcelID: id,
					Reason:   fmt.Sprintf("parcel %s does not exist", id),
				})
				continue
			}
			out = append(out, p)
		}
		return out, nil
	}

	if req.RunID == nil {
		return nil, errs.NewValueIsRequiredError("parcel ids or run id")
	}

	run, err := snap.Run(*req.RunID)
	if err != nil {
		return nil, err
	}

	eligible := getBulkEligibility()[req.Target]
	var out []*parcel.Parcel
	for _, p := range snap.ParcelsOf(run) {
		for _, s := range eligible {
			if p.Status() == s {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}
