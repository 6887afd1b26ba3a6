package commands

import (
	"errors"
	"slices"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrApplyBulkStatusCommandIsNotConstructed = errors.New(
	"ApplyBulkStatusCommand must be created via NewApplyBulkStatusCommand constructor",
)

// ApplyBulkStatusCommand moves many parcels to RECUPERE or PERDU. Either
// parcelIDs or runID selects them; explicit ids take precedence.
//
// Example:
//
//	cmd, _ := NewApplyBulkStatusCommand(nil, &runID, parcel.Recovered)
//	report, err := handler.Handle(ctx, cmd)
//	log.Printf("%d recovered, %d rejected", len(report.Applied), len(report.Rejections))
type ApplyBulkStatusCommand struct {
	parcelIDs []kernel.UUID
	runID     *kernel.UUID
	target    parcel.Status

	guard guard.ConstructorGuard
}

func NewApplyBulkStatusCommand(
	parcelIDs []kernel.UUID,
	runID *kernel.UUID,
	target parcel.Status,
) (ApplyBulkStatusCommand, error) {
	joined := []error{target.Validate()}
	for _, id := range parcelIDs {
		joined = append(joined, id.Validate())
	}
	if runID != nil {
		joined = append(joined, runID.Validate())
	}
	if len(parcelIDs) == 0 && runID == nil {
		joined = append(joined, errs.NewValueIsRequiredError("parcel ids or run id"))
	}
	if err := errors.Join(joined...); err != nil {
		return ApplyBulkStatusCommand{}, err
	}

	cmd := ApplyBulkStatusCommand{
		parcelIDs: slices.Clone(parcelIDs),
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}
	if runID != nil {
		id := *runID
		cmd.runID = &id
	}
	return cmd, nil
}

func (c ApplyBulkStatusCommand) Validate() error {
	return c.guard.Validate(ErrApplyBulkStatusCommandIsNotConstructed)
}

func (c ApplyBulkStatusCommand) ParcelIDs() []kernel.UUID {
	return slices.Clone(c.parcelIDs)
}

func (c ApplyBulkStatusCommand) RunID() *kernel.UUID {
	return c.runID
}

func (c ApplyBulkStatusCommand) Target() parcel.Status {
	return c.target
}
