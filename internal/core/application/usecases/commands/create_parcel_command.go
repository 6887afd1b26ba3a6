package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand registers a parcel, optionally attaching it to a run in
// the same step. The tariff is computed by the engine from the run's mode and
// distance; the command only carries what the customer declared.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID     kernel.UUID
	runID        *kernel.UUID
	weight       kernel.Weight
	category     kernel.GoodsCategory
	count        int
	toxicityTier *int

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand validates the declared fields. runID may be nil.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	runID *kernel.UUID,
	weight kernel.Weight,
	category kernel.GoodsCategory,
	count int,
	toxicityTier *int,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		parcelID: parcelID,
		weight:   weight,
		category: category,
		count:    count,
		guard:    guard.NewConstructorGuard(),
	}

	var runErr error
	if runID != nil {
		runErr = runID.Validate()
	}

	var countErr error
	if count < 1 {
		countErr = errs.NewValueIsOutOfRangeError("count", count, 1, "unbounded")
	}

	if err := errors.Join(
		parcelID.Validate(),
		runErr,
		weight.Validate(),
		category.Validate(),
		countErr,
		parcel.ValidateToxicityTier(category, toxicityTier),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	if runID != nil {
		id := *runID
		cmd.runID = &id
	}
	if toxicityTier != nil {
		tier := *toxicityTier
		cmd.toxicityTier = &tier
	}
	return cmd, nil
}

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RunID is the run to attach to, nil to create the parcel unattached.
func (c CreateParcelCommand) RunID() *kernel.UUID {
	return c.runID
}

func (c CreateParcelCommand) Weight() kernel.Weight {
	return c.weight
}

func (c CreateParcelCommand) Category() kernel.GoodsCategory {
	return c.category
}

func (c CreateParcelCommand) Count() int {
	return c.count
}

func (c CreateParcelCommand) ToxicityTier() *int {
	return c.toxicityTier
}
