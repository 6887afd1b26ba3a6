package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/guard"
)

var ErrChangeParcelStatusCommandIsNotConstructed = errors.New(
	"ChangeParcelStatusCommand must be created via NewChangeParcelStatusCommand constructor",
)

// ChangeParcelStatusCommand moves a single parcel to a new status.
type ChangeParcelStatusCommand struct {
	parcelID kernel.UUID
	target   parcel.Status

	guard guard.ConstructorGuard
}

func NewChangeParcelStatusCommand(parcelID kernel.UUID, target parcel.Status) (ChangeParcelStatusCommand, error) {
	if err := errors.Join(parcelID.Validate(), target.Validate()); err != nil {
		return ChangeParcelStatusCommand{}, err
	}
	return ChangeParcelStatusCommand{
		parcelID: parcelID,
		target:   target,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeParcelStatusCommandIsNotConstructed)
}

func (c ChangeParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c ChangeParcelStatusCommand) Target() parcel.Status {
	return c.target
}
