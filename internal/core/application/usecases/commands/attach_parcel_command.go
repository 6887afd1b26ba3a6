package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrAttachParcelCommandIsNotConstructed = errors.New(
		"AttachParcelCommand must be created via NewAttachParcelCommand constructor",
	)
	ErrDetachParcelCommandIsNotConstructed = errors.New(
		"DetachParcelCommand must be created via NewDetachParcelCommand constructor",
	)
)

// AttachParcelCommand attaches an existing unattached parcel to a run.
type AttachParcelCommand struct {
	runID    kernel.UUID
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAttachParcelCommand(runID, parcelID kernel.UUID) (AttachParcelCommand, error) {
	if err := errors.Join(runID.Validate(), parcelID.Validate()); err != nil {
		return AttachParcelCommand{}, err
	}
	return AttachParcelCommand{
		runID:    runID,
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AttachParcelCommand) Validate() error {
	return c.guard.Validate(ErrAttachParcelCommandIsNotConstructed)
}

func (c AttachParcelCommand) RunID() kernel.UUID {
	return c.runID
}

func (c AttachParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// DetachParcelCommand removes a parcel from its run.
type DetachParcelCommand struct {
	runID    kernel.UUID
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDetachParcelCommand(runID, parcelID kernel.UUID) (DetachParcelCommand, error) {
	if err := errors.Join(runID.Validate(), parcelID.Validate()); err != nil {
		return DetachParcelCommand{}, err
	}
	return DetachParcelCommand{
		runID:    runID,
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DetachParcelCommand) Validate() error {
	return c.guard.Validate(ErrDetachParcelCommandIsNotConstructed)
}

func (c DetachParcelCommand) RunID() kernel.UUID {
	return c.runID
}

func (c DetachParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
