package commands

import (
	"context"

	"freight/internal/core/application/engine"
	"freight/internal/core/domain/model/snapshot"
)

// AttachParcelCommandHandler reprices a parcel for the target run and attaches
// it within the run's capacity.
type AttachParcelCommandHandler struct {
	uowFactory UoWFactory
	engine     *engine.Engine
}

func NewAttachParcelCommandHandler(uowFactory UoWFactory, eng *engine.Engine) AttachParcelCommandHandler {
	return AttachParcelCommandHandler{uowFactory: uowFactory, engine: eng}
}

func (h AttachParcelCommandHandler) Handle(ctx context.Context, cmd AttachParcelCommand) (engine.Report, error) {
	if err := cmd.Validate(); err != nil {
		return engine.Report{}, err
	}

	return transform(ctx, h.uowFactory, false, func(snap *snapshot.Snapshot) (*snapshot.Snapshot, engine.Report, error) {
		return h.engine.AttachParcel(snap, cmd.RunID(), cmd.ParcelID())
	})
}

// DetachParcelCommandHandler removes a parcel from its run.
type DetachParcelCommandHandler struct {
	uowFactory UoWFactory
	engine     *engine.Engine
}

func NewDetachParcelCommandHandler(uowFactory UoWFactory, eng *engine.Engine) DetachParcelCommandHandler {
	return DetachParcelCommandHandler{uowFactory: uowFactory, engine: eng}
}

func (h DetachParcelCommandHandler) Handle(ctx context.Context, cmd DetachParcelCommand) (engine.Report, error) {
	if err := cmd.Validate(); err != nil {
		return engine.Report{}, err
	}

	return transform(ctx, h.uowFactory, false, func(snap *snapshot.Snapshot) (*snapshot.Snapshot, engine.Report, error) {
		return h.engine.DetachParcel(snap, cmd.RunID(), cmd.ParcelID())
	})
}
