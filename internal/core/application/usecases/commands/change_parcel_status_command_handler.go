package commands

import (
	"context"

	"freight/internal/core/application/engine"
	"freight/internal/core/domain/model/snapshot"
)

// ChangeParcelStatusCommandHandler applies one parcel transition. Illegal
// transitions fail with a LegalityError and nothing is saved.
type ChangeParcelStatusCommandHandler struct {
	uowFactory UoWFactory
	engine     *engine.Engine
}

func NewChangeParcelStatusCommandHandler(uowFactory UoWFactory, eng *engine.Engine) ChangeParcelStatusCommandHandler {
	return ChangeParcelStatusCommandHandler{uowFactory: uowFactory, engine: eng}
}

func (h ChangeParcelStatusCommandHandler) Handle(ctx context.Context, cmd ChangeParcelStatusCommand) (engine.Report, error) {
	if err := cmd.Validate(); err != nil {
		return engine.Report{}, err
	}

	return transform(ctx, h.uowFactory, false, func(snap *snapshot.Snapshot) (*snapshot.Snapshot, engine.Report, error) {
		return h.engine.TransitionParcel(snap, cmd.ParcelID(), cmd.Target())
	})
}
