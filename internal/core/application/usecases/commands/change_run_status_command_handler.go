package commands

import (
	"context"

	"freight/internal/core/application/engine"
	"freight/internal/core/domain/model/snapshot"
)

// ChangeRunStatusCommandHandler applies a run transition and saves the
// snapshot together with the parcel corrections reconciliation made.
type ChangeRunStatusCommandHandler struct {
	uowFactory UoWFactory
	engine     *engine.Engine
}

func NewChangeRunStatusCommandHandler(uowFactory UoWFactory, eng *engine.Engine) ChangeRunStatusCommandHandler {
	return ChangeRunStatusCommandHandler{uowFactory: uowFactory, engine: eng}
}

func (h ChangeRunStatusCommandHandler) Handle(ctx context.Context, cmd ChangeRunStatusCommand) (engine.Report, error) {
	if err := cmd.Validate(); err != nil {
		return engine.Report{}, err
	}

	return transform(ctx, h.uowFactory, false, func(snap *snapshot.Snapshot) (*snapshot.Snapshot, engine.Report, error) {
		return h.engine.ChangeRunStatus(snap, cmd.RunID(), cmd.Transition())
	})
}
