package commands

import (
	"context"

	"freight/internal/core/application/engine"
	"freight/internal/core/domain/model/snapshot"
)

// CreateCargoRunCommandHandler adds a new OUVERT / EN_ATTENTE run to the snapshot.
type CreateCargoRunCommandHandler struct {
	uowFactory UoWFactory
	engine     *engine.Engine
}

func NewCreateCargoRunCommandHandler(uowFactory UoWFactory, eng *engine.Engine) CreateCargoRunCommandHandler {
	return CreateCargoRunCommandHandler{
		uowFactory: uowFactory,
		engine:     eng,
	}
}

// Handle fails with a ValueIsInvalidError when the id or number is taken.
func (h CreateCargoRunCommandHandler) Handle(ctx context.Context, cmd CreateCargoRunCommand) (engine.Report, error) {
	if err := cmd.Validate(); err != nil {
		return engine.Report{}, err
	}

	return transform(ctx, h.uowFactory, false, func(snap *snapshot.Snapshot) (*snapshot.Snapshot, engine.Report, error) {
		return h.engine.CreateRun(snap, engine.RunSpec{
			ID:        cmd.RunID(),
			Number:    cmd.Number(),
			Mode:      cmd.Mode(),
			MaxWeight: cmd.MaxWeight(),
			Distance:  cmd.Distance(),
		})
	})
}
