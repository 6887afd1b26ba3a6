package commands

import (
	"context"

	"freight/internal/core/application/engine"
	"freight/internal/core/domain/model/snapshot"
)

// CreateParcelCommandHandler creates a parcel and, when the command names a
// run, prices it for that run and attaches it.
//
// Example:
//
//	cmd, _ := NewCreateParcelCommand(kernel.NewUUID(), &runID, weight, kernel.Food, 1, nil)
//	report, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrCapacity):
//	    // the run is sealed or full
//	case errors.Is(err, errs.ErrLegality):
//	    // the goods may not travel on this run's mode
//	}
type CreateParcelCommandHandler struct {
	uowFactory UoWFactory
	engine     *engine.Engine
}

func NewCreateParcelCommandHandler(uowFactory UoWFactory, eng *engine.Engine) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		engine:     eng,
	}
}

func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (engine.Report, error) {
	if err := cmd.Validate(); err != nil {
		return engine.Report{}, err
	}

	return transform(ctx, h.uowFactory, false, func(snap *snapshot.Snapshot) (*snapshot.Snapshot, engine.Report, error) {
		return h.engine.CreateParcel(snap, cmd.RunID(), engine.ParcelSpec{
			ID:           cmd.ParcelID(),
			Weight:       cmd.Weight(),
			Category:     cmd.Category(),
			Count:        cmd.Count(),
			ToxicityTier: cmd.ToxicityTier(),
		})
	})
}
