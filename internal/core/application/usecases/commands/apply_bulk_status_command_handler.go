package commands

import (
	"context"

	"freight/internal/core/application/engine"
	"freight/internal/core/domain/model/snapshot"
	"freight/internal/core/domain/services"
)

// ApplyBulkStatusCommandHandler applies a bulk status change with partial
// success. The snapshot is saved whenever the request itself was valid, even
// if every parcel was rejected.
type ApplyBulkStatusCommandHandler struct {
	uowFactory UoWFactory
	engine     *engine.Engine
}

func NewApplyBulkStatusCommandHandler(uowFactory UoWFactory, eng *engine.Engine) ApplyBulkStatusCommandHandler {
	return ApplyBulkStatusCommandHandler{uowFactory: uowFactory, engine: eng}
}

func (h ApplyBulkStatusCommandHandler) Handle(ctx context.Context, cmd ApplyBulkStatusCommand) (engine.Report, error) {
	if err := cmd.Validate(); err != nil {
		return engine.Report{}, err
	}

	return transform(ctx, h.uowFactory, false, func(snap *snapshot.Snapshot) (*snapshot.Snapshot, engine.Report, error) {
		return h.engine.ApplyBulk(snap, services.BulkRequest{
			ParcelIDs: cmd.ParcelIDs(),
			RunID:     cmd.RunID(),
			Target:    cmd.Target(),
		})
	})
}
