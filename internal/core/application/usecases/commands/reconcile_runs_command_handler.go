package commands

import (
	"context"

	"freight/internal/core/application/engine"
	"freight/internal/core/domain/model/snapshot"
)

// ReconcileRunsCommandHandler runs the reconciler over the stored snapshot.
// A clean snapshot is reported with Noop set and is not written back.
type ReconcileRunsCommandHandler struct {
	uowFactory UoWFactory
	engine     *engine.Engine
}

func NewReconcileRunsCommandHandler(uowFactory UoWFactory, eng *engine.Engine) ReconcileRunsCommandHandler {
	return ReconcileRunsCommandHandler{uowFactory: uowFactory, engine: eng}
}

func (h ReconcileRunsCommandHandler) Handle(ctx context.Context, cmd ReconcileRunsCommand) (engine.Report, error) {
	if err := cmd.Validate(); err != nil {
		return engine.Report{}, err
	}

	return transform(ctx, h.uowFactory, true, func(snap *snapshot.Snapshot) (*snapshot.Snapshot, engine.Report, error) {
		return h.engine.Reconcile(snap)
	})
}
