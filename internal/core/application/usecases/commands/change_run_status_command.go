package commands

import (
	"errors"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrChangeRunStatusCommandIsNotConstructed = errors.New(
	"ChangeRunStatusCommand must be created via NewChangeRunStatusCommand constructor",
)

// ChangeRunStatusCommand closes, reopens, departs or lands a run.
//
// Example:
//
//	cmd, _ := NewChangeRunStatusCommand(runID, cargo.Depart)
//	report, err := handler.Handle(ctx, cmd)
//	// report.Corrections lists the parcels moved to EN_COURS
type ChangeRunStatusCommand struct {
	runID      kernel.UUID
	transition cargo.Transition

	guard guard.ConstructorGuard
}

func NewChangeRunStatusCommand(runID kernel.UUID, transition cargo.Transition) (ChangeRunStatusCommand, error) {
	if err := errors.Join(runID.Validate(), transition.Validate()); err != nil {
		return ChangeRunStatusCommand{}, err
	}
	return ChangeRunStatusCommand{
		runID:      runID,
		transition: transition,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeRunStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeRunStatusCommandIsNotConstructed)
}

func (c ChangeRunStatusCommand) RunID() kernel.UUID {
	return c.runID
}

func (c ChangeRunStatusCommand) Transition() cargo.Transition {
	return c.transition
}
