package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrReconcileRunsCommandIsNotConstructed = errors.New(
	"ReconcileRunsCommand must be created via NewReconcileRunsCommand constructor",
)

// ReconcileRunsCommand triggers a reconciliation pass over every run.
// This is a parameterless command; the cron job issues it on a schedule.
type ReconcileRunsCommand struct {
	guard guard.ConstructorGuard
}

func NewReconcileRunsCommand() ReconcileRunsCommand {
	return ReconcileRunsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *ReconcileRunsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileRunsCommandIsNotConstructed)
}
