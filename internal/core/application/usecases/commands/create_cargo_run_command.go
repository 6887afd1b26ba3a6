package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateCargoRunCommandIsNotConstructed = errors.New(
	"CreateCargoRunCommand must be created via NewCreateCargoRunCommand constructor",
)

// CreateCargoRunCommand represents a request to open a new cargo run.
//
// Example:
//
//	maxWeight, _ := kernel.WeightFromFloat(1200)
//	distance, _ := kernel.DistanceFromFloat(450)
//	cmd, err := NewCreateCargoRunCommand(kernel.NewUUID(), "R-2025-014", kernel.Road, maxWeight, distance)
//	if err != nil {
//	    return fmt.Errorf("invalid run data: %w", err)
//	}
//	_, err = handler.Handle(ctx, cmd)
type CreateCargoRunCommand struct { //nolint:recvcheck //using for validation
	runID     kernel.UUID
	number    string
	mode      kernel.TransportMode
	maxWeight kernel.Weight
	distance  kernel.Distance

	guard guard.ConstructorGuard
}

// NewCreateCargoRunCommand validates every field and joins all failures.
func NewCreateCargoRunCommand(
	runID kernel.UUID,
	number string,
	mode kernel.TransportMode,
	maxWeight kernel.Weight,
	distance kernel.Distance,
) (CreateCargoRunCommand, error) {
	cmd := CreateCargoRunCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRunID(runID),
		cmd.setNumber(number),
		mode.Validate(),
		maxWeight.Validate(),
		distance.Validate(),
	); err != nil {
		return CreateCargoRunCommand{}, err
	}

	cmd.mode = mode
	cmd.maxWeight = maxWeight
	cmd.distance = distance
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCargoRunCommand) Validate() error {
	return c.guard.Validate(ErrCreateCargoRunCommandIsNotConstructed)
}

func (c CreateCargoRunCommand) RunID() kernel.UUID {
	return c.runID
}

func (c CreateCargoRunCommand) Number() string {
	return c.number
}

func (c CreateCargoRunCommand) Mode() kernel.TransportMode {
	return c.mode
}

func (c CreateCargoRunCommand) MaxWeight() kernel.Weight {
	return c.maxWeight
}

func (c CreateCargoRunCommand) Distance() kernel.Distance {
	return c.distance
}

func (c *CreateCargoRunCommand) setRunID(runID kernel.UUID) error {
	if err := runID.Validate(); err != nil {
		return err
	}
	c.runID = runID
	return nil
}

func (c *CreateCargoRunCommand) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("run number")
	}
	c.number = number
	return nil
}
