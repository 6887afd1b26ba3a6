package services

import (
	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/parcel"
)

// TransitionValidator answers whether a status change is legal. The parcel
// table lives in the parcel package; run rules live on cargo.Run.
type TransitionValidator struct{}

func NewTransitionValidator() TransitionValidator {
	return TransitionValidator{}
}

// IsParcelTransitionLegal is total over every pair of statuses. Unknown
// sources have no legal target.
func (TransitionValidator) IsParcelTransitionLegal(from, to parcel.Status) bool {
	return parcel.IsLegalTransition(from, to)
}

// ValidateParcelTransition returns a LegalityError naming both statuses when
// from -> to is illegal.
func (TransitionValidator) ValidateParcelTransition(from, to parcel.Status) error {
	_, err := from.TransitionTo(to)
	return err
}

// ValidateRunTransition checks t against the run's availability and progress.
func (TransitionValidator) ValidateRunTransition(run *cargo.Run, t cargo.Transition) error {
	if err := run.Validate(); err != nil {
		return err
	}
	return run.CanApply(t)
}
