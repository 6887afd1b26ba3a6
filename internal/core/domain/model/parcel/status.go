package parcel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of a parcel.
//
//	EN_ATTENTE -> EN_COURS, ANNULE
//	EN_COURS   -> ARRIVE, PERDU
//	ARRIVE     -> RECUPERE, PERDU
//	RECUPERE   -> ARCHIVE
//	PERDU      -> ARCHIVE
//	ARCHIVE, ANNULE: terminal
//
// The transition table below is the single authority for which changes are legal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending: created, waiting for its run to leave.
	Pending

	// InTransit: travelling with its run.
	InTransit

	// Arrived: at destination, not yet collected.
	Arrived

	// Recovered: collected by the recipient.
	Recovered

	// Lost: declared lost in transit or at destination.
	Lost

	// Archived: closed record, no further change.
	Archived

	// Cancelled: withdrawn before departure.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "EN_ATTENTE",
		InTransit: "EN_COURS",
		Arrived:   "ARRIVE",
		Recovered: "RECUPERE",
		Lost:      "PERDU",
		Archived:  "ARCHIVE",
		Cancelled: "ANNULE",
	}
}

func getTransitionTable() map[Status][]Status {
	//nolint:exhaustive // statuses without outgoing transitions are terminal
	return map[Status][]Status{
		Pending:   {InTransit, Cancelled},
		InTransit: {Arrived, Lost},
		Arrived:   {Recovered, Lost},
		Recovered: {Archived},
		Lost:      {Archived},
	}
}

// IsLegalTransition reports whether a parcel may move from one status to another.
// Unknown source statuses have no legal transitions.
func IsLegalTransition(from, to Status) bool {
	for _, next := range getTransitionTable()[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ParseStatus maps a wire code such as "EN_COURS" to a Status.
func ParseStatus(s string) (Status, error) {
	for status, code := range getStatusStrings() {
		if code == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid parcel status", s),
	)
}

// Validate rejects Unknown and any value outside the declared statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal is true for the end states of the lifecycle. RECUPERE and PERDU
// are terminal for delivery purposes even though they may still be archived.
func (s Status) IsTerminal() bool {
	switch s {
	case Recovered, Lost, Archived, Cancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the transition table allows s -> to.
func (s Status) CanTransitionTo(to Status) bool {
	return IsLegalTransition(s, to)
}

// TransitionTo returns the target status when the move is legal and a
// LegalityError naming both statuses otherwise.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return s, errs.NewLegalityError(fmt.Sprintf("%s -> %s is not a legal parcel transition", s, to))
	}
	return to, nil
}
