package cargo

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Availability tells whether a run still accepts new parcels.
type Availability int

const (
	UnknownAvailability Availability = iota
	// Open runs accept new parcels.
	Open
	// Closed runs are sealed. A run must be closed before it departs.
	Closed
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		Open:   "OUVERT",
		Closed: "FERME",
	}
}

// ParseAvailability maps a wire code (OUVERT, FERME) to an Availability.
func ParseAvailability(s string) (Availability, error) {
	for a, code := range getAvailabilityStrings() {
		if code == s {
			return a, nil
		}
	}
	return UnknownAvailability, errs.NewValueIsInvalidErrorWithCause(
		"availability is invalid",
		fmt.Errorf("%q is not one of OUVERT, FERME", s),
	)
}

// Validate rejects values outside OUVERT and FERME.
func (a Availability) Validate() error {
	if _, ok := getAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability is invalid", fmt.Errorf("unknown value %d", int(a)))
	}
	return nil
}

// String returns the wire code, or "UNKNOWN" for invalid values.
func (a Availability) String() string {
	if s, ok := getAvailabilityStrings()[a]; ok {
		return s
	}
	return "UNKNOWN"
}

// Progress is the transport phase of a run: PENDING, IN_TRANSIT, then ARRIVED.
// ARRIVED is terminal.
type Progress int

const (
	UnknownProgress Progress = iota
	Pending
	InTransit
	Arrived
)

func getProgressStrings() map[Progress]string {
	return map[Progress]string{
		Pending:   "EN_ATTENTE",
		InTransit: "EN_COURS",
		Arrived:   "ARRIVE",
	}
}

// ParseProgress maps a wire code (EN_ATTENTE, EN_COURS, ARRIVE) to a Progress.
func ParseProgress(s string) (Progress, error) {
	for p, code := range getProgressStrings() {
		if code == s {
			return p, nil
		}
	}
	return UnknownProgress, errs.NewValueIsInvalidErrorWithCause(
		"progress is invalid",
		fmt.Errorf("%q is not one of EN_ATTENTE, EN_COURS, ARRIVE", s),
	)
}

// Validate rejects values outside EN_ATTENTE, EN_COURS and ARRIVE.
func (p Progress) Validate() error {
	if _, ok := getProgressStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("progress is invalid", fmt.Errorf("unknown value %d", int(p)))
	}
	return nil
}

// String returns the wire code, or "UNKNOWN" for invalid values.
func (p Progress) String() string {
	if s, ok := getProgressStrings()[p]; ok {
		return s
	}
	return "UNKNOWN"
}
