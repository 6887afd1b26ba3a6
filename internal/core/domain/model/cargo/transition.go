package cargo

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Transition is a requested change on one of a run's two status axes.
type Transition string

const (
	// Close seals the run: OUVERT -> FERME.
	Close Transition = "close"
	// Reopen unseals a run that has not left yet: FERME -> OUVERT, progress EN_ATTENTE.
	Reopen Transition = "reopen"
	// Depart starts the leg: EN_ATTENTE -> EN_COURS, availability FERME.
	Depart Transition = "depart"
	// Arrive ends the leg: EN_COURS -> ARRIVE.
	Arrive Transition = "arrive"
)

// ParseTransition accepts a transition name in any case, surrounding spaces ignored.
func ParseTransition(s string) (Transition, error) {
	t := Transition(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate returns ValueIsRequired for an empty transition and ValueIsInvalid
// for an unknown one.
func (t Transition) Validate() error {
	switch t {
	case Close, Reopen, Depart, Arrive:
		return nil
	case "":
		return errs.NewValueIsRequiredError("run transition")
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"run transition is invalid",
			fmt.Errorf("%q is not one of close, reopen, depart, arrive", string(t)),
		)
	}
}

func (t Transition) String() string {
	return string(t)
}
