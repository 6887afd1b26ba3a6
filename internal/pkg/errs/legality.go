package errs

import (
	"errors"
	"fmt"
)

var ErrLegality = errors.New("operation is not legal")

// LegalityError reports a hard business rule violation: a goods category that may
// not travel on a transport mode, or a status transition absent from the state table.
type LegalityError struct {
	Rule  string
	Cause error
}

func NewLegalityError(rule string) *LegalityError {
	return &LegalityError{Rule: rule}
}

func NewLegalityErrorWithCause(rule string, cause error) *LegalityError {
	return &LegalityError{Rule: rule, Cause: cause}
}

func (e *LegalityError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrLegality, e.Rule), e.Cause)
}

func (e *LegalityError) Unwrap() error {
	return ErrLegality
}
