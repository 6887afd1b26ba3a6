package errs

import (
	"errors"
	"fmt"
)

var ErrCapacity = errors.New("capacity is insufficient")

// CapacityError reports that a run cannot take a parcel, either because the
// weight bound would be exceeded or because the run is sealed.
type CapacityError struct {
	ParamName string
	Reason    string
	Cause     error
}

func NewCapacityError(paramName, reason string) *CapacityError {
	return &CapacityError{ParamName: paramName, Reason: reason}
}

func NewCapacityErrorWithCause(paramName, reason string, cause error) *CapacityError {
	return &CapacityError{ParamName: paramName, Reason: reason, Cause: cause}
}

func (e *CapacityError) Error() string {
	return withCause(fmt.Sprintf("%s: %s: %s", ErrCapacity, e.ParamName, e.Reason), e.Cause)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}
