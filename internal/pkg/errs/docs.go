// Package errs provides the typed error taxonomy of the freight engine.
// Every kind of failure an operation can report to its caller has a sentinel,
// a struct carrying the details, constructors with and without a cause, and
// Unwrap support so callers can classify errors with errors.Is / errors.As.
//
// Kinds:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed
//     or missing input (the validation family)
//   - LegalityError: a forbidden goods/mode combination or status transition
//   - CapacityError: a run cannot take a parcel (weight bound or sealed run)
//   - ObjectNotFoundError: a referenced run or parcel is absent
//   - VersionIsInvalidError: a stale snapshot was offered for saving
//
// None of these is ever raised as a panic; the outer layers decide the HTTP
// status or UI message.
package errs
