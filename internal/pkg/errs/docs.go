// Package errs provides standardized error types for the logistics application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error class per failure scenario the dispatch core
// can report to its callers:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ConflictError: a uniqueness or protection rule was violated
//   - InvalidStateError: an operation was requested against an entity whose
//     current state forbids it
//   - InvalidTransitionError: a delivery status transition not present in the
//     transition table was attempted
//   - StoreUnavailableError: the underlying persistence is unreachable
//   - ValueIsRequiredError / ValueIsInvalidError: constructor validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify any error against a sentinel
//
// Callers are expected to classify with errors.Is against the sentinels and
// type-assert for structured detail (entity id, current state, attempted state)
// when rendering precise messages.
package errs
