// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// The package includes error types for the error taxonomy of the order core:
//   - ObjectNotFoundError: an order, courier, promo or user id does not resolve
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsOutOfRangeError: a numeric value is outside its permitted range
//   - UnauthorizedError: the acting party may not perform the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
package errs
