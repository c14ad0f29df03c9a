// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types grouped by how callers react to them:
//   - Invalid input: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - Missing objects: ObjectNotFoundError
//   - Lifecycle rules: InvalidTransitionError, PreconditionFailedError
//   - Concurrency: VersionConflictError (retryable after reloading)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels, which keeps
// transport adapters independent of the concrete struct types.
package errs
