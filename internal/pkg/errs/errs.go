package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel for lookups of unknown identifiers.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid is the sentinel for malformed values.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange is the sentinel for values outside their allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired is the sentinel for missing mandatory values.
	ErrValueIsRequired = errors.New("value is required")
	// ErrVersionIsInvalid is the sentinel for malformed concurrency versions.
	ErrVersionIsInvalid = errors.New("version is invalid")
	// ErrInvalidTransition is the sentinel for status changes the state machine forbids.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrPreconditionFailed is the sentinel for structurally valid requests whose business rule is unmet.
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrVersionConflict is the sentinel for lost optimistic concurrency races.
	ErrVersionConflict = errors.New("version conflict")
)

// ObjectNotFoundError reports that an object with the given identifier does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(fmt.Sprintf("%s", e.ID)), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(fmt.Sprintf("%s", e.ID)))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for paramName.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside the inclusive range [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(fmt.Sprint(e.Value)), e.ParamName, sanitize(fmt.Sprint(e.Min)), sanitize(fmt.Sprint(e.Max)))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for paramName.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError reports a concurrency version that cannot be used,
// for example a non-positive version read back from storage.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError for paramName.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// InvalidTransitionError reports a status change that is not permitted from
// the current status.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for from -> to.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %v)", ErrInvalidTransition, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PreconditionFailedError reports a business rule that the current state does not satisfy.
type PreconditionFailedError struct {
	Rule  string
	Cause error
}

// NewPreconditionFailedError creates a PreconditionFailedError for rule.
func NewPreconditionFailedError(rule string) *PreconditionFailedError {
	return &PreconditionFailedError{Rule: rule}
}

// NewPreconditionFailedErrorWithCause creates a PreconditionFailedError wrapping cause.
func NewPreconditionFailedErrorWithCause(rule string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Rule: rule, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPreconditionFailed, e.Rule, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.Rule)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// VersionConflictError reports that an object changed since it was loaded.
// The caller may reload and retry; the failed write has no effect.
type VersionConflictError struct {
	ParamName string
	ID        any
	Expected  int64
	Cause     error
}

// NewVersionConflictError creates a VersionConflictError.
func NewVersionConflictError(paramName string, id any, expected int64) *VersionConflictError {
	return &VersionConflictError{
		ParamName: paramName,
		ID:        id,
		Expected:  expected,
	}
}

// NewVersionConflictErrorWithCause creates a VersionConflictError wrapping cause.
func NewVersionConflictErrorWithCause(paramName string, id any, expected int64, cause error) *VersionConflictError {
	return &VersionConflictError{
		ParamName: paramName,
		ID:        id,
		Expected:  expected,
		Cause:     cause,
	}
}

func (e *VersionConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s %s is no longer at version %d",
		ErrVersionConflict, e.ParamName, sanitize(fmt.Sprint(e.ID)), e.Expected)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// sanitize keeps formatted values on a single line so messages stay log-friendly.
func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
