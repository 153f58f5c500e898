package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the targets of errors.Is for classification.
// Every structured error in this package unwraps to exactly one of these,
// which lets transport layers map failures to status codes by kind.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrConflict          = errors.New("conflict")
)

// sanitize collapses newlines so formatted values cannot break log lines.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given
// parameter name and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its
// permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given
// parameter, value, and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	details := sanitize(fmt.Sprintf("%v is %s, min value is %v, max value is %v", e.Value, e.ParamName, e.Min, e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, details, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, details)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given
// parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates an aggregate version mismatch.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping an
// underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without a
// cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// UnauthorizedError indicates a failed access-code check or an identifier
// that does not match the owning entity on a scoped operation.
type UnauthorizedError struct {
	Reason string
	Cause  error
}

// NewUnauthorizedError creates an UnauthorizedError with the given reason.
func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an
// underlying cause.
func NewUnauthorizedErrorWithCause(reason string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnauthorized, e.Reason)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidOperationError indicates an attempt to perform an operation that is
// illegal in the current state, such as an out-of-order status transition or
// a change to an immutable attribute. The reason names the violated rule.
type InvalidOperationError struct {
	Reason string
	Cause  error
}

// NewInvalidOperationError creates an InvalidOperationError with the given
// reason.
func NewInvalidOperationError(reason string) *InvalidOperationError {
	return &InvalidOperationError{Reason: reason}
}

// NewInvalidOperationErrorWithCause creates an InvalidOperationError wrapping
// an underlying cause.
func NewInvalidOperationErrorWithCause(reason string, cause error) *InvalidOperationError {
	return &InvalidOperationError{Reason: reason, Cause: cause}
}

func (e *InvalidOperationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidOperation, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidOperation, e.Reason)
}

func (e *InvalidOperationError) Unwrap() error {
	return ErrInvalidOperation
}

// ConflictError indicates a data-relationship conflict, such as a duplicate
// non-rejected affiliation or an interest registration on an available
// flavor. Distinct from InvalidOperationError, which covers state machines.
type ConflictError struct {
	Reason string
	Cause  error
}

// NewConflictError creates a ConflictError with the given reason.
func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying
// cause.
func NewConflictErrorWithCause(reason string, cause error) *ConflictError {
	return &ConflictError{Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
