package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrRelationViolated    = errors.New("relation violated")
)
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrRelationViolated    = errors.New("relation violated")
)

// ObjectNotFoundError reports a lookup that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
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

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
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

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
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

// StorageUnavailableError wraps a datastore failure (timeout, lost connection,
// failed statement). Callers are expected to retry with backoff.
type StorageUnavailableError struct {
	Operation string
	Cause     error
}

func NewStorageUnavailableError(operation string, cause error) *StorageUnavailableError {
	return &StorageUnavailableError{Operation: operation, Cause: cause}
}

func (e *StorageUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStorageUnavailable, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStorageUnavailable, e.Operation)
}

// Unwrap exposes both the sentinel and the driver error, so errors.Is works
// for ErrStorageUnavailable as well as context.DeadlineExceeded and friends.
func (e *StorageUnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStorageUnavailable}
	}
	return []error{ErrStorageUnavailable, e.Cause}
}

// ObjectAlreadyExistsError reports a write rejected by a unique constraint,
// typically because a concurrent transaction inserted the same key first.
type ObjectAlreadyExistsError struct {
	Operation string
	Cause     error
}

func NewObjectAlreadyExistsError(operation string, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{Operation: operation, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrObjectAlreadyExists, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.Operation)
}

func (e *ObjectAlreadyExistsError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrObjectAlreadyExists}
	}
	return []error{ErrObjectAlreadyExists, e.Cause}
}

// RelationViolatedError reports a write rejected by a foreign key: the row
// refers to something missing, or something still refers to it.
type RelationViolatedError struct {
	Operation string
	Cause     error
}

func NewRelationViolatedError(operation string, cause error) *RelationViolatedError {
	return &RelationViolatedError{Operation: operation, Cause: cause}
}

func (e *RelationViolatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrRelationViolated, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrRelationViolated, e.Operation)
}

func (e *RelationViolatedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrRelationViolated}
	}
	return []error{ErrRelationViolated, e.Cause}
}

func sanitize(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
