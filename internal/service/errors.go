package service

import (
	"errors"
	"fmt"
)

var (
	// Not found
	ErrTenantNotFound          = errors.New("tenant not found")
	ErrUsageNotFound           = errors.New("no usage data found")
	ErrEventNotFound           = errors.New("usage event not found")
	ErrTenantDocNotFound       = errors.New("tenant document not found")
	ErrBillingHistoryNotFound  = errors.New("billing history not found")
	ErrBillingSettingsNotFound = errors.New("billing settings not found")

	// Conflicts
	ErrDuplicateTenantName  = errors.New("tenant with this name already exists")
	ErrDuplicateTenantAlias = errors.New("tenant with this alias already exists")
	ErrDuplicateTenant      = errors.New("tenant with this name or alias already exists")
	ErrDuplicateTenantDoc   = errors.New("document already exists for this tenant")
	ErrBillingSettingsExist = errors.New("billing settings already exist for this tenant")

	ErrTimeout = errors.New("operation timed out")
)

// ValidationError reports malformed input. It is raised before any I/O.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError wraps a failure reported by one of the backing stores.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// InternalError is an unexpected failure whose detail is logged, not returned.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error during %s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
