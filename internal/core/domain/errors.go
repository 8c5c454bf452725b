package domain

import "fmt"

// DomainError represents a domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "KV-KEY-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Key errors (KEY).
var (
	// ErrKeyNotFound indicates the requested key is absent from the store.
	ErrKeyNotFound = NewDomainError("KV-KEY-4040", "key not found")
)

// Snapshot errors (SNAP).
var (
	// ErrSnapshotIO indicates the snapshot file could not be opened, read,
	// created or written. The underlying filesystem error is the cause.
	ErrSnapshotIO = NewDomainError("KV-SNAP-5000", "snapshot io error")

	// ErrSnapshotDecode indicates the snapshot bytes are not a valid
	// encoding of a store.
	ErrSnapshotDecode = NewDomainError("KV-SNAP-4220", "snapshot decode error")
)

// System errors (SYS).
var (
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewDomainError("KV-SYS-5000", "internal error")

	// ErrInvalidArgument indicates a malformed request or configuration value.
	ErrInvalidArgument = NewDomainError("KV-SYS-4000", "invalid argument")

	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewDomainError("KV-SYS-4290", "too many requests")
)
