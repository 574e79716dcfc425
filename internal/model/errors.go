package model

import (
	"errors"
	"fmt"
)

// Sentinels matched through errors.Is against DomainError and RepositoryError kinds
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrFail         = errors.New("fail")
	ErrNotFound     = errors.New("not found")

	ErrRepositoryNotFound = errors.New("repository: not found")
	ErrRepositoryFail     = errors.New("repository: fail")
)

// DomainErrorKind classifies errors raised by the domain core
type DomainErrorKind string

const (
	KindInvalidInput DomainErrorKind = "invalid_input" // Validation violation
	KindFail         DomainErrorKind = "fail"          // Collaborator or state failure
	KindNotFound     DomainErrorKind = "not_found"     // Aggregate lookup missed
)

// DomainError is returned by every fallible domain operation
type DomainError struct {
	Kind    DomainErrorKind
	Message string
	Err     error // Underlying cause, may be nil
}

// NewDomainError creates a DomainError without a cause
func NewDomainError(kind DomainErrorKind, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapDomainError creates a DomainError retaining err as its cause
func WrapDomainError(kind DomainErrorKind, err error, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

func invalidInput(format string, args ...any) error {
	return NewDomainError(KindInvalidInput, format, args...)
}

// Error implements error
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for this error's kind
func (e *DomainError) Is(target error) bool {
	switch e.Kind {
	case KindInvalidInput:
		return target == ErrInvalidInput
	case KindFail:
		return target == ErrFail
	case KindNotFound:
		return target == ErrNotFound
	}
	return false
}

// RepositoryErrorKind classifies errors raised by storage collaborators
type RepositoryErrorKind string

const (
	RepositoryNotFound RepositoryErrorKind = "not_found"
	RepositoryFail     RepositoryErrorKind = "fail"
)

// RepositoryError is returned by storage backends
type RepositoryError struct {
	Kind    RepositoryErrorKind
	Message string
	Err     error
}

// NewRepositoryError creates a RepositoryError, optionally wrapping a driver error
func NewRepositoryError(kind RepositoryErrorKind, err error, format string, args ...any) *RepositoryError {
	return &RepositoryError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// Error implements error
func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("repository %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("repository %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// Is matches ErrRepositoryNotFound or ErrRepositoryFail
func (e *RepositoryError) Is(target error) bool {
	switch e.Kind {
	case RepositoryNotFound:
		return target == ErrRepositoryNotFound
	case RepositoryFail:
		return target == ErrRepositoryFail
	}
	return false
}

// FromRepositoryError converts a storage error into a DomainError.
// NotFound is preserved; everything else becomes Fail. The original error is kept as cause.
func FromRepositoryError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	var de *DomainError
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, ErrRepositoryNotFound) {
		return WrapDomainError(KindNotFound, err, format, args...)
	}
	return WrapDomainError(KindFail, err, format, args...)
}
