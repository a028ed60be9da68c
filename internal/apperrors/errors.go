package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidReference indicates a category or payee that is missing or belongs to another company.
var ErrInvalidReference = errors.New("invalid reference")

// ErrConflict indicates the request conflicts with the current state (double submit, partial batch).
var ErrConflict = errors.New("conflict")

// ErrBalance indicates derived journal lines did not balance. This is an internal invariant failure.
var ErrBalance = errors.New("journal lines do not balance")

// ErrNoTransactions indicates a resync was requested for a company with no confirmed transactions.
var ErrNoTransactions = errors.New("no confirmed transactions")

// ErrPersistence indicates a write-phase failure; all effects of the operation were rolled back.
var ErrPersistence = errors.New("persistence error")

// ErrInternal indicates stored data the service cannot interpret, such as a corrupt record.
var ErrInternal = errors.New("internal error")

// ErrUnauthorized indicates the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP-ish status code alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error wrapping ErrNotFound with a message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// ConflictError lists staging ids that were requested but are no longer present.
type ConflictError struct {
	MissingIDs []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: staging transactions not found: %s", ErrConflict.Error(), strings.Join(e.MissingIDs, ", "))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// IsDomainError reports whether err belongs to the user-facing taxonomy rather than
// being an infrastructure failure.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrBalance) ||
		errors.Is(err, ErrNoTransactions)
}
