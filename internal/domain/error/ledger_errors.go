// Package error defines domain-specific errors for the Ledger Book application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrMalformedRecord is returned when a source record cannot be normalized.
	ErrMalformedRecord = errors.New("record cannot be normalized")

	// ErrAmbiguousDirection is returned when a record's credit/debit flags conflict.
	ErrAmbiguousDirection = errors.New("record direction is ambiguous")

	// ErrInvalidDateRange is returned when from_date is after to_date.
	ErrInvalidDateRange = errors.New("from_date must not be after to_date")

	// ErrInvalidFinancialYear is returned when a financial year label is malformed.
	ErrInvalidFinancialYear = errors.New("invalid financial year format, expected YYYY-YYYY")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMalformedRecord      LedgerErrorCode = "LDG-010001"
	ErrCodeAmbiguousDirection   LedgerErrorCode = "LDG-010002"
	ErrCodeInvalidDateRange     LedgerErrorCode = "LDG-010003"
	ErrCodeInvalidFinancialYear LedgerErrorCode = "LDG-010004"

	// Internal errors (99XXXX)
	ErrCodeLedgerInternalError LedgerErrorCode = "LDG-990001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
