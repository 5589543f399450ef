// Package error defines domain-specific errors for the Ledger Book application.
package error

import "errors"

// Invoice domain errors.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvalidInvoiceAmount is returned when the base amount is zero or negative.
	ErrInvalidInvoiceAmount = errors.New("invoice amount must be positive")

	// ErrMissingExchangeRate is returned when an export invoice has no exchange rate.
	ErrMissingExchangeRate = errors.New("exchange rate is required for export invoices")

	// ErrMissingBuyerState is returned when a domestic invoice has no buyer state.
	ErrMissingBuyerState = errors.New("buyer state is required for domestic invoices")

	// ErrInvoiceAlreadyDeleted is returned when deleting an already deleted invoice.
	ErrInvoiceAlreadyDeleted = errors.New("invoice already deleted")
)

// InvoiceErrorCode defines error codes for invoice errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvoiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvoiceNotFound       InvoiceErrorCode = "INV-010001"
	ErrCodeInvalidInvoiceAmount  InvoiceErrorCode = "INV-010002"
	ErrCodeMissingExchangeRate   InvoiceErrorCode = "INV-010003"
	ErrCodeMissingBuyerState     InvoiceErrorCode = "INV-010004"
	ErrCodeInvoiceAlreadyDeleted InvoiceErrorCode = "INV-010005"

	// Internal errors (99XXXX)
	ErrCodeInvoiceInternalError InvoiceErrorCode = "INV-990001"
)

// InvoiceError represents an invoice error with code and message.
type InvoiceError struct {
	Code    InvoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError creates a new InvoiceError with the given code and message.
func NewInvoiceError(code InvoiceErrorCode, message string, err error) *InvoiceError {
	return &InvoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
