// Package error defines domain-specific errors for the Ledger Book application.
package error

import "errors"

// Banking domain errors.
var (
	// ErrBankAccountNotFound is returned when a bank account is not found.
	ErrBankAccountNotFound = errors.New("bank account not found")

	// ErrCashEntryNotFound is returned when no cash opening entry exists.
	ErrCashEntryNotFound = errors.New("cash entry not found")

	// ErrCashEntryAlreadyExists is returned when a second cash opening entry is created.
	ErrCashEntryAlreadyExists = errors.New("cash entry already exists")

	// ErrRecordNotFound is returned when a ledger source record is not found.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidAmount is returned when an amount is zero or negative where a positive value is required.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrMissingBankAccount is returned when a bank-mode record carries no bank account.
	ErrMissingBankAccount = errors.New("bank account is required for bank payment mode")

	// ErrOtherTypeAlreadyExists is returned when a custom type name is already taken.
	ErrOtherTypeAlreadyExists = errors.New("other type already exists")

	// ErrInvalidPaymentMode is returned when the payment mode is neither bank nor cash.
	ErrInvalidPaymentMode = errors.New("invalid payment mode")
)

// BankingErrorCode defines error codes for banking errors.
// Format: BNK-XXYYYY where XX is category and YYYY is specific error.
type BankingErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBankAccountNotFound    BankingErrorCode = "BNK-010001"
	ErrCodeCashEntryNotFound      BankingErrorCode = "BNK-010002"
	ErrCodeCashEntryAlreadyExists BankingErrorCode = "BNK-010003"
	ErrCodeRecordNotFound         BankingErrorCode = "BNK-010004"
	ErrCodeInvalidAmount          BankingErrorCode = "BNK-010005"
	ErrCodeMissingBankAccount     BankingErrorCode = "BNK-010006"
	ErrCodeOtherTypeAlreadyExists BankingErrorCode = "BNK-010007"
	ErrCodeInvalidPaymentMode     BankingErrorCode = "BNK-010008"

	// Internal errors (99XXXX)
	ErrCodeBankingInternalError BankingErrorCode = "BNK-990001"
)

// BankingError represents a banking error with code and message.
type BankingError struct {
	Code    BankingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BankingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BankingError) Unwrap() error {
	return e.Err
}

// NewBankingError creates a new BankingError with the given code and message.
func NewBankingError(code BankingErrorCode, message string, err error) *BankingError {
	return &BankingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
