// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMode indicates whether a transaction settled through a bank account
// or the cash book.
type PaymentMode string

const (
	PaymentModeBank PaymentMode = "bank"
	PaymentModeCash PaymentMode = "cash"
)

// BankAccount represents a company bank account. The opening balance is fixed
// when the account is registered and anchors its statement.
type BankAccount struct {
	ID             uuid.UUID
	Name           string
	AccountNumber  string
	OpeningBalance decimal.Decimal
	OpeningDate    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// NewBankAccount creates a new BankAccount entity.
func NewBankAccount(name, accountNumber string, openingBalance decimal.Decimal, openingDate time.Time) *BankAccount {
	now := time.Now().UTC()

	return &BankAccount{
		ID:             uuid.New(),
		Name:           name,
		AccountNumber:  accountNumber,
		OpeningBalance: openingBalance,
		OpeningDate:    openingDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
