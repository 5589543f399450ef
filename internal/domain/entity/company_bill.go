package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyBill represents a payment received from a company. Company bills
// credit the ledger.
type CompanyBill struct {
	ID          uuid.UUID
	CompanyName string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	PaymentMode PaymentMode
	BankID      *uuid.UUID // set when PaymentMode is bank
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewCompanyBill creates a new CompanyBill entity.
func NewCompanyBill(
	companyName string,
	amount decimal.Decimal,
	date time.Time,
	description string,
	paymentMode PaymentMode,
	bankID *uuid.UUID,
) *CompanyBill {
	now := time.Now().UTC()

	return &CompanyBill{
		ID:          uuid.New(),
		CompanyName: companyName,
		Amount:      amount,
		Date:        date,
		Description: description,
		PaymentMode: paymentMode,
		BankID:      bankID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
