package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BuyerBill represents a payment made out to a buyer. Buyer bills debit the
// ledger.
type BuyerBill struct {
	ID          uuid.UUID
	BuyerName   string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	PaymentMode PaymentMode
	BankID      *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewBuyerBill creates a new BuyerBill entity.
func NewBuyerBill(
	buyerName string,
	amount decimal.Decimal,
	date time.Time,
	description string,
	paymentMode PaymentMode,
	bankID *uuid.UUID,
) *BuyerBill {
	now := time.Now().UTC()

	return &BuyerBill{
		ID:          uuid.New(),
		BuyerName:   buyerName,
		Amount:      amount,
		Date:        date,
		Description: description,
		PaymentMode: paymentMode,
		BankID:      bankID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
