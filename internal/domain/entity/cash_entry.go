package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashEntry holds the single cash-book opening balance. At most one entry
// exists; the cash statement starts from it.
type CashEntry struct {
	ID             uuid.UUID
	OpeningBalance decimal.Decimal
	OpeningDate    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCashEntry creates a new CashEntry entity.
func NewCashEntry(openingBalance decimal.Decimal, openingDate time.Time) *CashEntry {
	now := time.Now().UTC()

	return &CashEntry{
		ID:             uuid.New(),
		OpeningBalance: openingBalance,
		OpeningDate:    openingDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
