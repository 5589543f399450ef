package entity

import (
	"time"

	"github.com/google/uuid"
)

// BalanceSheetSnapshot is a frozen balance-sheet report for a financial year,
// stored as the serialized report payload.
type BalanceSheetSnapshot struct {
	ID            uuid.UUID
	FinancialYear string
	Report        []byte // JSON-encoded report
	CreatedAt     time.Time
}

// NewBalanceSheetSnapshot creates a new BalanceSheetSnapshot entity.
func NewBalanceSheetSnapshot(financialYear string, report []byte) *BalanceSheetSnapshot {
	return &BalanceSheetSnapshot{
		ID:            uuid.New(),
		FinancialYear: financialYear,
		Report:        report,
		CreatedAt:     time.Now().UTC(),
	}
}
