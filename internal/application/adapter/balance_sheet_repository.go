package adapter

import (
	"context"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// BalanceSheetSnapshotRepository defines persistence operations for frozen
// balance-sheet reports.
type BalanceSheetSnapshotRepository interface {
	// Save stores the snapshot, replacing any earlier snapshot for the same year.
	Save(ctx context.Context, snapshot *entity.BalanceSheetSnapshot) error
	FindByFinancialYear(ctx context.Context, financialYear string) (*entity.BalanceSheetSnapshot, error)
}
