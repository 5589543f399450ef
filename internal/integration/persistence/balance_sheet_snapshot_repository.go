package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
)

// balanceSheetSnapshotRepository implements the adapter.BalanceSheetSnapshotRepository interface.
type balanceSheetSnapshotRepository struct {
	db *gorm.DB
}

// NewBalanceSheetSnapshotRepository creates a new balance sheet snapshot repository instance.
func NewBalanceSheetSnapshotRepository(db *gorm.DB) adapter.BalanceSheetSnapshotRepository {
	return &balanceSheetSnapshotRepository{
		db: db,
	}
}

// Save stores the snapshot, replacing any earlier snapshot for the same year.
func (r *balanceSheetSnapshotRepository) Save(ctx context.Context, snapshot *entity.BalanceSheetSnapshot) error {
	snapshotModel := model.BalanceSheetSnapshotFromEntity(snapshot)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("financial_year = ?", snapshot.FinancialYear).
			Delete(&model.BalanceSheetSnapshotModel{})
		if result.Error != nil {
			return result.Error
		}
		return tx.Create(snapshotModel).Error
	})
}

// FindByFinancialYear retrieves the snapshot stored for the year.
func (r *balanceSheetSnapshotRepository) FindByFinancialYear(ctx context.Context, financialYear string) (*entity.BalanceSheetSnapshot, error) {
	var snapshotModel model.BalanceSheetSnapshotModel
	result := r.db.WithContext(ctx).
		Where("financial_year = ?", financialYear).
		First(&snapshotModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return snapshotModel.ToEntity(), nil
}
