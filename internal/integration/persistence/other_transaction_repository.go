package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
)

// otherTransactionRepository implements the adapter.OtherTransactionRepository interface.
type otherTransactionRepository struct {
	db *gorm.DB
}

// NewOtherTransactionRepository creates a new other transaction repository instance.
func NewOtherTransactionRepository(db *gorm.DB) adapter.OtherTransactionRepository {
	return &otherTransactionRepository{
		db: db,
	}
}

// Create creates a new other transaction in the database.
func (r *otherTransactionRepository) Create(ctx context.Context, txn *entity.OtherTransaction) error {
	txnModel := model.OtherTransactionFromEntity(txn)
	result := r.db.WithContext(ctx).Create(txnModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an other transaction by its ID.
func (r *otherTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OtherTransaction, error) {
	var txnModel model.OtherTransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&txnModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return txnModel.ToEntity(), nil
}

// FindByFilter retrieves other transactions matching the filter.
func (r *otherTransactionRepository) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.OtherTransaction, error) {
	query := applyRecordFilter(r.db.WithContext(ctx).Model(&model.OtherTransactionModel{}), filter)
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}

	var txnModels []model.OtherTransactionModel
	result := query.Order("date ASC, created_at ASC").Find(&txnModels)
	if result.Error != nil {
		return nil, result.Error
	}

	txns := make([]*entity.OtherTransaction, len(txnModels))
	for i, tm := range txnModels {
		txns[i] = tm.ToEntity()
	}
	return txns, nil
}

// Update updates an existing other transaction in the database.
func (r *otherTransactionRepository) Update(ctx context.Context, txn *entity.OtherTransaction) error {
	txnModel := model.OtherTransactionFromEntity(txn)
	result := r.db.WithContext(ctx).Save(txnModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes an other transaction from the database.
func (r *otherTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.OtherTransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}
