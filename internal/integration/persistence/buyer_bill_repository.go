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

// buyerBillRepository implements the adapter.BuyerBillRepository interface.
type buyerBillRepository struct {
	db *gorm.DB
}

// NewBuyerBillRepository creates a new buyer bill repository instance.
func NewBuyerBillRepository(db *gorm.DB) adapter.BuyerBillRepository {
	return &buyerBillRepository{
		db: db,
	}
}

// Create creates a new buyer bill in the database.
func (r *buyerBillRepository) Create(ctx context.Context, bill *entity.BuyerBill) error {
	billModel := model.BuyerBillFromEntity(bill)
	result := r.db.WithContext(ctx).Create(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a buyer bill by its ID.
func (r *buyerBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BuyerBill, error) {
	var billModel model.BuyerBillModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// FindByFilter retrieves buyer bills matching the filter.
func (r *buyerBillRepository) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.BuyerBill, error) {
	query := applyRecordFilter(r.db.WithContext(ctx).Model(&model.BuyerBillModel{}), filter)
	if filter.Name != "" {
		query = query.Where("buyer_name = ?", filter.Name)
	}

	var billModels []model.BuyerBillModel
	result := query.Order("date ASC, created_at ASC").Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.BuyerBill, len(billModels))
	for i, bm := range billModels {
		bills[i] = bm.ToEntity()
	}
	return bills, nil
}

// Update updates an existing buyer bill in the database.
func (r *buyerBillRepository) Update(ctx context.Context, bill *entity.BuyerBill) error {
	billModel := model.BuyerBillFromEntity(bill)
	result := r.db.WithContext(ctx).Save(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a buyer bill from the database.
func (r *buyerBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BuyerBillModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}
