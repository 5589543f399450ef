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

// companyBillRepository implements the adapter.CompanyBillRepository interface.
type companyBillRepository struct {
	db *gorm.DB
}

// NewCompanyBillRepository creates a new company bill repository instance.
func NewCompanyBillRepository(db *gorm.DB) adapter.CompanyBillRepository {
	return &companyBillRepository{
		db: db,
	}
}

// Create creates a new company bill in the database.
func (r *companyBillRepository) Create(ctx context.Context, bill *entity.CompanyBill) error {
	billModel := model.CompanyBillFromEntity(bill)
	result := r.db.WithContext(ctx).Create(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a company bill by its ID.
func (r *companyBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CompanyBill, error) {
	var billModel model.CompanyBillModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// FindByFilter retrieves company bills matching the filter.
func (r *companyBillRepository) FindByFilter(ctx context.Context, filter adapter.RecordFilter) ([]*entity.CompanyBill, error) {
	query := applyRecordFilter(r.db.WithContext(ctx).Model(&model.CompanyBillModel{}), filter)
	if filter.Name != "" {
		query = query.Where("company_name = ?", filter.Name)
	}

	var billModels []model.CompanyBillModel
	result := query.Order("date ASC, created_at ASC").Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.CompanyBill, len(billModels))
	for i, bm := range billModels {
		bills[i] = bm.ToEntity()
	}
	return bills, nil
}

// Update updates an existing company bill in the database.
func (r *companyBillRepository) Update(ctx context.Context, bill *entity.CompanyBill) error {
	billModel := model.CompanyBillFromEntity(bill)
	result := r.db.WithContext(ctx).Save(billModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a company bill from the database.
func (r *companyBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CompanyBillModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}
