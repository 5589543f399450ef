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

// invoiceRepository implements the adapter.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance.
func NewInvoiceRepository(db *gorm.DB) adapter.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// Create creates a new invoice in the database.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	invoiceModel := model.InvoiceFromEntity(invoice)
	result := r.db.WithContext(ctx).Create(invoiceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an invoice by its ID. Soft-deleted invoices stay
// addressable so a repeat delete surfaces as a conflict, not a miss.
func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoiceModel model.InvoiceModel
	result := r.db.WithContext(ctx).Unscoped().Where("id = ?", id).First(&invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvoiceNotFound
		}
		return nil, result.Error
	}
	return invoiceModel.ToEntity(), nil
}

// FindByFilter retrieves invoices matching the filter, ordered by invoice number.
func (r *invoiceRepository) FindByFilter(ctx context.Context, filter adapter.InvoiceFilter) ([]*entity.Invoice, error) {
	query := r.db.WithContext(ctx).Model(&model.InvoiceModel{})
	if filter.IncludeHidden {
		query = query.Unscoped()
	} else {
		query = query.Where("archived = ?", false)
	}
	if filter.FinancialYear != "" {
		query = query.Where("financial_year = ?", filter.FinancialYear)
	}
	if filter.BuyerName != "" {
		query = query.Where("buyer_name = ?", filter.BuyerName)
	}

	var invoiceModels []model.InvoiceModel
	result := query.Order("invoice_number ASC").Find(&invoiceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invoices := make([]*entity.Invoice, len(invoiceModels))
	for i, im := range invoiceModels {
		invoices[i] = im.ToEntity()
	}
	return invoices, nil
}

// FindHiddenByFinancialYear retrieves soft-deleted and archived invoices for
// the year. Unscoped so deleted rows are visible.
func (r *invoiceRepository) FindHiddenByFinancialYear(ctx context.Context, financialYear string) ([]*entity.Invoice, error) {
	var invoiceModels []model.InvoiceModel
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("financial_year = ?", financialYear).
		Where("deleted_at IS NOT NULL OR archived = ?", true).
		Order("invoice_number ASC").
		Find(&invoiceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invoices := make([]*entity.Invoice, len(invoiceModels))
	for i, im := range invoiceModels {
		invoices[i] = im.ToEntity()
	}
	return invoices, nil
}

// CountByFinancialYear counts every invoice ever issued in the year, deleted
// ones included, so numbers are never reused.
func (r *invoiceRepository) CountByFinancialYear(ctx context.Context, financialYear string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Unscoped().
		Model(&model.InvoiceModel{}).
		Where("financial_year = ?", financialYear).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing invoice in the database.
func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	invoiceModel := model.InvoiceFromEntity(invoice)
	result := r.db.WithContext(ctx).Save(invoiceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes an invoice from the database.
func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InvoiceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInvoiceNotFound
	}
	return nil
}
