package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	FinancialYear string
	BuyerName     string
	IncludeHidden bool // include soft-deleted and archived invoices
}

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	FindByFilter(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, error)

	// FindHiddenByFinancialYear returns soft-deleted and archived invoices for
	// the year. These surface on the balance sheet as unsecured-loan debits.
	FindHiddenByFinancialYear(ctx context.Context, financialYear string) ([]*entity.Invoice, error)

	// CountByFinancialYear counts all invoices ever issued in the year,
	// including deleted ones, so invoice numbers are never reused.
	CountByFinancialYear(ctx context.Context, financialYear string) (int64, error)

	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}
