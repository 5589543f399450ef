package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// DeleteInvoiceInput represents the input for deleting an invoice.
type DeleteInvoiceInput struct {
	ID uuid.UUID
}

// DeleteInvoiceUseCase soft-deletes an invoice. The invoice keeps its number
// and stays visible on the balance sheet as an unsecured-loan debit.
type DeleteInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	reportCache adapter.ReportCache
}

// NewDeleteInvoiceUseCase creates a new DeleteInvoiceUseCase instance.
func NewDeleteInvoiceUseCase(
	invoiceRepo adapter.InvoiceRepository,
	reportCache adapter.ReportCache,
) *DeleteInvoiceUseCase {
	return &DeleteInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		reportCache: reportCache,
	}
}

// Execute soft-deletes the invoice.
func (uc *DeleteInvoiceUseCase) Execute(ctx context.Context, input DeleteInvoiceInput) error {
	existing, err := uc.invoiceRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if existing.DeletedAt != nil {
		return domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceAlreadyDeleted,
			fmt.Sprintf("invoice %s is already deleted", existing.InvoiceNumber),
			domainerror.ErrInvoiceAlreadyDeleted,
		)
	}

	if err := uc.invoiceRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)
	return nil
}
