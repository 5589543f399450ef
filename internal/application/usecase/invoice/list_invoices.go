package invoice

import (
	"context"
	"fmt"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	"github.com/ledgerbook/backend/internal/domain/ledger"
)

// ListInvoicesInput represents the input for listing invoices.
type ListInvoicesInput struct {
	FinancialYear string // optional "YYYY-YYYY"
	BuyerName     string // optional exact match
	IncludeHidden bool
}

// ListInvoicesOutput represents the listed invoices.
type ListInvoicesOutput struct {
	Invoices []*entity.Invoice `json:"invoices"`
}

// ListInvoicesUseCase lists invoices, optionally narrowed by financial year
// and buyer.
type ListInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(invoiceRepo adapter.InvoiceRepository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{invoiceRepo: invoiceRepo}
}

// Execute lists the invoices.
func (uc *ListInvoicesUseCase) Execute(
	ctx context.Context,
	input ListInvoicesInput,
) (*ListInvoicesOutput, error) {
	if input.FinancialYear != "" {
		if _, err := ledger.ParseFinancialYear(input.FinancialYear); err != nil {
			return nil, err
		}
	}

	invoices, err := uc.invoiceRepo.FindByFilter(ctx, adapter.InvoiceFilter{
		FinancialYear: input.FinancialYear,
		BuyerName:     input.BuyerName,
		IncludeHidden: input.IncludeHidden,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return &ListInvoicesOutput{Invoices: invoices}, nil
}
