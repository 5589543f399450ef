package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// UpdateInvoiceInput represents the input for updating an invoice. The
// invoice number and financial year are fixed at creation.
type UpdateInvoiceInput struct {
	ID           uuid.UUID
	InvoiceDate  time.Time
	BuyerName    string
	BuyerAddress string
	BuyerGSTIN   string
	BuyerState   string
	BuyerCountry string
	BaseAmount   decimal.Decimal
	ExchangeRate *decimal.Decimal
	Archived     bool
}

// UpdateInvoiceOutput represents the updated invoice.
type UpdateInvoiceOutput struct {
	Invoice *entity.Invoice `json:"invoice"`
}

// UpdateInvoiceUseCase updates an invoice and recomputes its GST split.
type UpdateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	reportCache adapter.ReportCache
}

// NewUpdateInvoiceUseCase creates a new UpdateInvoiceUseCase instance.
func NewUpdateInvoiceUseCase(
	invoiceRepo adapter.InvoiceRepository,
	reportCache adapter.ReportCache,
) *UpdateInvoiceUseCase {
	return &UpdateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		reportCache: reportCache,
	}
}

// Execute applies the update.
func (uc *UpdateInvoiceUseCase) Execute(
	ctx context.Context,
	input UpdateInvoiceInput,
) (*UpdateInvoiceOutput, error) {
	existing, err := uc.invoiceRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing.DeletedAt != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceAlreadyDeleted,
			fmt.Sprintf("invoice %s is deleted", existing.InvoiceNumber),
			domainerror.ErrInvoiceAlreadyDeleted,
		)
	}

	breakdown, err := computeGST(input.BaseAmount, input.BuyerCountry, input.BuyerState, input.ExchangeRate)
	if err != nil {
		return nil, err
	}

	existing.BuyerName = input.BuyerName
	existing.BuyerAddress = input.BuyerAddress
	existing.BuyerGSTIN = input.BuyerGSTIN
	existing.BuyerState = input.BuyerState
	existing.BuyerCountry = input.BuyerCountry
	existing.BaseAmount = input.BaseAmount
	existing.CGST = breakdown.CGST
	existing.SGST = breakdown.SGST
	existing.IGST = breakdown.IGST
	existing.TotalAmount = breakdown.Total
	existing.IsExport = breakdown.IsExport
	existing.INREquivalent = breakdown.INREquivalent
	existing.Archived = input.Archived
	if !input.InvoiceDate.IsZero() {
		existing.InvoiceDate = input.InvoiceDate
	}
	if breakdown.IsExport {
		existing.ExchangeRate = input.ExchangeRate
	} else {
		existing.ExchangeRate = nil
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.invoiceRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)

	return &UpdateInvoiceOutput{Invoice: existing}, nil
}
