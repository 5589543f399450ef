package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	"github.com/ledgerbook/backend/internal/domain/ledger"
)

// CreateInvoiceInput represents the input for creating an invoice.
type CreateInvoiceInput struct {
	InvoiceDate  time.Time
	BuyerName    string
	BuyerAddress string
	BuyerGSTIN   string
	BuyerState   string
	BuyerCountry string
	BaseAmount   decimal.Decimal
	ExchangeRate *decimal.Decimal
}

// CreateInvoiceOutput represents the created invoice.
type CreateInvoiceOutput struct {
	Invoice *entity.Invoice `json:"invoice"`
}

// CreateInvoiceUseCase calculates and persists a new invoice.
type CreateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	reportCache adapter.ReportCache
	now         func() time.Time
}

// NewCreateInvoiceUseCase creates a new CreateInvoiceUseCase instance.
func NewCreateInvoiceUseCase(
	invoiceRepo adapter.InvoiceRepository,
	reportCache adapter.ReportCache,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		reportCache: reportCache,
		now:         time.Now,
	}
}

// Execute creates the invoice with the next sequential number for its
// financial year.
func (uc *CreateInvoiceUseCase) Execute(
	ctx context.Context,
	input CreateInvoiceInput,
) (*CreateInvoiceOutput, error) {
	breakdown, err := computeGST(input.BaseAmount, input.BuyerCountry, input.BuyerState, input.ExchangeRate)
	if err != nil {
		return nil, err
	}

	invoiceDate := input.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = uc.now().UTC()
	}
	financialYear := ledger.ResolveFinancialYear(invoiceDate).Label()

	count, err := uc.invoiceRepo.CountByFinancialYear(ctx, financialYear)
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices for %s: %w", financialYear, err)
	}

	var exchangeRate *decimal.Decimal
	if breakdown.IsExport {
		exchangeRate = input.ExchangeRate
	}

	created := entity.NewInvoice(
		formatInvoiceNumber(count+1, financialYear),
		financialYear,
		invoiceDate,
		input.BuyerName,
		input.BuyerAddress,
		input.BuyerGSTIN,
		input.BuyerState,
		input.BuyerCountry,
		input.BaseAmount,
		breakdown.CGST,
		breakdown.SGST,
		breakdown.IGST,
		breakdown.Total,
		breakdown.IsExport,
		exchangeRate,
		breakdown.INREquivalent,
	)

	if err := uc.invoiceRepo.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	invalidateReports(ctx, uc.reportCache)

	return &CreateInvoiceOutput{Invoice: created}, nil
}

// invalidateReports drops cached balance-sheet reports after a ledger write.
// Cache trouble is logged, not surfaced: the write already succeeded.
func invalidateReports(ctx context.Context, cache adapter.ReportCache) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateAll(ctx); err != nil {
		slog.Warn("report cache invalidation failed", "error", err)
	}
}
