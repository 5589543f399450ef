package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/ledger"
)

// CalculateInvoiceInput represents the input for a dry-run invoice calculation.
type CalculateInvoiceInput struct {
	BaseAmount   decimal.Decimal
	Country      string // defaults to India
	State        string
	ExchangeRate *decimal.Decimal
	InvoiceDate  time.Time // defaults to today
}

// CalculateInvoiceOutput represents the calculated invoice values.
type CalculateInvoiceOutput struct {
	InvoiceNumber string           `json:"invoice_number"`
	FinancialYear string           `json:"financial_year"`
	BaseAmount    decimal.Decimal  `json:"base_amount"`
	CGST          decimal.Decimal  `json:"cgst"`
	SGST          decimal.Decimal  `json:"sgst"`
	IGST          decimal.Decimal  `json:"igst"`
	TaxTotal      decimal.Decimal  `json:"tax_total"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	IsExport      bool             `json:"is_export"`
	INREquivalent *decimal.Decimal `json:"inr_equivalent,omitempty"`
}

// CalculateInvoiceUseCase computes GST split, totals and the next invoice
// number without persisting anything.
type CalculateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	now         func() time.Time
}

// NewCalculateInvoiceUseCase creates a new CalculateInvoiceUseCase instance.
func NewCalculateInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *CalculateInvoiceUseCase {
	return &CalculateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		now:         time.Now,
	}
}

// Execute performs the calculation.
func (uc *CalculateInvoiceUseCase) Execute(
	ctx context.Context,
	input CalculateInvoiceInput,
) (*CalculateInvoiceOutput, error) {
	breakdown, err := computeGST(input.BaseAmount, input.Country, input.State, input.ExchangeRate)
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

	return &CalculateInvoiceOutput{
		InvoiceNumber: formatInvoiceNumber(count+1, financialYear),
		FinancialYear: financialYear,
		BaseAmount:    input.BaseAmount,
		CGST:          breakdown.CGST,
		SGST:          breakdown.SGST,
		IGST:          breakdown.IGST,
		TaxTotal:      breakdown.TaxTotal,
		TotalAmount:   breakdown.Total,
		IsExport:      breakdown.IsExport,
		INREquivalent: breakdown.INREquivalent,
	}, nil
}
