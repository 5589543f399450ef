// Package accountstatement contains the per-buyer account statement use case.
package accountstatement

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/domain/ledger"
)

// BuildAccountStatementInput represents the input for a buyer account statement.
type BuildAccountStatementInput struct {
	BuyerName string
	From      *time.Time
	To        *time.Time
}

// AccountStatementRow represents one line of the account statement.
type AccountStatementRow struct {
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Credit      decimal.Decimal `json:"credit"`
	Debit       decimal.Decimal `json:"debit"`
	Balance     decimal.Decimal `json:"balance"`
}

// SkippedRecord reports a source record excluded from the statement.
type SkippedRecord struct {
	SourceID string `json:"source_id"`
	Type     string `json:"type"`
	Reason   string `json:"reason"`
}

// BuildAccountStatementOutput represents the built account statement.
type BuildAccountStatementOutput struct {
	BuyerName      string                `json:"buyer_name"`
	OpeningBalance decimal.Decimal       `json:"opening_balance"`
	Rows           []AccountStatementRow `json:"rows"`
	TotalCredit    decimal.Decimal       `json:"total_credit"`
	TotalDebit     decimal.Decimal       `json:"total_debit"`
	ClosingBalance decimal.Decimal       `json:"closing_balance"`
	Skipped        []SkippedRecord       `json:"skipped,omitempty"`
}

// BuildAccountStatementUseCase builds a running-balance statement for a
// single buyer account. Invoices debit the account; buyer deposits,
// company-bill credits and name-matched other transactions settle it.
type BuildAccountStatementUseCase struct {
	invoiceRepo     adapter.InvoiceRepository
	buyerBillRepo   adapter.BuyerBillRepository
	companyBillRepo adapter.CompanyBillRepository
	otherTxnRepo    adapter.OtherTransactionRepository
}

// NewBuildAccountStatementUseCase creates a new BuildAccountStatementUseCase instance.
func NewBuildAccountStatementUseCase(
	invoiceRepo adapter.InvoiceRepository,
	buyerBillRepo adapter.BuyerBillRepository,
	companyBillRepo adapter.CompanyBillRepository,
	otherTxnRepo adapter.OtherTransactionRepository,
) *BuildAccountStatementUseCase {
	return &BuildAccountStatementUseCase{
		invoiceRepo:     invoiceRepo,
		buyerBillRepo:   buyerBillRepo,
		companyBillRepo: companyBillRepo,
		otherTxnRepo:    otherTxnRepo,
	}
}

// Execute builds the buyer account statement.
func (uc *BuildAccountStatementUseCase) Execute(
	ctx context.Context,
	input BuildAccountStatementInput,
) (*BuildAccountStatementOutput, error) {
	if input.BuyerName == "" {
		return nil, domainerror.NewBankingError(
			domainerror.ErrCodeRecordNotFound,
			"buyer_name is required",
			domainerror.ErrRecordNotFound,
		)
	}

	raw, err := uc.collectRawRecords(ctx, input.BuyerName)
	if err != nil {
		return nil, err
	}

	txns, skipped := ledger.NormalizeAll(raw)

	stmt, err := ledger.Reconcile(txns, decimal.Zero, input.From, input.To)
	if err != nil {
		return nil, err
	}

	output := &BuildAccountStatementOutput{
		BuyerName:      input.BuyerName,
		OpeningBalance: stmt.OpeningBalance,
		Rows:           make([]AccountStatementRow, 0, len(stmt.Rows)),
		TotalCredit:    stmt.TotalCredit,
		TotalDebit:     stmt.TotalDebit,
		ClosingBalance: stmt.ClosingBalance,
	}
	for _, skip := range skipped {
		output.Skipped = append(output.Skipped, SkippedRecord{
			SourceID: skip.SourceID,
			Type:     string(skip.Type),
			Reason:   skip.Reason.Error(),
		})
	}
	for _, row := range stmt.Rows {
		output.Rows = append(output.Rows, AccountStatementRow{
			Date:        row.Date,
			Type:        string(row.Type),
			Description: row.Description,
			Credit:      row.Credit,
			Debit:       row.Debit,
			Balance:     row.Balance,
		})
	}
	return output, nil
}

func (uc *BuildAccountStatementUseCase) collectRawRecords(
	ctx context.Context,
	buyerName string,
) ([]ledger.RawRecord, error) {
	var records []ledger.RawRecord

	invoices, err := uc.invoiceRepo.FindByFilter(ctx, adapter.InvoiceFilter{BuyerName: buyerName})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	for _, invoice := range invoices {
		records = append(records, ledger.RawRecord{
			SourceID:    invoice.ID.String(),
			Type:        ledger.RecordTypeInvoice,
			Date:        invoice.InvoiceDate.Format("2006-01-02"),
			Amount:      invoice.TotalAmount.String(),
			Debit:       true,
			Details:     buyerName,
			Description: invoice.InvoiceNumber,
		})
	}

	deposits, err := uc.buyerBillRepo.FindByFilter(ctx, adapter.RecordFilter{Name: buyerName})
	if err != nil {
		return nil, fmt.Errorf("failed to list buyer deposits: %w", err)
	}
	for _, deposit := range deposits {
		records = append(records, ledger.RawRecord{
			SourceID:    deposit.ID.String(),
			Type:        ledger.RecordTypeBuyerBill,
			Date:        deposit.Date.Format("2006-01-02"),
			Amount:      deposit.Amount.String(),
			Credit:      true, // deposit settles the buyer's outstanding balance
			Details:     buyerName,
			Description: deposit.Description,
		})
	}

	companyBills, err := uc.companyBillRepo.FindByFilter(ctx, adapter.RecordFilter{Name: buyerName})
	if err != nil {
		return nil, fmt.Errorf("failed to list company bills: %w", err)
	}
	for _, bill := range companyBills {
		records = append(records, ledger.RawRecord{
			SourceID:    bill.ID.String(),
			Type:        ledger.RecordTypeCompanyBill,
			Date:        bill.Date.Format("2006-01-02"),
			Amount:      bill.Amount.String(),
			Credit:      true,
			Details:     buyerName,
			Description: bill.Description,
		})
	}

	otherTxns, err := uc.otherTxnRepo.FindByFilter(ctx, adapter.RecordFilter{Name: buyerName})
	if err != nil {
		return nil, fmt.Errorf("failed to list other transactions: %w", err)
	}
	for _, txn := range otherTxns {
		records = append(records, ledger.RawRecord{
			SourceID:        txn.ID.String(),
			Type:            ledger.RecordTypeOtherTransaction,
			Date:            txn.Date.Format("2006-01-02"),
			Amount:          txn.Amount.String(),
			TransactionType: string(txn.Direction),
			Details:         buyerName,
			Description:     txn.Description,
		})
	}

	return records, nil
}
